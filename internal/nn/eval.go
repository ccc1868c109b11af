package nn

import (
	"github.com/pkg/errors"

	"github.com/ihodes/brainth/internal/parallel"
)

// classifyThreshold splits Run outputs into the two classes.
const classifyThreshold = 0.5

// Run evaluates the network on input and returns the output layer's
// activations. The slice is freshly allocated and owned by the caller.
func (n *Network) Run(input []float64) []float64 {
	trace := n.Forward(input)
	return trace[len(trace)-1].Acts
}

// Classify runs the network and maps each output to a class label:
// outputs above 0.5 become 0 and everything else becomes 1. The
// direction is deliberate and pinned by tests; callers have encoded
// their labels against it since the beginning, so flipping it would
// silently invert every classification.
func (n *Network) Classify(input []float64) []int {
	out := n.Run(input)
	classes := make([]int, len(out))
	for i, v := range out {
		if v > classifyThreshold {
			classes[i] = 0
		} else {
			classes[i] = 1
		}
	}
	return classes
}

// Error returns half the sum of squared differences between the
// network's output on input and expected. Halving keeps the derivative
// free of a stray factor of two. Error panics if expected does not
// match the network's output size.
func (n *Network) Error(input, expected []float64) float64 {
	if len(expected) != n.OutputSize() {
		panic(errors.Errorf("nn: expected output has %d values, network produces %d", len(expected), n.OutputSize()))
	}

	out := n.Run(input)
	var sum float64
	for i, o := range out {
		diff := o - expected[i]
		sum += diff * diff
	}
	return sum / 2
}

// SetError returns the sum of Error over every example pair, the
// aggregate loss a training run tries to shrink. Evaluations are pure
// reads of the network, so they fan out across CPUs for larger sets;
// the final sum always reduces in index order to stay deterministic.
func (n *Network) SetError(inputs, expecteds [][]float64) float64 {
	n.checkSet(inputs, expecteds)

	errs := make([]float64, len(inputs))
	parallel.For(len(inputs), parallel.DefaultConfig(), func(i int) {
		errs[i] = n.Error(inputs[i], expecteds[i])
	})

	var total float64
	for _, e := range errs {
		total += e
	}
	return total
}
