package nn

import (
	"github.com/pkg/errors"

	"github.com/ihodes/brainth/internal/vecmath"
)

// LayerState records one layer's forward evaluation.
type LayerState struct {
	// Sums holds the weighted input sum of each node, before
	// activation. It is nil for the input layer, which has no
	// incoming weights.
	Sums []float64

	// Acts holds the activations. Every layer except the output is
	// prefixed with the constant bias activation 1, so Acts lines up
	// index-for-index with the next layer's weight vectors.
	Acts []float64
}

// Forward evaluates the network on input and returns the full trace,
// one LayerState per layer from input to output. The trace keeps the
// pre-activation sums backpropagation needs; callers that only want the
// output should use Run.
//
// Forward panics if input does not match the network's input size.
func (n *Network) Forward(input []float64) []LayerState {
	if len(input) != n.InputSize() {
		panic(errors.Errorf("nn: input has %d values, network expects %d", len(input), n.InputSize()))
	}

	trace := make([]LayerState, 0, len(n.layers)+1)
	trace = append(trace, LayerState{Acts: biased(input)})

	acts := trace[0].Acts
	for l, layer := range n.layers {
		sums := make([]float64, len(layer))
		for d, weights := range layer {
			sums[d] = vecmath.Dot(acts, weights)
		}

		var next []float64
		if l == len(n.layers)-1 {
			// Output layer: plain activations, no bias slot.
			next = make([]float64, len(sums))
			for i, s := range sums {
				next[i] = vecmath.Tanh(s)
			}
		} else {
			next = biasedTanh(sums)
		}

		trace = append(trace, LayerState{Sums: sums, Acts: next})
		acts = next
	}
	return trace
}

// biased prefixes the constant bias activation to v.
func biased(v []float64) []float64 {
	out := make([]float64, len(v)+1)
	out[0] = 1
	copy(out[1:], v)
	return out
}

// biasedTanh activates sums and prefixes the bias activation.
func biasedTanh(sums []float64) []float64 {
	out := make([]float64, len(sums)+1)
	out[0] = 1
	for i, s := range sums {
		out[i+1] = vecmath.Tanh(s)
	}
	return out
}
