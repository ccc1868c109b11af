package nn

import (
	"github.com/pkg/errors"

	"github.com/ihodes/brainth/internal/vecmath"
)

// Backpropagate runs one online training step for a single example and
// returns the adjusted network. The receiver is left untouched.
//
// Deltas start at the output layer as
//
//	delta = tanh'(sum) * (expected - actual)
//
// and flow backwards through each transposed weight matrix (minus its
// bias row, since the bias unit has no upstream node). Every weight is
// then nudged along its delta:
//
//	w' = w + rate * activation * delta
//
// The error direction is carried inside delta, so the update is an
// addition. A rate of 0 selects DefaultLearningRate.
//
// Backpropagate panics if input or expected do not match the network's
// input and output sizes.
func (n *Network) Backpropagate(input, expected []float64, rate float64) *Network {
	if len(expected) != n.OutputSize() {
		panic(errors.Errorf("nn: expected output has %d values, network produces %d", len(expected), n.OutputSize()))
	}
	if rate == 0 {
		rate = DefaultLearningRate
	}

	trace := n.Forward(input)
	deltas := n.deltas(trace, expected)

	layers := make([]vecmath.Matrix, len(n.layers))
	for l, layer := range n.layers {
		layers[l] = updatedLayer(layer, trace[l].Acts, deltas[l], rate)
	}
	return &Network{layers: layers}
}

// deltas computes the per-node delta of every non-input layer.
// deltas[l] belongs to the destination nodes of weight layer l.
func (n *Network) deltas(trace []LayerState, expected []float64) [][]float64 {
	deltas := make([][]float64, len(n.layers))

	last := len(n.layers) - 1
	deltas[last] = outputDeltas(trace[len(trace)-1], expected)

	// Walk back through the hidden layers. Layer l's source nodes are
	// the destination nodes of layer l-1, so their deltas come from
	// redistributing deltas[l] through layer l's weights.
	for l := last; l > 0; l-- {
		deltas[l-1] = hiddenDeltas(n.layers[l], deltas[l], trace[l].Sums)
	}
	return deltas
}

// outputDeltas seeds the backward pass from the output layer's state.
func outputDeltas(out LayerState, expected []float64) []float64 {
	d := make([]float64, len(expected))
	for i := range expected {
		d[i] = vecmath.TanhPrime(out.Sums[i]) * (expected[i] - out.Acts[i])
	}
	return d
}

// hiddenDeltas redistributes downstream deltas to the source nodes of
// layer, scaling by each node's activation slope. sums are the
// pre-activation sums of the source layer.
func hiddenDeltas(layer vecmath.Matrix, downstream, sums []float64) []float64 {
	cols := layer.Transpose()
	d := make([]float64, len(sums))
	for i := range d {
		// cols[0] is the bias column; source node i's outgoing
		// weights sit at column i+1.
		d[i] = vecmath.TanhPrime(sums[i]) * vecmath.Dot(downstream, cols[i+1])
	}
	return d
}

// updatedLayer applies the weight update to one layer. srcActs is the
// bias-prefixed activation vector of the source layer, so it lines up
// index-for-index with each weight vector.
func updatedLayer(layer vecmath.Matrix, srcActs, deltas []float64, rate float64) vecmath.Matrix {
	out := make(vecmath.Matrix, len(layer))
	for dst, weights := range layer {
		updated := make([]float64, len(weights))
		for src, w := range weights {
			updated[src] = w + rate*srcActs[src]*deltas[dst]
		}
		out[dst] = updated
	}
	return out
}
