package nn

import (
	"iter"

	"github.com/pkg/errors"
)

// DefaultLearningRate is used whenever a training call receives a rate
// of 0.
const DefaultLearningRate = 0.2

// Epoch runs one pass over the training set: a fold of Backpropagate
// across the examples in order, each step training the network the
// previous step produced. Updates are online, so example order matters.
// The receiver is left untouched.
//
// Epoch panics if the set is malformed; the set is validated up front
// so a bad example cannot waste a partial pass.
func (n *Network) Epoch(inputs, expecteds [][]float64, rate float64) *Network {
	n.checkSet(inputs, expecteds)

	net := n
	for i := range inputs {
		net = net.Backpropagate(inputs[i], expecteds[i], rate)
	}
	return net
}

// Train returns the infinite sequence of training epochs as a lazy
// iterator. Element 0 is the receiver itself, untrained; element k is
// the network after k epochs. Nothing is computed until the consumer
// pulls, so callers control how far training runs:
//
//	for epoch, net := range base.Train(inputs, expecteds, 0) {
//		if net.SetError(inputs, expecteds) < target || epoch == limit {
//			trained = net
//			break
//		}
//	}
//
// Two ranges over the same sequence replay the same networks.
func (n *Network) Train(inputs, expecteds [][]float64, rate float64) iter.Seq2[int, *Network] {
	n.checkSet(inputs, expecteds)

	return func(yield func(int, *Network) bool) {
		net := n
		for epoch := 0; ; epoch++ {
			if !yield(epoch, net) {
				return
			}
			net = net.Epoch(inputs, expecteds, rate)
		}
	}
}

// TrainFor trains for a fixed number of epochs and returns the result.
// It is equivalent to element epochs of Train; TrainFor with 0 epochs
// returns the receiver.
func (n *Network) TrainFor(inputs, expecteds [][]float64, rate float64, epochs int) *Network {
	if epochs < 0 {
		panic(errors.Errorf("nn: epoch count must be non-negative, got %d", epochs))
	}

	net := n
	for range epochs {
		net = net.Epoch(inputs, expecteds, rate)
	}
	return net
}

// checkSet validates a training set against the network's shape.
func (n *Network) checkSet(inputs, expecteds [][]float64) {
	if len(inputs) != len(expecteds) {
		panic(errors.Errorf("nn: training set pairs %d inputs with %d expected outputs", len(inputs), len(expecteds)))
	}
	for i := range inputs {
		if len(inputs[i]) != n.InputSize() {
			panic(errors.Errorf("nn: training input %d has %d values, network expects %d", i, len(inputs[i]), n.InputSize()))
		}
		if len(expecteds[i]) != n.OutputSize() {
			panic(errors.Errorf("nn: expected output %d has %d values, network produces %d", i, len(expecteds[i]), n.OutputSize()))
		}
	}
}
