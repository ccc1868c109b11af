// Package nn implements a feed-forward neural network trained with
// classic backpropagation. Networks are immutable values: training
// steps return new networks and never modify their receiver, so any
// snapshot from a training run can be kept, compared, or branched from.
package nn

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ihodes/brainth/internal/vecmath"
)

// Network is a fully connected feed-forward network. Layer l holds one
// weight vector per destination node; each vector carries the bias
// weight at index 0 followed by one weight per source node. All state
// lives in the weights, so topology is derived rather than stored.
type Network struct {
	layers []vecmath.Matrix
}

// Initialize builds a network with the given layer sizes, from input to
// output, weights drawn uniformly from [0, 1) using the shared
// math/rand source. At least two sizes are required and every size must
// be positive.
func Initialize(sizes ...int) (*Network, error) {
	return InitializeRand(nil, sizes...)
}

// InitializeRand is Initialize with a caller-owned random source, for
// reproducible weight draws. A nil rng falls back to the shared source.
func InitializeRand(rng *rand.Rand, sizes ...int) (*Network, error) {
	if len(sizes) < 2 {
		return nil, errors.Errorf("nn: network needs an input and an output layer, got %d size(s)", len(sizes))
	}
	for i, size := range sizes {
		if size < 1 {
			return nil, errors.Errorf("nn: layer %d must have at least one node, got %d", i, size)
		}
	}

	gen := rand.Float64 //nolint:gosec // math/rand is fine for weight initialization (not security-critical)
	if rng != nil {
		gen = rng.Float64
	}

	layers := make([]vecmath.Matrix, len(sizes)-1)
	for l := range layers {
		// One row per destination node; one column per source node
		// plus the bias unit in column 0.
		layers[l] = vecmath.NewMatrix(sizes[l+1], sizes[l]+1, gen)
	}
	return &Network{layers: layers}, nil
}

// InputSize returns the number of input nodes.
func (n *Network) InputSize() int {
	return len(n.layers[0][0]) - 1
}

// OutputSize returns the number of output nodes.
func (n *Network) OutputSize() int {
	return len(n.layers[len(n.layers)-1])
}

// LayerSizes returns the node count of every layer, input first.
func (n *Network) LayerSizes() []int {
	sizes := make([]int, 0, len(n.layers)+1)
	sizes = append(sizes, n.InputSize())
	for _, layer := range n.layers {
		sizes = append(sizes, len(layer))
	}
	return sizes
}

// Weights returns a deep copy of the weight matrices, ordered from the
// input side. Mutating the copy does not affect the network.
func (n *Network) Weights() []vecmath.Matrix {
	out := make([]vecmath.Matrix, len(n.layers))
	for l, layer := range n.layers {
		out[l] = layer.Clone()
	}
	return out
}

// Equal reports whether n and other have identical topology and
// bit-identical weights.
func (n *Network) Equal(other *Network) bool {
	if other == nil || len(n.layers) != len(other.layers) {
		return false
	}
	for l, layer := range n.layers {
		if len(layer) != len(other.layers[l]) {
			return false
		}
		for d, weights := range layer {
			ow := other.layers[l][d]
			if len(weights) != len(ow) {
				return false
			}
			for s, w := range weights {
				if w != ow[s] {
					return false
				}
			}
		}
	}
	return true
}

// String renders the topology and total weight count, e.g.
// "Network(2-3-4, 25 weights)".
func (n *Network) String() string {
	var b strings.Builder
	b.WriteString("Network(")
	for i, size := range n.LayerSizes() {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(size))
	}
	total := 0
	for _, layer := range n.layers {
		for _, weights := range layer {
			total += len(weights)
		}
	}
	fmt.Fprintf(&b, ", %d weights)", total)
	return b.String()
}
