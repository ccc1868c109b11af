package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihodes/brainth/internal/nn"
)

func TestInitializeShapes(t *testing.T) {
	net, err := nn.Initialize(2, 3, 4)
	require.NoError(t, err)

	ws := net.Weights()
	require.Len(t, ws, 2, "2-3-4 topology has two weight layers")

	// Three destinations, each with a bias weight plus two source
	// weights.
	require.Len(t, ws[0], 3)
	for _, w := range ws[0] {
		assert.Len(t, w, 3)
	}

	require.Len(t, ws[1], 4)
	for _, w := range ws[1] {
		assert.Len(t, w, 4)
	}
}

func TestInitializeWeightRange(t *testing.T) {
	net, err := nn.InitializeRand(rand.New(rand.NewSource(1)), 5, 8, 8, 3)
	require.NoError(t, err)

	for l, layer := range net.Weights() {
		for d, weights := range layer {
			for s, w := range weights {
				assert.GreaterOrEqual(t, w, 0.0, "weight [%d][%d][%d]", l, d, s)
				assert.Less(t, w, 1.0, "weight [%d][%d][%d]", l, d, s)
			}
		}
	}
}

func TestInitializeRejectsBadSizes(t *testing.T) {
	cases := []struct {
		name  string
		sizes []int
	}{
		{"no sizes", nil},
		{"single layer", []int{3}},
		{"zero nodes", []int{2, 0, 1}},
		{"negative nodes", []int{2, -3, 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			net, err := nn.Initialize(c.sizes...)
			require.Error(t, err)
			assert.Nil(t, net)
		})
	}
}

func TestInitializeRandDeterministic(t *testing.T) {
	a, err := nn.InitializeRand(rand.New(rand.NewSource(42)), 2, 3, 1)
	require.NoError(t, err)
	b, err := nn.InitializeRand(rand.New(rand.NewSource(42)), 2, 3, 1)
	require.NoError(t, err)
	c, err := nn.InitializeRand(rand.New(rand.NewSource(43)), 2, 3, 1)
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same seed must give identical weights")
	assert.False(t, a.Equal(c), "different seeds should give different weights")
}

func TestTopologyAccessors(t *testing.T) {
	net, err := nn.Initialize(2, 3, 4)
	require.NoError(t, err)

	assert.Equal(t, 2, net.InputSize())
	assert.Equal(t, 4, net.OutputSize())
	assert.Equal(t, []int{2, 3, 4}, net.LayerSizes())
}

func TestWeightsReturnsCopy(t *testing.T) {
	net, err := nn.InitializeRand(rand.New(rand.NewSource(9)), 2, 2)
	require.NoError(t, err)

	ws := net.Weights()
	original := ws[0][0][0]
	ws[0][0][0] = 99

	assert.Equal(t, original, net.Weights()[0][0][0], "mutating the copy must not touch the network")
}

func TestEqual(t *testing.T) {
	a, err := nn.InitializeRand(rand.New(rand.NewSource(1)), 2, 2, 1)
	require.NoError(t, err)
	b, err := nn.InitializeRand(rand.New(rand.NewSource(1)), 2, 2, 1)
	require.NoError(t, err)
	c, err := nn.InitializeRand(rand.New(rand.NewSource(2)), 2, 2, 1)
	require.NoError(t, err)
	d, err := nn.InitializeRand(rand.New(rand.NewSource(1)), 2, 3, 1)
	require.NoError(t, err)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "same topology, different weights")
	assert.False(t, a.Equal(d), "different topology")
	assert.False(t, a.Equal(nil))
}

func TestStringRendersTopology(t *testing.T) {
	net, err := nn.Initialize(2, 3, 4)
	require.NoError(t, err)

	assert.Equal(t, "Network(2-3-4, 25 weights)", net.String())
}
