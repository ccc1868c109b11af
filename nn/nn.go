// Copyright 2025 The Brainth Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/ihodes/brainth/internal/nn"
)

// Network is an immutable feed-forward neural network. All training
// and evaluation methods hang off this type; see the package
// documentation for an overview.
type Network = nn.Network

// LayerState is one layer's slice of a Forward trace: the weighted
// input sums and the resulting activations.
type LayerState = nn.LayerState

// DefaultLearningRate is used by training methods when they are given
// a rate of 0.
const DefaultLearningRate = nn.DefaultLearningRate

// Initialize builds a network with the given layer sizes, from input
// to output, with starting weights drawn uniformly from [0, 1).
//
// Example:
//
//	net, err := nn.Initialize(2, 3, 4) // 2 inputs, 3 hidden, 4 outputs
func Initialize(sizes ...int) (*Network, error) {
	return nn.Initialize(sizes...)
}

// InitializeRand is Initialize drawing weights from rng, for
// reproducible starting points. A nil rng uses the shared math/rand
// source.
//
// Example:
//
//	net, err := nn.InitializeRand(rand.New(rand.NewSource(42)), 2, 3, 4)
func InitializeRand(rng *rand.Rand, sizes ...int) (*Network, error) {
	return nn.InitializeRand(rng, sizes...)
}
