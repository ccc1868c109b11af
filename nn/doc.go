// Copyright 2025 The Brainth Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn trains small feed-forward neural networks with classic
// online backpropagation.
//
// # Overview
//
// A Network is an immutable value: every training operation returns a
// new Network and never modifies the one it was called on. That makes
// snapshots free. Keep the network from any epoch, compare runs, or
// train the same starting point twice with different rates without
// copying anything by hand.
//
// The package provides:
//   - Construction: Initialize, InitializeRand
//   - Training: Backpropagate (one example), Epoch (one pass),
//     Train (lazy infinite epoch sequence), TrainFor (fixed count)
//   - Evaluation: Run, Classify, Error, SetError, Forward
//
// Layers are fully connected and use the tanh activation throughout,
// so outputs live in (-1, 1). Every non-output layer carries an
// implicit bias node with constant activation 1; its weight sits at
// index 0 of each weight vector.
//
// # Basic Usage
//
//	import "github.com/ihodes/brainth/nn"
//
//	func main() {
//	    // Two inputs, one hidden layer of three nodes, four outputs.
//	    net, err := nn.Initialize(2, 3, 4)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    inputs := [][]float64{{1, 1}, {1, 0}, {0, 1}, {0, 0}}
//	    targets := [][]float64{{1, 1, 0, 0}, {0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 1}}
//
//	    // Train for 1000 epochs at the default learning rate.
//	    trained := net.TrainFor(inputs, targets, 0, 1000)
//
//	    fmt.Println(trained.Run([]float64{1, 0}))
//	}
//
// # Watching a Training Run
//
// Train returns the infinite sequence of epochs as a lazy iterator;
// element 0 is the starting network itself. Nothing is computed until
// the loop pulls, so the consumer decides when to stop:
//
//	for epoch, net := range base.Train(inputs, targets, 0) {
//	    if net.SetError(inputs, targets) < 0.05 {
//	        trained = net
//	        break
//	    }
//	}
//
// # Reproducibility
//
// Initialize draws starting weights from the shared math/rand source.
// For repeatable runs, hand InitializeRand a seeded source:
//
//	net, err := nn.InitializeRand(rand.New(rand.NewSource(42)), 2, 3, 4)
//
// Training itself is deterministic: the same network, set, and rate
// always produce the same sequence of networks.
package nn
