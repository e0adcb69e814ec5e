// SPDX-License-Identifier: MIT
// Package: ancestry/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is; constructors
// attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the graph could not be assembled, e.g. a nil
// constructor or a core insertion failure.
var ErrConstructFailed = errors.New("builder: construction failed")
