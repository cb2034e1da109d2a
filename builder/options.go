// SPDX-License-Identifier: MIT
// Package: citytour/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// DefaultSeed seeds the stream used when no WithSeed/WithRand is given.
const DefaultSeed int64 = 1

// DefaultMaxCoord is the inclusive upper coordinate bound used by Random.
const DefaultMaxCoord uint8 = 255

// BuilderOption customizes a generator by mutating builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig holds every generator knob.
type builderConfig struct {
	rng      *rand.Rand
	maxCoord uint8
}

// newBuilderConfig applies opts in order over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{maxCoord: DefaultMaxCoord}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithSeed seeds a fresh stream. Seed 0 selects DefaultSeed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand supplies an explicit stream. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithMaxCoord sets the inclusive upper bound for random coordinates.
// A zero bound is reported by Random as ErrBadMaxCoord.
func WithMaxCoord(m uint8) BuilderOption {
	return func(c *builderConfig) {
		c.maxCoord = m
	}
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to DefaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
