// SPDX-License-Identifier: MIT
// Package: stochastic
//
// source.go - the RandomSource capability and its adapters.
//
// Contract:
//   - SampleNormal(mean, stdDev) draws one value from N(mean, stdDev).
//   - Sources are not required to be safe for concurrent use.
//   - A source error aborts the generating call and is returned as-is.

package stochastic

import (
	"fmt"
	mrand "math/rand"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandomSource supplies normally distributed samples to the generator.
type RandomSource interface {
	SampleNormal(mean, stdDev float64) (float64, error)
}

// SourceFunc adapts a plain function to RandomSource.
type SourceFunc func(mean, stdDev float64) (float64, error)

// SampleNormal calls f.
func (f SourceFunc) SampleNormal(mean, stdDev float64) (float64, error) {
	return f(mean, stdDev)
}

// seededSource draws through gonum's distuv.Normal on a PCG stream.
type seededSource struct {
	src rand.Source
}

// NewSeededSource returns a deterministic source: equal seeds yield equal
// sample streams.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{src: rand.NewPCG(seed, seed^pcgStreamSalt)}
}

// pcgStreamSalt derives the second PCG word from the seed.
const pcgStreamSalt = 0x9e3779b97f4a7c15

func (s *seededSource) SampleNormal(mean, stdDev float64) (float64, error) {
	n := distuv.Normal{Mu: mean, Sigma: stdDev, Src: s.src}
	return n.Rand(), nil
}

// randSource wraps a math/rand stream, the RNG type used by the builder package.
type randSource struct {
	rng *mrand.Rand
}

// FromRand adapts r. Sharing r with other consumers interleaves their draws.
func FromRand(r *mrand.Rand) RandomSource {
	return &randSource{rng: r}
}

func (s *randSource) SampleNormal(mean, stdDev float64) (float64, error) {
	if s.rng == nil {
		return 0, fmt.Errorf("FromRand: %w", ErrNilRand)
	}
	return mean + stdDev*s.rng.NormFloat64(), nil
}

// ScriptedSource replays fixed standard-normal draws z, returning
// mean + stdDev*z for each call. It is meant for tests and golden fixtures.
type ScriptedSource struct {
	samples []float64
	next    int
}

// NewScriptedSource returns a source that yields samples in order.
func NewScriptedSource(samples ...float64) *ScriptedSource {
	cp := make([]float64, len(samples))
	copy(cp, samples)

	return &ScriptedSource{samples: cp}
}

// SampleNormal returns the next scripted draw or ErrSourceExhausted.
func (s *ScriptedSource) SampleNormal(mean, stdDev float64) (float64, error) {
	if s.next >= len(s.samples) {
		return 0, ErrSourceExhausted
	}
	z := s.samples[s.next]
	s.next++

	return mean + stdDev*z, nil
}

// Remaining reports how many draws are left.
func (s *ScriptedSource) Remaining() int {
	return len(s.samples) - s.next
}

// Rewind restarts the script from the first sample.
func (s *ScriptedSource) Rewind() {
	s.next = 0
}
