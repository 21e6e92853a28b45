package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRangeDynamicWins(t *testing.T) {
	desc := Descriptor{Ranges: GenderRanges{Male: rr(300, 1000), General: rr(200, 900)}}

	rng := ResolveRange(ptr(250), ptr(850), desc, Male)

	require.NotNil(t, rng.Min)
	require.NotNil(t, rng.Max)
	assert.Equal(t, 250.0, *rng.Min)
	assert.Equal(t, 850.0, *rng.Max)
}

func TestResolveRangePerBoundIndependently(t *testing.T) {
	desc := Descriptor{Ranges: GenderRanges{Male: rr(300, 1000)}}

	// Only the dynamic max is present; min comes from the gender range.
	rng := ResolveRange(nil, ptr(850), desc, Male)

	require.NotNil(t, rng.Min)
	assert.Equal(t, 300.0, *rng.Min)
	assert.Equal(t, 850.0, *rng.Max)
}

func TestResolveRangeGenderThenGeneral(t *testing.T) {
	desc := Descriptor{Ranges: GenderRanges{Female: rr(15, 70), General: rr(10, 100)}}

	female := ResolveRange(nil, nil, desc, Female)
	assert.Equal(t, 15.0, *female.Min)
	assert.Equal(t, 70.0, *female.Max)

	// No male range defined: falls through to general.
	male := ResolveRange(nil, nil, desc, Male)
	assert.Equal(t, 10.0, *male.Min)
	assert.Equal(t, 100.0, *male.Max)
}

func TestResolveRangeEmpty(t *testing.T) {
	rng := ResolveRange(nil, nil, Descriptor{}, Male)
	assert.True(t, rng.Empty())

	_, _, ok := rng.Bounds()
	assert.False(t, ok)
}

func TestBoundsSentinelSubstitution(t *testing.T) {
	oneSided := ResolvedRange{Max: ptr(200)}
	min, max, ok := oneSided.Bounds()
	require.True(t, ok)
	assert.Equal(t, float64(-BoundSentinel), min)
	assert.Equal(t, 200.0, max)

	minOnly := ResolvedRange{Min: ptr(40)}
	min, max, ok = minOnly.Bounds()
	require.True(t, ok)
	assert.Equal(t, 40.0, min)
	assert.Equal(t, float64(BoundSentinel), max)
}
