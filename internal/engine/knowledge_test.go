package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCurated(t *testing.T) {
	desc := Resolve(KeyTestosteroneTotal, "Testosterona Total", nil)

	assert.Equal(t, KeyTestosteroneTotal, desc.ID)
	assert.Equal(t, OriginCurated, desc.Origin)
	assert.False(t, desc.IsGeneric)
	assert.False(t, desc.IsLearned)
	require.NotNil(t, desc.Ranges.Male)
	assert.Equal(t, 300.0, *desc.Ranges.Male.Min)
	assert.Equal(t, 1000.0, *desc.Ranges.Male.Max)
}

func TestResolveLearned(t *testing.T) {
	learned := map[Key]LearnedMarker{
		"zinc": {
			Key:       "zinc",
			Label:     "Zinco Sérico",
			Unit:      "µg/dL",
			MaleMin:   ptr(70),
			MaleMax:   ptr(120),
			FemaleMin: ptr(70),
			FemaleMax: ptr(120),
			SourceURL: "https://example.org/zinc",
		},
	}

	desc := Resolve("zinc", "Zinco Sérico", learned)

	assert.Equal(t, OriginLearned, desc.Origin)
	assert.True(t, desc.IsLearned)
	assert.False(t, desc.IsGeneric)
	assert.Equal(t, "Zinco Sérico", desc.Label)
	require.NotNil(t, desc.Ranges.Male)
	assert.Equal(t, 70.0, *desc.Ranges.Male.Min)
	require.Len(t, desc.Sources, 1)
	assert.Equal(t, "https://example.org/zinc", desc.Sources[0].URL)
}

func TestResolveGenericFallback(t *testing.T) {
	desc := Resolve(KeyGeneric, "Marcador Desconhecido", nil)

	assert.Equal(t, OriginGeneric, desc.Origin)
	assert.True(t, desc.IsGeneric)
	// The display label falls back to the raw name, not the canonical key.
	assert.Equal(t, "Marcador Desconhecido", desc.Label)
	assert.NotEmpty(t, desc.Definition)
	assert.NotEmpty(t, desc.RisksHigh)
	assert.NotEmpty(t, desc.RisksLow)
	assert.NotEmpty(t, desc.Tips)
	assert.Nil(t, desc.Ranges.Male)
	assert.Nil(t, desc.Ranges.Female)
	assert.Nil(t, desc.Ranges.General)
}

func TestResolveGenericKeyIgnoresLearnedAndCurated(t *testing.T) {
	learned := map[Key]LearnedMarker{KeyGeneric: {Key: KeyGeneric, Label: "bogus"}}
	desc := Resolve(KeyGeneric, "Algo", learned)
	assert.True(t, desc.IsGeneric)
	assert.Equal(t, "Algo", desc.Label)
}

func TestCuratedCompleteness(t *testing.T) {
	for _, key := range CuratedKeys() {
		desc := Resolve(key, string(key), nil)
		assert.Equal(t, key, desc.ID, "key %s", key)
		assert.NotEmpty(t, desc.Label, "key %s", key)
		assert.NotEmpty(t, desc.Definition, "key %s", key)
		assert.NotEmpty(t, desc.RisksHigh, "key %s", key)
		assert.NotEmpty(t, desc.RisksLow, "key %s", key)
		assert.NotEmpty(t, desc.Sources, "key %s", key)
		assert.False(t, desc.IsGeneric, "key %s", key)
	}
}

func TestEveryRuleKeyHasCuratedEntry(t *testing.T) {
	for _, rule := range normalizeRules {
		_, ok := curated[rule.key]
		assert.True(t, ok, "rule key %s has no curated descriptor", rule.key)
	}
}
