package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "Achillea millefolium", cfg.Species)
	assert.Equal(t, 100, cfg.Limit)
	assert.Equal(t, "https://api.gbif.org/v1/occurrence/search", cfg.SearchURL)
	assert.Equal(t, "data/images", cfg.ImageDir)
	assert.Equal(t, "data/metadata", cfg.MetadataDir)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.ArchiveEnabled)
	assert.False(t, cfg.EventsEnabled)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(Species, "Taraxacum officinale")
	t.Setenv(Limit, "25")
	t.Setenv(Timeout, "5s")
	t.Setenv(ArchiveEnabledEnv, "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "Taraxacum officinale", cfg.Species)
	assert.Equal(t, 25, cfg.Limit)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.ArchiveEnabled)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	t.Setenv(Limit, "not-a-number")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_NonPositiveLimit(t *testing.T) {
	t.Setenv(Limit, "0")
	_, err := FromEnv()
	assert.Error(t, err)
}
