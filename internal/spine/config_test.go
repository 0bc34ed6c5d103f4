package spine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSceneConfigRejectsBadCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := NewSceneConfig("bad", n, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCount)
	}
}

func TestNewSceneConfigRejectsLabelMismatch(t *testing.T) {
	_, err := NewSceneConfig("short", 3, []string{"C1", "C2"})
	assert.ErrorIs(t, err, ErrLabelMismatch)

	_, err = NewSceneConfig("long", 1, []string{"C1", "C2"})
	assert.ErrorIs(t, err, ErrLabelMismatch)
}

func TestNewSceneConfigRejectsPlacementMismatch(t *testing.T) {
	_, err := NewSceneConfig("p", 2, []string{"A", "B"}, WithPlacements(Pose{}))
	assert.ErrorIs(t, err, ErrPlacementMismatch)
}

func TestNewSceneConfigCopiesLabels(t *testing.T) {
	labels := []string{"A", "B"}
	cfg, err := NewSceneConfig("copy", 2, labels)
	require.NoError(t, err)
	labels[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, cfg.Labels)
}

func TestBuiltinConfigs(t *testing.T) {
	hero := HeroConfig()
	assert.Equal(t, 8, hero.Count)
	assert.True(t, hero.Animated)
	assert.Nil(t, hero.HighlightOverride)
	assert.Equal(t, []string{"C1", "C2", "C3", "C4", "C5", "C6", "C7", "T1"}, hero.Labels)

	anatomy := AnatomyConfig()
	assert.Equal(t, 3, anatomy.Count)
	assert.False(t, anatomy.Animated)
	require.NotNil(t, anatomy.HighlightOverride)
	assert.True(t, *anatomy.HighlightOverride)
	assert.Len(t, anatomy.Placements, 3)
}

func TestStaticFlexion(t *testing.T) {
	assert.Equal(t, 0.0, AnatomyConfig().StaticFlexion())

	cfg, err := NewSceneConfig("pinned", 1, []string{"C1"}, WithFixedFlexion(1.7))
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.StaticFlexion())
}

func TestConfigByName(t *testing.T) {
	cfg, err := ConfigByName("anatomy")
	require.NoError(t, err)
	assert.Equal(t, AnatomyScene, cfg.Name)

	_, err = ConfigByName("lumbar")
	assert.Error(t, err)
}
