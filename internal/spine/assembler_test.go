package spine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleOrderAndLabels(t *testing.T) {
	cfg := HeroConfig()
	for _, f := range []float64{0, 0.3, 0.8, 1} {
		s := Assemble(cfg, f)
		require.Len(t, s.Vertebrae, cfg.Count)
		for i, v := range s.Vertebrae {
			assert.Equal(t, i, v.Spec.Index)
			assert.Equal(t, cfg.Labels[i], v.Spec.Label)
			assert.Equal(t, PoseAt(i, cfg.Count, f), v.Pose)
		}
	}
}

func TestAssembleHeroHighlights(t *testing.T) {
	cfg := HeroConfig()

	low := Assemble(cfg, 0.2)
	assert.False(t, low.Vertebrae[0].Highlighted)
	assert.Empty(t, low.HighlightedLabels())

	high := Assemble(cfg, 0.9)
	for i, v := range high.Vertebrae {
		assert.Equal(t, i < 4, v.Highlighted, "index=%d", i)
	}
	assert.Equal(t, []string{"C1", "C2", "C3", "C4"}, high.HighlightedLabels())
}

func TestAssembleAnatomyOverride(t *testing.T) {
	cfg := AnatomyConfig()
	for _, f := range []float64{0, 0.5, 1, -3, math.NaN()} {
		s := Assemble(cfg, f)
		require.Len(t, s.Vertebrae, 3)
		assert.Equal(t, "C1 (Atlas)", s.Vertebrae[0].Spec.Label)
		assert.Equal(t, "C2 (Axis)", s.Vertebrae[1].Spec.Label)
		assert.Equal(t, "C3", s.Vertebrae[2].Spec.Label)
		for i, v := range s.Vertebrae {
			assert.True(t, v.Highlighted)
			assert.Equal(t, AnatomyPlacements[i], v.Pose)
		}
	}
}

func TestAssembleClampsFlexion(t *testing.T) {
	cfg := HeroConfig()
	assert.Equal(t, Assemble(cfg, 1), Assemble(cfg, 1.2))
	assert.Equal(t, Assemble(cfg, 0), Assemble(cfg, -0.4))
	assert.Equal(t, 1.0, Assemble(cfg, 7).Flexion)
}

func TestAssembleIdempotent(t *testing.T) {
	cfg := HeroConfig()
	a := Assemble(cfg, 0.6180339887)
	b := Assemble(cfg, 0.6180339887)
	assert.Equal(t, a, b)
}

func TestCordUsesVertebraPositions(t *testing.T) {
	s := Assemble(HeroConfig(), 0.77)
	cord := s.Cord()
	require.Len(t, cord, len(s.Vertebrae))
	for i, p := range cord {
		assert.Equal(t, s.Vertebrae[i].Pose.Position, p)
	}
}

func TestAssemblerCachesByFlexion(t *testing.T) {
	a := NewAssembler(HeroConfig())
	first := a.Assemble(0.3)
	second := a.Assemble(0.3)
	// Same backing array means no recomputation happened.
	assert.Same(t, &first.Vertebrae[0], &second.Vertebrae[0])

	third := a.Assemble(0.31)
	assert.NotSame(t, &first.Vertebrae[0], &third.Vertebrae[0])
	assert.Equal(t, Assemble(a.Config(), 0.31), third)

	// Values clamping to the same key share the cached result.
	top := a.Assemble(1)
	over := a.Assemble(1.5)
	assert.Same(t, &top.Vertebrae[0], &over.Vertebrae[0])
}

func TestAssemblerReset(t *testing.T) {
	a := NewAssembler(HeroConfig())
	first := a.Assemble(0.9)
	a.Reset()
	again := a.Assemble(0.9)
	assert.NotSame(t, &first.Vertebrae[0], &again.Vertebrae[0])
	assert.Equal(t, first, again)
}
