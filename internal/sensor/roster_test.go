package sensor

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/iot-gateway-simulator/internal/domain"
)

func TestBuildRosterOneOfEachType(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 1; n <= len(domain.Types); n++ {
		roster := BuildRoster(n, rng)
		require.Len(t, roster, n)

		seen := map[domain.SensorType]bool{}
		for i, s := range roster {
			assert.Equal(t, domain.Types[i], s.Type, "type order at index %d", i)
			assert.Equal(t, fmt.Sprintf("sensor-%d", i+1), s.ID)
			assert.False(t, seen[s.Type], "duplicate type %s for n=%d", s.Type, n)
			seen[s.Type] = true
		}
	}
}

func TestBuildRosterFillsExtrasWithRandomTypes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	roster := BuildRoster(25, rng)
	require.Len(t, roster, 25)

	valid := map[domain.SensorType]bool{}
	for _, st := range domain.Types {
		valid[st] = true
	}

	for i, s := range roster {
		if i < len(domain.Types) {
			assert.Equal(t, domain.Types[i], s.Type)
		} else {
			assert.True(t, valid[s.Type], "extra sensor %s has unknown type %s", s.ID, s.Type)
		}
		assert.Equal(t, fmt.Sprintf("sensor-%d", i+1), s.ID)
	}
}

func TestBuildRosterZoneCycling(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	roster := BuildRoster(12, rng)
	require.Len(t, roster, 12)

	for i, s := range roster {
		assert.Equal(t, fmt.Sprintf("zone-%d", i%3+1), s.Location, "zone at index %d", i)
	}
}

func TestBuildRosterEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Empty(t, BuildRoster(0, rng))
	assert.Empty(t, BuildRoster(-4, rng))
}

func TestBuildRosterDeterministicPerSeed(t *testing.T) {
	a := BuildRoster(20, rand.New(rand.NewSource(42)))
	b := BuildRoster(20, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}
