package sensor

import (
	"fmt"
	"math/rand"

	"github.com/ANIKETSHETTY47/iot-gateway-simulator/internal/domain"
)

const zoneCount = 3

// BuildRoster returns n simulated sensors. The first sensors take each type
// from domain.Types in order; once every type is represented the remainder
// is filled by sampling types at random with replacement. Locations cycle
// zone-1..zone-3 by roster index. n <= 0 yields an empty roster.
func BuildRoster(n int, rng *rand.Rand) []domain.Sensor {
	if n <= 0 {
		return nil
	}
	sensors := make([]domain.Sensor, 0, n)
	for i := 0; i < n && i < len(domain.Types); i++ {
		sensors = append(sensors, newSensor(i, domain.Types[i]))
	}
	for i := len(domain.Types); i < n; i++ {
		sensors = append(sensors, newSensor(i, domain.Types[rng.Intn(len(domain.Types))]))
	}
	return sensors
}

func newSensor(index int, t domain.SensorType) domain.Sensor {
	return domain.Sensor{
		ID:       fmt.Sprintf("sensor-%d", index+1),
		Type:     t,
		Location: fmt.Sprintf("zone-%d", index%zoneCount+1),
	}
}
