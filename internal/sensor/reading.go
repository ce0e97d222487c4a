package sensor

import (
	"math"
	"math/rand"
	"time"

	"github.com/ANIKETSHETTY47/iot-gateway-simulator/internal/domain"
)

// Generator synthesizes plausible sensor readings. It owns its random source
// so callers (and tests) control determinism instead of sharing global rand.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Reading produces one sample for the given sensor type at time at. Values
// are drawn uniformly from a per-type plausible range and rounded to the
// precision a real sensor of that type would report; every call is
// independent, with no drift or correlation between sensors.
func (g *Generator) Reading(t domain.SensorType, at time.Time) domain.Reading {
	r := domain.Reading{Timestamp: at}
	switch t {
	case domain.Temperature:
		r.Value = roundTo(g.uniform(18.0, 30.0), 2)
		r.Unit = "°C"
	case domain.Humidity:
		r.Value = roundTo(g.uniform(30.0, 70.0), 2)
		r.Unit = "%"
	case domain.Voltage:
		r.Value = roundTo(g.uniform(220.0, 240.0), 1)
		r.Unit = "V"
	case domain.Current:
		r.Value = roundTo(g.uniform(0.5, 15.0), 2)
		r.Unit = "A"
	case domain.Power:
		r.Value = roundTo(g.uniform(100.0, 5000.0), 2)
		r.Unit = "W"
	case domain.Energy:
		r.Value = roundTo(g.uniform(0.1, 50.0), 3)
		r.Unit = "kWh"
	case domain.SolarIrradiance:
		r.Value = g.irradiance(at)
		r.Unit = "W/m²"
	case domain.WindSpeed:
		r.Value = roundTo(g.uniform(0.0, 15.0), 2)
		r.Unit = "m/s"
	case domain.BatteryLevel:
		r.Value = roundTo(g.uniform(20.0, 95.0), 1)
		r.Unit = "%"
	default:
		r.Value = roundTo(g.uniform(0.0, 100.0), 2)
		r.Unit = "units"
	}
	return r
}

// irradiance follows a day/night curve on the local hour: a sine arc between
// 06:00 and 18:00 with ±50 W/m² of noise, clamped at zero. Sub-hour
// resolution is deliberately not modeled.
func (g *Generator) irradiance(at time.Time) float64 {
	hour := at.Hour()
	if hour < 6 || hour > 18 {
		return 0.0
	}
	base := 600 * math.Sin(math.Pi*float64(hour-6)/12)
	return roundTo(math.Max(0, base+g.uniform(-50, 50)), 2)
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
