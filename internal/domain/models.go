package domain

import "time"

// SensorType identifies the quantity a simulated sensor measures.
type SensorType string

const (
	Temperature     SensorType = "temperature"
	Humidity        SensorType = "humidity"
	Voltage         SensorType = "voltage"
	Current         SensorType = "current"
	Power           SensorType = "power"
	Energy          SensorType = "energy"
	SolarIrradiance SensorType = "solar_irradiance"
	WindSpeed       SensorType = "wind_speed"
	BatteryLevel    SensorType = "battery_level"
)

// Types is the fixed roster assignment order; a roster takes these types
// one each, in order, before any random filling starts.
var Types = []SensorType{
	Temperature,
	Humidity,
	Voltage,
	Current,
	Power,
	Energy,
	SolarIrradiance,
	WindSpeed,
	BatteryLevel,
}

type Sensor struct {
	ID       string     `json:"id"`
	Type     SensorType `json:"type"`
	Location string     `json:"location"`
}

type Reading struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
}

// Message is the wire envelope published for one sensor on one tick.
type Message struct {
	GatewayID  string     `json:"gateway_id"`
	SensorID   string     `json:"sensor_id"`
	SensorType SensorType `json:"sensor_type"`
	Location   string     `json:"location"`
	Reading    Reading    `json:"reading"`
}
