// Package gateway implements the simulated IoT gateway: a fixed roster of
// sensors, one MQTT client, and a timed loop that publishes a reading per
// sensor per tick.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/iot-gateway-simulator/internal/domain"
	"github.com/ANIKETSHETTY47/iot-gateway-simulator/internal/metrics"
	"github.com/ANIKETSHETTY47/iot-gateway-simulator/internal/sensor"
)

// ErrNotConnected is returned by PublishTick while the broker session is down.
var ErrNotConnected = errors.New("not connected to MQTT broker")

const connectTimeout = 60 * time.Second

// Options configures a Simulator.
type Options struct {
	BrokerURL   string
	GatewayID   string // generated when empty
	Username    string
	Password    string
	SensorCount int
	Interval    time.Duration
	Duration    time.Duration // 0 = run until the context is cancelled
}

// Simulator owns the sensor roster and the broker connection. The connected
// flag is the only state shared with paho's network goroutines: its callbacks
// write it, the tick loop reads it.
type Simulator struct {
	opts      Options
	gatewayID string
	sensors   []domain.Sensor
	gen       *sensor.Generator

	client    mqtt.Client
	connected atomic.Bool

	startedAt time.Time
	batches   atomic.Uint64
	messages  atomic.Uint64
	pubErrors atomic.Uint64
}

// Stats is a point-in-time snapshot of the simulator's publish counters.
type Stats struct {
	Batches       uint64    `json:"batches"`
	Messages      uint64    `json:"messages"`
	PublishErrors uint64    `json:"publish_errors"`
	StartedAt     time.Time `json:"started_at"`
}

// New builds a simulator with a fixed roster of opts.SensorCount sensors.
// The random source drives both roster construction and reading synthesis.
func New(opts Options, rng *rand.Rand) *Simulator {
	id := opts.GatewayID
	if id == "" {
		id = "gateway-" + uuid.New().String()[:8]
	}
	return &Simulator{
		opts:      opts,
		gatewayID: id,
		sensors:   sensor.BuildRoster(opts.SensorCount, rng),
		gen:       sensor.NewGenerator(rng),
		startedAt: time.Now(),
	}
}

func (s *Simulator) GatewayID() string        { return s.gatewayID }
func (s *Simulator) Sensors() []domain.Sensor { return s.sensors }
func (s *Simulator) Connected() bool          { return s.connected.Load() }

func (s *Simulator) Stats() Stats {
	return Stats{
		Batches:       s.batches.Load(),
		Messages:      s.messages.Load(),
		PublishErrors: s.pubErrors.Load(),
		StartedAt:     s.startedAt,
	}
}

// Connect establishes the broker session. Reconnection after an unsolicited
// disconnect is deliberately not attempted; ticks degrade to no-ops instead.
func (s *Simulator) Connect() error {
	opts := mqtt.NewClientOptions().
		AddBroker(s.opts.BrokerURL).
		SetClientID("iot-gateway-" + s.gatewayID).
		SetConnectTimeout(connectTimeout).
		SetKeepAlive(60 * time.Second).
		SetAutoReconnect(false)
	if s.opts.Username != "" {
		opts.SetUsername(s.opts.Username)
		opts.SetPassword(s.opts.Password)
	}
	opts.OnConnect = func(mqtt.Client) {
		s.connected.Store(true)
		log.Info().Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		s.connected.Store(false)
		log.Warn().Err(err).Msg("unexpected disconnection from broker")
	}

	log.Info().Str("broker", s.opts.BrokerURL).Msg("connecting to MQTT broker")
	s.client = mqtt.NewClient(opts)
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect to %s: %w", s.opts.BrokerURL, token.Error())
	}
	s.connected.Store(true)
	return nil
}

// PublishTick publishes one reading per sensor, in roster order. Per-sensor
// failures are logged and counted without aborting the tick; only a down
// connection fails the tick as a whole.
func (s *Simulator) PublishTick() error {
	if !s.connected.Load() {
		return ErrNotConnected
	}

	for _, sn := range s.sensors {
		msg := domain.Message{
			GatewayID:  s.gatewayID,
			SensorID:   sn.ID,
			SensorType: sn.Type,
			Location:   sn.Location,
			Reading:    s.gen.Reading(sn.Type, time.Now()),
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			s.pubErrors.Add(1)
			metrics.PublishErrors.Inc()
			log.Error().Err(err).Str("sensor_id", sn.ID).Msg("encode message")
			continue
		}

		topic := fmt.Sprintf("iot/gateway/%s/sensors/%s/%s", s.gatewayID, sn.Type, sn.ID)
		log.Debug().Str("topic", topic).RawJSON("payload", payload).Msg("publishing")

		token := s.client.Publish(topic, 1, false, payload)
		go s.watchPublish(token, topic)
		s.messages.Add(1)
		metrics.MessagesPublished.Inc()
	}
	return nil
}

// watchPublish waits for the broker ack in the background so the tick loop
// never blocks on delivery.
func (s *Simulator) watchPublish(token mqtt.Token, topic string) {
	if token.Wait() && token.Error() != nil {
		s.pubErrors.Add(1)
		metrics.PublishErrors.Inc()
		log.Error().Err(token.Error()).Str("topic", topic).Msg("publish failed")
	}
}

// Run ticks immediately and then on every interval until the context is
// cancelled or the configured duration elapses. A tick is not started once
// the duration deadline has passed. Disconnect runs on every exit path.
func (s *Simulator) Run(ctx context.Context) {
	log.Info().
		Str("gateway_id", s.gatewayID).
		Int("sensors", len(s.sensors)).
		Msg("starting gateway simulator")

	interval := s.opts.Interval
	if interval <= 0 {
		interval = time.Second
	}
	log.Info().Dur("interval", interval).Msg("publishing sensor data")

	var deadline time.Time
	if s.opts.Duration > 0 {
		deadline = time.Now().Add(s.opts.Duration)
		log.Info().Dur("duration", s.opts.Duration).Msg("simulator will run for a fixed duration")
	} else {
		log.Info().Msg("simulator will run until interrupted")
	}

	defer s.Disconnect()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			log.Info().Msg("configured duration elapsed")
			return
		}

		if err := s.PublishTick(); err != nil {
			log.Error().Err(err).Msg("skipping batch")
		} else {
			n := s.batches.Add(1)
			metrics.BatchesPublished.Inc()
			log.Info().Uint64("batch", n).Int("sensors", len(s.sensors)).Msg("published sensor data batch")
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("simulator interrupted")
			return
		case <-ticker.C:
		}
	}
}

// Disconnect tears down the broker session. Safe to call when already
// disconnected.
func (s *Simulator) Disconnect() {
	if s.client == nil || !s.connected.Load() {
		return
	}
	s.connected.Store(false)
	s.client.Disconnect(250)
	log.Info().Msg("disconnected from MQTT broker")
}
