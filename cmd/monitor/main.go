// Command monitor subscribes to a gateway's sensor topics and logs every
// reading it sees, for eyeballing simulator traffic during development.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/iot-gateway-simulator/internal/config"
	"github.com/ANIKETSHETTY47/iot-gateway-simulator/internal/domain"
)

const subscription = "iot/gateway/+/sensors/+/+"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(config.BrokerURL()).
		SetClientID("iot-gateway-monitor")
	if config.MQTTUsername() != "" {
		opts.SetUsername(config.MQTTUsername())
		opts.SetPassword(config.MQTTPassword())
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	handler := func(_ mqtt.Client, m mqtt.Message) {
		var msg domain.Message
		if err := json.Unmarshal(m.Payload(), &msg); err != nil {
			log.Error().Err(err).Str("topic", m.Topic()).Msg("malformed message")
			return
		}
		log.Info().
			Str("gateway_id", msg.GatewayID).
			Str("sensor_id", msg.SensorID).
			Str("type", string(msg.SensorType)).
			Str("location", msg.Location).
			Float64("value", msg.Reading.Value).
			Str("unit", msg.Reading.Unit).
			Msg("reading")
	}

	if token := client.Subscribe(subscription, 1, handler); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("subscribe failed")
	}
	log.Info().Str("broker", config.BrokerURL()).Msg("monitor running; Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
}
