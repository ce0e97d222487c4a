package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/iot-gateway-simulator/internal/config"
	"github.com/ANIKETSHETTY47/iot-gateway-simulator/internal/gateway"
	httpHandlers "github.com/ANIKETSHETTY47/iot-gateway-simulator/internal/http"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	level, err := zerolog.ParseLevel(config.LogLevel())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	sim := gateway.New(gateway.Options{
		BrokerURL:   config.BrokerURL(),
		GatewayID:   config.GatewayID(),
		Username:    config.MQTTUsername(),
		Password:    config.MQTTPassword(),
		SensorCount: config.SensorCount(),
		Interval:    config.PublishInterval(),
		Duration:    config.RunDuration(),
	}, rand.New(rand.NewSource(time.Now().UnixNano())))

	if err := sim.Connect(); err != nil {
		log.Fatal().Err(err).Msg("mqtt connect")
	}

	if addr := config.StatusAddr(); addr != "" {
		app := fiber.New(fiber.Config{DisableStartupMessage: true})
		httpHandlers.Register(app, sim)
		go func() {
			log.Info().Str("addr", addr).Msg("status api listening")
			if err := app.Listen(addr); err != nil {
				log.Error().Err(err).Msg("status api stopped")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim.Run(ctx)
	log.Info().Msg("simulation done")
}
