// Package http exposes the simulator's status API: health, the sensor
// roster, run statistics, and Prometheus metrics.
package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ANIKETSHETTY47/iot-gateway-simulator/internal/gateway"
)

func Register(app *fiber.App, sim *gateway.Simulator) {
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Get("/sensors", func(c *fiber.Ctx) error {
		return c.JSON(sim.Sensors())
	})

	app.Get("/status", func(c *fiber.Ctx) error {
		stats := sim.Stats()
		return c.JSON(fiber.Map{
			"gateway_id":     sim.GatewayID(),
			"connected":      sim.Connected(),
			"sensors":        len(sim.Sensors()),
			"batches":        stats.Batches,
			"messages":       stats.Messages,
			"publish_errors": stats.PublishErrors,
			"started_at":     stats.StartedAt,
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
