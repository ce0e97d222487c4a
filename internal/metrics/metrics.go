// Package metrics provides Prometheus counters for the simulator's publish
// activity, exposed through the status API's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BatchesPublished counts publish ticks that ran to completion.
	BatchesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iot_gateway_batches_published_total",
		Help: "The total number of sensor data batches published.",
	})

	// MessagesPublished counts sensor messages handed to the MQTT client.
	MessagesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iot_gateway_messages_published_total",
		Help: "The total number of sensor messages handed to the MQTT client.",
	})

	// PublishErrors counts messages that failed to encode or publish.
	PublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iot_gateway_publish_errors_total",
		Help: "The total number of sensor messages that could not be published.",
	})
)
