package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultBrokerHost = "localhost"
	DefaultBrokerPort = 1883
)

// Load defines the CLI surface and binds it into viper, with environment
// variables (dashes mapped to underscores, e.g. BROKER_HOST) overriding the
// flag defaults and explicit flags overriding everything. args is the raw
// argument slice: os.Args[1:] in main, nil in tests.
func Load(args []string) error {
	fs := pflag.NewFlagSet("iot-gateway-simulator", pflag.ContinueOnError)

	fs.String("broker-host", DefaultBrokerHost, "MQTT broker hostname")
	fs.Int("broker-port", DefaultBrokerPort, "MQTT broker port")
	fs.Int("interval", 5, "publish interval in seconds")
	fs.Int("duration", 0, "seconds to run before exiting (0 = run until interrupted)")
	fs.Int("sensors", 10, "number of sensors to simulate")
	fs.String("gateway-id", "", "gateway identity (default: generated per start)")
	fs.String("mqtt-username", "", "broker username, if the broker requires one")
	fs.String("mqtt-password", "", "broker password, if the broker requires one")
	fs.String("status-addr", ":8080", "status API listen address (empty disables)")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := viper.BindPFlags(fs); err != nil {
		return err
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return nil
}

func BrokerHost() string   { return viper.GetString("broker-host") }
func BrokerPort() int      { return viper.GetInt("broker-port") }
func GatewayID() string    { return viper.GetString("gateway-id") }
func SensorCount() int     { return viper.GetInt("sensors") }
func MQTTUsername() string { return viper.GetString("mqtt-username") }
func MQTTPassword() string { return viper.GetString("mqtt-password") }
func StatusAddr() string   { return viper.GetString("status-addr") }
func LogLevel() string     { return viper.GetString("log-level") }

// BrokerURL renders the paho broker address for the configured host and port.
func BrokerURL() string {
	return fmt.Sprintf("tcp://%s:%d", BrokerHost(), BrokerPort())
}

func PublishInterval() time.Duration {
	return time.Duration(viper.GetInt("interval")) * time.Second
}

// RunDuration is zero when the simulator should run until interrupted.
func RunDuration() time.Duration {
	return time.Duration(viper.GetInt("duration")) * time.Second
}
