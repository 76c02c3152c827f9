package publisher

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"power-cost-backend/config"
)

// MessageSender defines the interface for publishing a message to a topic.
type MessageSender interface {
	Publish(topic string, qos byte, payload []byte) error
}

const connectTimeout = 10 * time.Second

// MQTTSender publishes messages to an MQTT broker.
type MQTTSender struct {
	client  mqtt.Client
	timeout time.Duration
}

// NewMQTTSender connects to the configured broker. The first connect is
// attempted once; the client only reconnects after it has been up.
func NewMQTTSender(cfg config.MQTTConfig) (*MQTTSender, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required when enabled")
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.Broker))
	opts.SetClientID(cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout + time.Second) {
		client.Disconnect(0)
		return nil, fmt.Errorf("connecting to MQTT broker %s: timed out after %s", cfg.Broker, connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connecting to MQTT broker %s: %w", cfg.Broker, err)
	}

	return &MQTTSender{client: client, timeout: 5 * time.Second}, nil
}

// Publish sends payload as a retained message so dashboards see the latest
// estimate per device on subscribe.
func (s *MQTTSender) Publish(topic string, qos byte, payload []byte) error {
	token := s.client.Publish(topic, qos, true, payload)
	if !token.WaitTimeout(s.timeout) {
		return fmt.Errorf("publishing to %s: timed out after %s", topic, s.timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}
	return nil
}

// Close disconnects from the broker.
func (s *MQTTSender) Close() {
	if s.client != nil && s.client.IsConnected() {
		s.client.Disconnect(250)
	}
}
