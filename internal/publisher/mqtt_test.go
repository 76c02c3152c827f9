package publisher

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"power-cost-backend/config"
)

func TestNewMQTTSender_RequiresBroker(t *testing.T) {
	sender, err := NewMQTTSender(config.MQTTConfig{Enabled: true, ClientID: "powercost-test"})
	assert.Error(t, err)
	assert.Nil(t, sender)
}

func TestNewMQTTSender_UnreachableBroker(t *testing.T) {
	// Reserve a port, then close it so nothing is listening there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	done := make(chan error, 1)
	go func() {
		_, err := NewMQTTSender(config.MQTTConfig{Enabled: true, Broker: addr, ClientID: "powercost-test"})
		done <- err
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
		assert.Contains(t, err.Error(), addr)
	case <-time.After(connectTimeout + 5*time.Second):
		t.Fatal("NewMQTTSender did not return for an unreachable broker")
	}
}
