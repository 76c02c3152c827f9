package publisher

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"power-cost-backend/internal/model"
)

// Message is the payload published for each saved estimate.
type Message struct {
	ID               int64     `json:"id"`
	Device           string    `json:"device"`
	PowerSaving      bool      `json:"power_saving"`
	DailyEnergyKWh   float64   `json:"daily_energy_kwh"`
	MonthlyEnergyKWh float64   `json:"monthly_energy_kwh"`
	MonthlyCost      float64   `json:"monthly_cost"`
	Currency         string    `json:"currency"`
	CreatedAt        time.Time `json:"created_at"`
}

// WorkerPool publishes saved estimates in the background.
type WorkerPool struct {
	size        int
	jobs        chan model.Estimate
	sender      MessageSender
	topicPrefix string
	qos         byte
}

// NewWorkerPool creates a new worker pool. A nil sender makes the pool drain
// jobs without publishing.
func NewWorkerPool(size, queue int, sender MessageSender, topicPrefix string, qos byte) *WorkerPool {
	return &WorkerPool{
		size:        size,
		jobs:        make(chan model.Estimate, queue),
		sender:      sender,
		topicPrefix: strings.TrimSuffix(topicPrefix, "/"),
		qos:         qos,
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Publisher worker %d started", id)
	for {
		select {
		case e := <-wp.jobs:
			wp.publish(e)
		case <-ctx.Done():
			log.Printf("Publisher worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues an estimate for publishing. It never blocks; when the
// queue is full the estimate is dropped and false is returned.
func (wp *WorkerPool) Dispatch(e model.Estimate) bool {
	select {
	case wp.jobs <- e:
		return true
	default:
		log.Printf("Publisher queue full, dropping estimate %d", e.ID)
		return false
	}
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan model.Estimate {
	return wp.jobs
}

// Topic returns the topic an estimate for device is published to.
func (wp *WorkerPool) Topic(device string) string {
	return wp.topicPrefix + "/estimates/" + topicSegment(device)
}

func (wp *WorkerPool) publish(e model.Estimate) {
	if wp.sender == nil {
		return
	}

	payload, err := json.Marshal(Message{
		ID:               e.ID,
		Device:           e.Device,
		PowerSaving:      e.PowerSaving,
		DailyEnergyKWh:   e.DailyEnergyKWh,
		MonthlyEnergyKWh: e.MonthlyEnergyKWh,
		MonthlyCost:      e.MonthlyCost,
		Currency:         e.Currency,
		CreatedAt:        e.CreatedAt,
	})
	if err != nil {
		log.Printf("Error encoding estimate %d: %v", e.ID, err)
		return
	}

	topic := wp.Topic(e.Device)
	if err := wp.sender.Publish(topic, wp.qos, payload); err != nil {
		log.Printf("Error publishing estimate %d to %s: %v", e.ID, topic, err)
	}
}

// topicSegment strips MQTT wildcard and separator characters from a device name.
func topicSegment(device string) string {
	seg := strings.Map(func(r rune) rune {
		switch r {
		case '/', '+', '#', ' ':
			return '_'
		}
		return r
	}, strings.TrimSpace(device))
	if seg == "" {
		return "unknown"
	}
	return seg
}
