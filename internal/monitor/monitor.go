// Package monitor keeps the gateway's reachability current in the
// background, so views can short-circuit into the offline state without
// probing on every request.
package monitor

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bako110/pausemanager/internal/gateway"
	"github.com/bako110/pausemanager/internal/ws"
)

type Status string

const (
	StatusChecking Status = "checking"
	StatusOnline   Status = "online"
	StatusOffline  Status = "offline"
)

// statusMessage is what connected dashboards receive on a change.
type statusMessage struct {
	Type   string    `json:"type"`
	Status Status    `json:"status"`
	At     time.Time `json:"at"`
}

type Monitor struct {
	gw   *gateway.Client
	hub  *ws.Hub
	cron *cron.Cron

	mu     sync.RWMutex
	status Status
}

func New(gw *gateway.Client, hub *ws.Hub) *Monitor {
	return &Monitor{gw: gw, hub: hub, status: StatusChecking}
}

// Start probes once immediately, then every 30 seconds.
func (m *Monitor) Start() error {
	m.cron = cron.New()
	if _, err := m.cron.AddFunc("@every 30s", m.Probe); err != nil {
		return err
	}
	m.cron.Start()
	go m.Probe()
	return nil
}

func (m *Monitor) Stop() {
	if m.cron != nil {
		m.cron.Stop()
	}
}

// Probe runs one health check and broadcasts the status when it changes.
func (m *Monitor) Probe() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	next := StatusOnline
	if err := m.gw.Health(ctx); err != nil {
		next = StatusOffline
	}

	m.mu.Lock()
	changed := m.status != next
	m.status = next
	m.mu.Unlock()

	if changed {
		log.Printf("gateway status: %s", next)
		if m.hub != nil {
			msg, err := json.Marshal(statusMessage{Type: "gateway_status", Status: next, At: time.Now().UTC()})
			if err == nil {
				m.hub.Broadcast(msg)
			}
		}
	}
}

func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}
