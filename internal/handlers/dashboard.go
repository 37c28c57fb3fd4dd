package handlers

import (
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bako110/pausemanager/internal/filter"
	"github.com/bako110/pausemanager/internal/gateway"
	"github.com/bako110/pausemanager/internal/models"
	"github.com/bako110/pausemanager/internal/monitor"
	"github.com/bako110/pausemanager/internal/stats"
)

type DashboardHandler struct {
	gw      *gateway.Client
	monitor *monitor.Monitor
}

func NewDashboardHandler(gw *gateway.Client, mon *monitor.Monitor) *DashboardHandler {
	return &DashboardHandler{gw: gw, monitor: mon}
}

// Show loads everything the dashboard needs in one shot. The four fetches run
// concurrently and each degrades to an empty or default value on its own
// failure, so the aggregation step always receives well-typed inputs.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.gw.Health(ctx); err != nil {
		render(w, "dashboard.html", map[string]any{
			"Offline": true,
			"Notice":  offlineMessage,
			"Status":  h.monitor.Status(),
		})
		return
	}

	var (
		backendStats models.DashboardStats
		events       []models.Event
		clients      []models.Client
		services     []models.Service
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := h.gw.DashboardStats(gctx)
		if err != nil {
			log.Printf("dashboard stats fetch degraded: %v", err)
			s = models.DashboardStats{}
		}
		backendStats = s
		return nil
	})
	g.Go(func() error {
		evs, err := h.gw.UpcomingEvents(gctx)
		if err != nil {
			log.Printf("upcoming events fetch degraded: %v", err)
			evs = nil
		}
		events = evs
		return nil
	})
	g.Go(func() error {
		cls, err := h.gw.ListClients(gctx)
		if err != nil {
			log.Printf("clients fetch degraded: %v", err)
			cls = nil
		}
		clients = activeClients(cls, 5)
		return nil
	})
	g.Go(func() error {
		svcs, err := h.gw.ListServices(gctx)
		if err != nil {
			log.Printf("services fetch degraded: %v", err)
			svcs = nil
		}
		services = svcs
		return nil
	})
	_ = g.Wait() // every branch returns nil; failures degrade in place

	merged := stats.Merge(backendStats, stats.Compute(services, time.Now()))

	eventQuery := r.URL.Query().Get("eq")
	clientQuery := r.URL.Query().Get("cq")
	shownEvents := filter.Match(events, eventQuery, func(e models.Event) []string {
		return []string{e.Name, e.Date, e.Client.Name}
	})
	shownClients := filter.Match(clients, clientQuery, func(c models.Client) []string {
		return []string{c.Name, c.Contact, c.Email}
	})

	render(w, "dashboard.html", map[string]any{
		"Stats":       merged,
		"Events":      decorateEvents(shownEvents, time.Now()),
		"Clients":     shownClients,
		"EventQuery":  eventQuery,
		"ClientQuery": clientQuery,
		"Status":      h.monitor.Status(),
	})
}

// activeClients keeps the first n active-status records, the subset the
// dashboard table shows.
func activeClients(clients []models.Client, n int) []models.Client {
	out := make([]models.Client, 0, n)
	for _, c := range clients {
		if c.Status != models.ClientActive {
			continue
		}
		out = append(out, c)
		if len(out) == n {
			break
		}
	}
	return out
}

// eventRow pairs an event with its display date label.
type eventRow struct {
	models.Event
	DateLabel string
}

func decorateEvents(events []models.Event, now time.Time) []eventRow {
	rows := make([]eventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, eventRow{Event: e, DateLabel: formatEventDate(e, now)})
	}
	return rows
}

// formatEventDate renders "Aujourd'hui, 10:00" / "Demain, 10:00" for near
// dates and a French date otherwise.
func formatEventDate(e models.Event, now time.Time) string {
	day, err := time.ParseInLocation("2006-01-02", e.Date, now.Location())
	if err != nil {
		return "Date invalide"
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case day.Equal(today):
		return "Aujourd'hui, " + e.StartTime
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Demain, " + e.StartTime
	default:
		return day.Format("02/01/2006") + ", " + e.StartTime
	}
}
