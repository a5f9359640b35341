package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/hy4ri/workout-tui/internal/api"
	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/notify"
)

// startFetch cancels any in-flight load and starts a new one. Only the
// result carrying the latest fetch ID is ever applied.
func (a *App) startFetch() tea.Cmd {
	if a.cancelFetch != nil {
		a.cancelFetch()
	}
	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.NewString()
	a.fetchID = id
	a.cancelFetch = cancel
	a.loading = true
	a.err = nil
	a.log.Debug("fetch_started", "fetch_id", id)

	client := a.client
	return func() tea.Msg {
		workouts, err := client.GetWorkouts(ctx)
		return workoutsLoadedMsg{fetchID: id, workouts: workouts, err: err}
	}
}

// handleWorkoutsLoaded applies a fetch result.
func (a *App) handleWorkoutsLoaded(msg workoutsLoadedMsg) tea.Cmd {
	if msg.fetchID != a.fetchID {
		a.log.Debug("fetch_discarded", "fetch_id", msg.fetchID, "reason", "stale")
		return nil
	}
	a.loading = false
	if a.cancelFetch != nil {
		a.cancelFetch()
		a.cancelFetch = nil
	}
	if api.IsCanceled(msg.err) {
		a.log.Debug("fetch_discarded", "fetch_id", msg.fetchID, "reason", "canceled")
		return nil
	}
	if msg.err != nil {
		a.err = msg.err
		a.statusMsg = ""
		a.log.Error("fetch_failed", "fetch_id", msg.fetchID, "error", msg.err)
		if a.config.UI.NotifyErrors {
			return a.notifyCmd(msg.err)
		}
		return nil
	}

	a.workouts = msg.workouts
	a.index = calendar.NewIndex(msg.workouts)
	a.selection.SetIndex(a.index)
	a.refreshGrid()
	a.refreshDetail()
	a.err = nil
	a.statusMsg = fmt.Sprintf("Loaded %d workouts on %d days", len(msg.workouts), a.index.Len())
	a.log.Info("fetch_completed", "fetch_id", msg.fetchID, "workouts", len(msg.workouts), "days", a.index.Len())
	return nil
}

// notifyCmd raises a desktop notification off the update loop.
func (a *App) notifyCmd(err error) tea.Cmd {
	n, log := a.notifier, a.log
	return func() tea.Msg {
		title, body := notify.FormatFetchFailure(err)
		if nerr := n.Notify(title, body); nerr != nil {
			log.Warn("notify_failed", "error", nerr)
		}
		return nil
	}
}
