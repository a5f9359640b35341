// Package tui provides the terminal user interface for the workout calendar.
package tui

import (
	"context"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/api"
	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/config"
	"github.com/hy4ri/workout-tui/internal/host"
	"github.com/hy4ri/workout-tui/internal/logging"
	"github.com/hy4ri/workout-tui/internal/notify"
	"github.com/hy4ri/workout-tui/internal/theme"
	"github.com/hy4ri/workout-tui/internal/tui/components"
	"github.com/hy4ri/workout-tui/internal/tui/gesture"
	"github.com/hy4ri/workout-tui/internal/tui/state"
	"github.com/hy4ri/workout-tui/internal/tui/styles"
)

// WorkoutFetcher loads the workout list. *api.Client implements it.
type WorkoutFetcher interface {
	GetWorkouts(ctx context.Context) ([]api.Workout, error)
}

// Options carries the App's collaborators. Zero fields get defaults.
type Options struct {
	Client    WorkoutFetcher
	Host      host.Host
	Config    *config.Config
	Clock     calendar.Clock
	Logger    *slog.Logger
	Notifier  notify.Notifier
	Clipboard func(string) error

	// ForceLight starts in light mode regardless of the host color scheme.
	ForceLight bool
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	client    WorkoutFetcher
	host      host.Host
	config    *config.Config
	clock     calendar.Clock
	log       *slog.Logger
	notifier  notify.Notifier
	clipboard func(string) error

	// Data
	workouts []api.Workout
	index    *calendar.Index

	// Calendar state
	nav       *calendar.Navigator
	gesture   *gesture.Interpreter
	selection *state.Selection
	grid      calendar.Grid
	cursor    int
	tapX      int // column of the pending mouse press
	tapY      int

	// Theme
	reconciler *theme.Reconciler
	styles     *styles.Styles

	// Fetch state; exactly one fetch is in flight at a time
	fetchID     string
	cancelFetch context.CancelFunc
	loading     bool

	// Host notifications
	sub        *host.Subscription
	hostEvents chan struct{}
	done       chan struct{}
	closed     bool

	// UI state
	err       error
	statusMsg string
	width     int
	height    int
	showHelp  bool

	// Components
	spinner     spinner.Model
	help        help.Model
	keymap      Keymap
	calendarCmp *components.CalendarModel
	detailCmp   *components.DetailModel
}

// NewApp mounts the app on its host: it signals ready and expand, applies
// the initial theme, and only then subscribes to theme changes.
// Callers must Close the App once the program exits.
func NewApp(opts Options) *App {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Host == nil {
		opts.Host = host.NewDemo()
	}
	if opts.Clock == nil {
		opts.Clock = calendar.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Client == nil {
		opts.Client = api.NewClient(opts.Config.API.Endpoint, opts.Config.API.TimeoutDuration())
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	index := calendar.NewIndex(nil)
	a := &App{
		client:     opts.Client,
		host:       opts.Host,
		config:     opts.Config,
		clock:      opts.Clock,
		log:        opts.Logger,
		notifier:   opts.Notifier,
		clipboard:  opts.Clipboard,
		workouts:   []api.Workout{},
		index:      index,
		nav:        calendar.NewNavigator(opts.Clock.Now()),
		selection:  state.NewSelection(index),
		hostEvents: make(chan struct{}, 1),
		done:       make(chan struct{}),
		spinner:    s,
		help:       help.New(),
		keymap:     DefaultKeymap(),
	}
	a.gesture = gesture.NewInterpreter(a.nav)

	a.host.Ready()
	a.host.Expand()

	mode := theme.ParseMode(a.host.ColorScheme())
	if opts.ForceLight {
		mode = theme.ModeLight
	}
	a.reconciler = theme.NewReconciler(mode, a.host.ThemeParams(), theme.ApplierFunc(a.applyPalette))
	a.reconciler.Apply()

	a.sub = host.Subscribe(a.host, host.EventThemeChanged, a.onHostThemeChanged)

	a.refreshGrid()
	a.resetCursor()
	a.log.Info("app_mounted", "mode", mode.String(), "demo", host.IsDemo(a.host))
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		a.startFetch(),
		a.waitForHostEvent(),
	)
}

// Close cancels any in-flight fetch and releases the host subscription.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	if a.cancelFetch != nil {
		a.cancelFetch()
		a.cancelFetch = nil
	}
	err := a.sub.Close()
	close(a.done)
	a.log.Info("app_unmounted")
	return err
}

// applyPalette rebuilds the styles; it is the reconciler's Applier.
func (a *App) applyPalette(p theme.Palette) {
	a.styles = styles.New(p)
	if a.calendarCmp == nil {
		a.calendarCmp = components.NewCalendar(a.styles)
		a.detailCmp = components.NewDetail(a.styles)
		return
	}
	a.calendarCmp.SetStyles(a.styles)
	a.detailCmp.SetStyles(a.styles)
}

// onHostThemeChanged runs on the host's goroutine. It only queues a wake-up;
// the palette is re-derived inside Update. Pending wake-ups coalesce because
// the handler reads the host's current params.
func (a *App) onHostThemeChanged() {
	select {
	case a.hostEvents <- struct{}{}:
	default:
	}
}

// waitForHostEvent turns the next host notification into a message.
func (a *App) waitForHostEvent() tea.Cmd {
	events, done := a.hostEvents, a.done
	return func() tea.Msg {
		select {
		case <-events:
			return hostThemeChangedMsg{}
		case <-done:
			return nil
		}
	}
}

// Message types
type workoutsLoadedMsg struct {
	fetchID  string
	workouts []api.Workout
	err      error
}
type hostThemeChangedMsg struct{}
type statusMsg struct{ msg string }
type errMsg struct{ err error }
