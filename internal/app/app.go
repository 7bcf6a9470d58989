package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/dshills/keyline/internal/config"
	"github.com/dshills/keyline/internal/editor"
	"github.com/dshills/keyline/internal/history"
	"github.com/dshills/keyline/internal/store"
	"github.com/dshills/keyline/internal/term"
)

// ErrNotATerminal is returned when the app is started without a
// terminal backend on a non-interactive stdin.
var ErrNotATerminal = errors.New("stdin is not a terminal")

// LineHandler processes one submitted line. Returning an error stops
// the run loop.
type LineHandler func(line string) error

// Options configures an App.
type Options struct {
	// ConfigPath overrides the default configuration file location.
	ConfigPath string

	// Terminal overrides the default stdio backend. Used by tests and
	// embedders driving the editor over other byte channels.
	Terminal term.Terminal

	// Prompt is written before each line. Defaults to "keyline> ".
	Prompt string

	// Handler receives each submitted line. Defaults to echoing the
	// line to the terminal.
	Handler LineHandler

	// LogOutput receives application logs. When nil, logging is
	// disabled: the terminal is busy with the editing session.
	LogOutput io.Writer

	// DisableWatch turns off configuration live reload.
	DisableWatch bool
}

// App ties configuration, terminal, editor, and history store together.
type App struct {
	cfg    config.Config
	opts   Options
	log    *Logger
	term   term.Terminal
	ed     *editor.Editor
	st     *store.Store
	watch  *config.Watcher
	reload atomic.Bool
}

// New creates an App from the given options.
func New(opts Options) (*App, error) {
	if opts.Prompt == "" {
		opts.Prompt = "keyline> "
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log := NewLogger(ParseLogLevel(cfg.Log.Level), opts.LogOutput)
	if opts.LogOutput == nil {
		log.Disable()
	}
	log = log.WithField("session", uuid.New().String())

	a := &App{
		cfg:  cfg,
		opts: opts,
		log:  log,
	}

	if err := a.setupTerminal(); err != nil {
		return nil, err
	}
	if err := a.setupHistory(); err != nil {
		return nil, err
	}
	a.ed = editor.New(a.editorOptions()...)

	if !opts.DisableWatch && cfgPath != "" {
		w, err := config.Watch(cfgPath, func() { a.reload.Store(true) })
		if err != nil {
			log.Warn("config watch unavailable: %v", err)
		} else {
			a.watch = w
		}
	}

	log.Info("initialized (history entries: %d)", a.ed.History().Len())
	return a, nil
}

// Run executes the read-eval loop until end of input or a handler
// error. Interrupted lines re-prompt.
func (a *App) Run() error {
	handler := a.opts.Handler
	if handler == nil {
		handler = a.echoHandler
	}

	for {
		if a.reload.Swap(false) {
			a.applyConfig()
		}

		line, err := a.ed.ReadLine(a.opts.Prompt, a.term)
		switch {
		case errors.Is(err, editor.ErrInterrupted):
			a.log.Debug("line interrupted")
			continue
		case errors.Is(err, editor.ErrEndOfInput):
			a.log.Info("end of input")
			return nil
		case err != nil:
			return fmt.Errorf("reading line: %w", err)
		}

		a.persist(line)
		if err := handler(line); err != nil {
			return err
		}
	}
}

// Shutdown restores the terminal and releases the history store and the
// config watcher. Safe to call from a signal handler and more than once.
func (a *App) Shutdown() {
	if a.term != nil {
		if err := a.term.ExitRaw(); err != nil {
			a.log.Error("restoring terminal: %v", err)
		}
	}
	if a.watch != nil {
		a.watch.Close()
		a.watch = nil
	}
	if a.st != nil {
		if err := a.st.Close(); err != nil {
			a.log.Error("closing history store: %v", err)
		}
		a.st = nil
	}
}

// Editor exposes the underlying editor, mainly for tests.
func (a *App) Editor() *editor.Editor {
	return a.ed
}

func (a *App) setupTerminal() error {
	if a.opts.Terminal != nil {
		a.term = a.opts.Terminal
		return nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return ErrNotATerminal
	}
	a.term = term.Stdio()
	return nil
}

func (a *App) setupHistory() error {
	if !a.cfg.History.Persist {
		return nil
	}

	st, err := store.Open(a.cfg.HistoryPath())
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	a.st = st
	return nil
}

// editorOptions maps the active config onto editor options, seeding the
// ring from the store when persistence is on.
func (a *App) editorOptions() []editor.Option {
	ring := history.New(a.cfg.Editor.HistorySize)
	if a.st != nil {
		lines, err := a.st.List(a.cfg.Editor.HistorySize)
		if err != nil {
			a.log.Warn("loading history: %v", err)
		} else {
			ring.Seed(lines)
		}
	}

	opts := []editor.Option{
		editor.WithHistory(ring),
		editor.WithMaxLineLen(a.cfg.Editor.MaxLineLength),
	}
	if a.cfg.Editor.EOFPolicy == config.EOFPolicyDeleteChar {
		opts = append(opts, editor.WithEOFPolicy(editor.EOFDeleteChar))
	}
	return opts
}

// applyConfig reloads the configuration file and rebuilds the editor
// around the surviving history ring. Called between sessions only.
func (a *App) applyConfig() {
	cfgPath := a.opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		a.log.Warn("config reload failed: %v", err)
		return
	}

	ring := a.ed.History()
	a.cfg = cfg
	a.log.SetLevel(ParseLogLevel(cfg.Log.Level))

	opts := []editor.Option{
		editor.WithHistory(ring),
		editor.WithMaxLineLen(cfg.Editor.MaxLineLength),
	}
	if cfg.Editor.EOFPolicy == config.EOFPolicyDeleteChar {
		opts = append(opts, editor.WithEOFPolicy(editor.EOFDeleteChar))
	}
	a.ed = editor.New(opts...)
	a.log.Info("configuration reloaded")
}

// persist appends a line to the on-disk store, mirroring the ring's
// suppression of empty lines.
func (a *App) persist(line string) {
	if a.st == nil || line == "" {
		return
	}
	if _, err := a.st.Add(line); err != nil {
		a.log.Error("persisting line: %v", err)
	}
}

// echoHandler writes the submitted line back to the terminal.
func (a *App) echoHandler(line string) error {
	if err := a.term.Write([]byte(line)); err != nil {
		return err
	}
	if err := a.term.WriteNewline(); err != nil {
		return err
	}
	return a.term.Flush()
}
