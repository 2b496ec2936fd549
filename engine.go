package datesort

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
)

type Options struct {
	// ConfigPath defaults to DefaultConfigName.
	ConfigPath string
	// InputPath overrides the config's input.
	InputPath string
	Color     bool
	// Dates are sorted along with those read from the input and config.
	Dates []CalendarDate
	// Fallback is used only when there is no input file, no config
	// dates and no Dates.
	Fallback []CalendarDate
	Out      io.Writer
}

type Engine struct {
	opts Options

	mu    sync.RWMutex
	cfg   *Config
	title string
	dates []CalendarDate
}

func NewEngine(opts Options) (*Engine, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = DefaultConfigName
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	e := &Engine{opts: opts}
	err := e.Reload()
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Reload re-reads the config and input files.
func (e *Engine) Reload() error {
	cfg, err := ReadConfig(e.opts.ConfigPath)
	if err != nil {
		return err
	}

	if e.opts.Color {
		cfg.Color = true
	}

	title := cfg.Title
	var dates []CalendarDate
	input := e.inputPath(cfg)
	if input != "" {
		dl, err := ReadDateList(input)
		if err != nil {
			return err
		}

		if dl.Title != "" {
			title = dl.Title
		}
		dates = append(dates, dl.Dates...)
	}

	dates = append(dates, cfg.Dates...)
	dates = append(dates, e.opts.Dates...)
	if input == "" && len(cfg.Dates) == 0 && len(e.opts.Dates) == 0 {
		dates = append(dates, e.opts.Fallback...)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = cfg
	e.title = title
	e.dates = dates
	return nil
}

func (e *Engine) inputPath(cfg *Config) string {
	if e.opts.InputPath != "" {
		return e.opts.InputPath
	}
	if cfg.Input == "" || filepath.IsAbs(cfg.Input) {
		return cfg.Input
	}
	return filepath.Join(filepath.Dir(e.opts.ConfigPath), cfg.Input)
}

func (e *Engine) Config() *Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

// Dates returns the unsorted dates.
func (e *Engine) Dates() []CalendarDate {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]CalendarDate(nil), e.dates...)
}

func (e *Engine) Sorted() []CalendarDate {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return SortDates(e.dates)
}

func (e *Engine) Report() *ReportContext {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return NewReportContext(e.title, e.cfg.Format, SortDates(e.dates))
}

// Print writes the sorted dates to w.
func (e *Engine) Print(w io.Writer) error {
	cfg := e.Config()
	p := &Printer{Layout: cfg.Format, Color: cfg.Color}
	return p.Print(w, e.Sorted())
}

func (e *Engine) Watch() (io.Closer, error) {
	dirs := []string{filepath.Dir(e.opts.ConfigPath)}
	if input := e.inputPath(e.Config()); input != "" {
		if dir := filepath.Dir(input); dir != dirs[0] {
			dirs = append(dirs, dir)
		}
	}

	return StartWatching(dirs, e)
}

func (e *Engine) OnChange() error {
	log.Println("Change detected. Re-sorting...")
	err := e.Reload()
	if err != nil {
		return err
	}

	return e.Print(e.opts.Out)
}

func (e *Engine) Serve(addr string) error {
	return http.ListenAndServe(addr, withAccessLog(e.Handler()))
}
