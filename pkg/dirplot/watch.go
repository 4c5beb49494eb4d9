package dirplot

import (
	"context"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a file must be quiet before it is re-rendered.
const DefaultDebounce = 250 * time.Millisecond

// Watcher re-renders inputs in a directory as they are created or modified.
// Files are processed one at a time on the goroutine that calls Run.
type Watcher struct {
	plotter  *Plotter
	dir      string
	debounce time.Duration
	logger   *zap.Logger

	pending map[string]time.Time
}

// NewWatcher creates a Watcher over dir, "" meaning the working directory.
// A non-positive debounce uses DefaultDebounce.
func NewWatcher(p *Plotter, dir string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		plotter:  p,
		dir:      dir,
		debounce: debounce,
		logger:   p.logger,
		pending:  make(map[string]time.Time),
	}
}

// Run renders every existing input once, then watches the directory until
// ctx is cancelled. Per-file failures, including those in the initial pass,
// are logged and skipped.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dir := w.dir
	if dir == "" {
		dir = "."
	}
	if err := fw.Add(dir); err != nil {
		return NewProcessError(dir, ErrDiscovery, err)
	}
	w.logger.Info("watching", zap.String("dir", dir), zap.Duration("debounce", w.debounce))

	inputs, err := w.plotter.DiscoverInputs(w.dir)
	if err != nil {
		return err
	}
	for _, path := range inputs {
		w.render(path)
	}

	tick := w.debounce / 2
	if tick <= 0 {
		tick = w.debounce
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watch stopped", zap.Error(ctx.Err()))
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", zap.Error(err))

		case now := <-ticker.C:
			w.flush(now)
		}
	}
}

// handleEvent queues created or modified inputs for rendering.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !w.plotter.accepts(event.Name) {
		return
	}
	w.pending[event.Name] = time.Now()
}

// flush renders every queued file that has been quiet for the debounce period.
func (w *Watcher) flush(now time.Time) {
	var ready []string
	for path, last := range w.pending {
		if now.Sub(last) >= w.debounce {
			ready = append(ready, path)
		}
	}
	sort.Strings(ready)

	for _, path := range ready {
		delete(w.pending, path)

		w.render(path)
	}
}

// render processes one input, logging the outcome. Failures never stop
// the watcher.
func (w *Watcher) render(path string) {
	artifact, err := w.plotter.Process(path)
	if err != nil {
		w.logger.Error("render failed", zap.String("path", path), zap.Error(err))
		return
	}
	w.logger.Info("wrote plot", zap.String("output", artifact.Output), zap.Int("points", artifact.Points))
}
