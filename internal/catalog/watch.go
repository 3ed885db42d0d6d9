package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 250 * time.Millisecond

// WatchOptions tune a Watcher.
type WatchOptions struct {
	Debounce time.Duration
	Logger   *zerolog.Logger
	// OnReload, if set, is called after every reload attempt with its result.
	OnReload func(error)
}

// Watcher reloads a Store whenever its source file changes. A document that
// fails to parse is logged and the store keeps serving the previous catalog.
type Watcher struct {
	path     string
	store    *Store
	fs       *fsnotify.Watcher
	debounce time.Duration
	log      zerolog.Logger
	onReload func(error)

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Watch starts watching path. The parent directory is watched rather than
// the file so that editors which replace the file on save are still seen.
func Watch(ctx context.Context, path string, store *Store, opts WatchOptions) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		path:     abs,
		store:    store,
		fs:       fs,
		debounce: opts.Debounce,
		log:      log.With().Str("component", "catalog-watch").Str("path", abs).Logger(),
		onReload: opts.OnReload,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go w.run(ctx)
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		w.cancel()
		err = w.fs.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")

		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	c, err := LoadFile(w.path)
	if err == nil {
		err = w.store.Load(ctx, c)
	}
	if err != nil {
		w.log.Error().Err(err).Msg("reload failed, keeping previous catalog")
	} else {
		w.log.Info().
			Int("experiences", len(c.Experiences)).
			Int("projects", len(c.Projects)).
			Int("skills", len(c.Skills)).
			Msg("catalog reloaded")
	}
	if w.onReload != nil {
		w.onReload(err)
	}
}
