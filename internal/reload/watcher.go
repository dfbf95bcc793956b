package reload

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Debounce is how long the file has to stay quiet before onChange runs. A
// truncating write fires more than one event and the first one can see an
// empty file.
const Debounce = 50 * time.Millisecond

// Watcher calls onChange when the watched file is written or replaced. The
// parent directory is watched because editors often swap the file instead
// of writing it in place.
type Watcher struct {
	fw       *fsnotify.Watcher
	path     string
	onChange func()
	log      zerolog.Logger
	done     chan struct{}
}

func Watch(path string, onChange func(), log zerolog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fw:       fw,
		path:     abs,
		onChange: onChange,
		log:      log,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)

	timer := time.NewTimer(Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				w.log.Debug().Str("file", w.path).Str("op", ev.Op.String()).Msg("template changed")
				timer.Reset(Debounce)
			}
		case <-timer.C:
			w.onChange()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}
