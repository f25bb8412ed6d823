package gosieview

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// ConfigWatcher reloads a config file whenever it changes on disk and
// delivers the parsed result on Configs. Files that fail to load are
// reported on Errors and the previous config stays in effect.
//
// The watcher never touches the scene itself; whoever owns the render loop
// drains Configs and applies them.
type ConfigWatcher struct {
	watcher  *fsnotify.Watcher
	filename string
	Configs  chan *Config
	Errors   chan error
	closeCh  chan struct{}
	doneCh   chan struct{}
	once     sync.Once
}

func NewConfigWatcher(filename string) (*ConfigWatcher, error) {
	if !isConfigFile(filename) {
		return nil, fmt.Errorf("gosieview: watch %s: not a yaml file", filename)
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("gosieview: watch %s: %w", filename, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory; editors often replace the file instead of
	// writing it in place.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("gosieview: watch %s: %w", filename, err)
	}

	watcher := &ConfigWatcher{
		watcher:  w,
		filename: abs,
		Configs:  make(chan *Config, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *ConfigWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
		close(w.Configs)
		close(w.Errors)
	})
	return err
}

func (w *ConfigWatcher) run() {
	defer close(w.doneCh)

	// Editors and os.WriteFile produce bursts of events, the first of
	// which can see a truncated file. Reload once the burst settles.
	settle := time.NewTimer(reloadDebounce)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.filename {
				continue
			}
			settle.Reset(reloadDebounce)
		case <-settle.C:
			cfg, err := LoadConfig(w.filename)
			if err != nil {
				w.sendError(err)
				continue
			}
			LogInfo("config: reloaded %s", w.filename)
			w.sendConfig(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendConfig replaces any config still waiting in the channel so the
// reader always gets the newest one.
func (w *ConfigWatcher) sendConfig(cfg *Config) {
	for {
		select {
		case w.Configs <- cfg:
			return
		case <-w.closeCh:
			return
		default:
		}
		select {
		case <-w.Configs:
		default:
		}
	}
}

func (w *ConfigWatcher) sendError(err error) {
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	default:
		LogError("config: %v", err)
	}
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
