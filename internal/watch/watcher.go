package watch

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kalnal0928/video-player/internal/playlist"
)

// DefaultDebounce batches filesystem events; copying a folder of videos
// fires hundreds of writes that should collapse into one import.
const DefaultDebounce = 500 * time.Millisecond

// ImportFunc receives newly discovered media paths in sorted order. It
// is invoked from a watcher goroutine.
type ImportFunc func(paths []string)

// Watcher monitors a folder tree for media files.
type Watcher struct {
	root     string
	watcher  *fsnotify.Watcher
	onImport ImportFunc
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewWatcher starts watching root recursively. Files already present
// are not imported; only arrivals after the watcher starts are.
func NewWatcher(root string, debounce time.Duration, onImport ImportFunc) (*Watcher, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		root:     root,
		watcher:  fsWatcher,
		onImport: onImport,
		debounce: debounce,
		pending:  make(map[string]struct{}),
		done:     make(chan struct{}),
	}

	if err := w.addWatchRecursive(root); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Close stops the watcher and cleans up resources.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watch error for %s: %v", w.root, err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			// A directory dropped into the tree: watch it and pick up
			// whatever it already contains.
			if err := w.addWatchRecursive(event.Name); err != nil {
				log.Printf("Failed to watch new folder %s: %v", event.Name, err)
			}
			if paths, err := playlist.ScanFolder(event.Name); err == nil {
				w.schedule(paths...)
			}
			return
		}
	}

	if event.Op&(fsnotify.Create|fsnotify.Write) != 0 && playlist.IsAllowedExtension(event.Name) {
		w.schedule(event.Name)
	}
}

// schedule adds paths to the pending set and (re)arms the flush timer.
func (w *Watcher) schedule(paths ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, p := range paths {
		w.pending[p] = struct{}{}
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)

	select {
	case <-w.done:
		return
	default:
	}
	if w.onImport != nil {
		w.onImport(paths)
	}
}

func (w *Watcher) addWatchRecursive(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("Walk error for %s: %v", p, err)
			return nil
		}
		if d.IsDir() {
			if err := w.watcher.Add(p); err != nil {
				log.Printf("Failed to watch %s: %v", p, err)
			}
		}
		return nil
	})
}
