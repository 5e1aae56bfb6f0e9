// SPDX-License-Identifier: MIT

package graphfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Decode reads a graph file from r. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Encode writes f as YAML.
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}

// Load reads and decodes the graph file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read %s: %w", path, err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Loader holds the latest successfully decoded graph file and can watch it
// for changes.
type Loader struct {
	path string
	log  logrus.FieldLogger

	mu       sync.RWMutex
	current  *File
	onChange []func(*File)
}

// NewLoader creates a Loader and performs the initial load. A nil logger
// falls back to the logrus standard logger.
func NewLoader(path string, log logrus.FieldLogger) (*Loader, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	l := &Loader{path: path, log: log.WithField("file", path)}
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	l.current = f

	return l, nil
}

// File returns the latest decoded graph file.
func (l *Loader) File() *File {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked after every successful reload.
func (l *Loader) OnChange(fn func(*File)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the file immediately. On error the previous File is kept.
func (l *Loader) Reload() (*File, error) {
	f, err := Load(l.path)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = f
	callbacks := make([]func(*File), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()

	for _, fn := range callbacks {
		fn(f)
	}

	return f, nil
}

// Watch starts a goroutine that reloads the file on write or create events.
// The parent directory is watched so editors that replace the file are
// handled. Call the returned stop function to release the watcher.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("graphfile: watcher: %w", err)
	}
	dir := filepath.Dir(l.path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("graphfile: watch %s: %w", dir, err)
	}
	target := filepath.Clean(l.path)

	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := l.Reload(); err != nil {
						l.log.WithError(err).Warn("reload failed, keeping previous graph")
						continue
					}
					l.log.Debug("graph file reloaded")
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.log.WithError(err).Warn("watcher error")
			case <-done:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }, nil
}
