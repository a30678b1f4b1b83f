// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// SearchPath is a file system made of layers. Lookups try the most
// recently bound layer first and fall through to the older ones, so a
// shader directory given on the command line shadows the embedded
// defaults.
type SearchPath struct {
	mutex  sync.RWMutex
	layers []fs.FS
	names  []string
}

// New returns a search path with base as its only (and last) layer.
// base may be nil.
func New(base fs.FS) *SearchPath {
	sp := &SearchPath{}
	if base != nil {
		sp.Bind(base, "base")
	}
	return sp
}

// Bind puts fsys in front of all existing layers.
func (sp *SearchPath) Bind(fsys fs.FS, name string) {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()
	sp.layers = append([]fs.FS{fsys}, sp.layers...)
	sp.names = append([]string{name}, sp.names...)
}

// AddDir binds the directory dir in front of all existing layers.
func (sp *SearchPath) AddDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(err, "could not add search dir")
	}
	if !fi.IsDir() {
		return errors.Errorf("could not add search dir: %s is not a directory", dir)
	}
	sp.Bind(os.DirFS(dir), dir)
	return nil
}

// String lists the layers in lookup order.
func (sp *SearchPath) String() string {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()
	return strings.Join(sp.names, ":")
}

func (sp *SearchPath) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()
	var err error
	for _, l := range sp.layers {
		f, err1 := l.Open(name)
		if err1 == nil {
			return f, nil
		}
		// NotExist errors of a layer must not mask real errors of another.
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			err = err1
		}
	}
	if err == nil {
		err = &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return nil, err
}

// ReadFile reads the first file called name in the search path.
func (sp *SearchPath) ReadFile(name string) ([]byte, error) {
	f, err := sp.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// WithOS returns a file system for names given by the user. Names are
// operating system paths: a file that exists there is read from there,
// absolute and parent relative paths only from there. Other names fall
// through to the search path.
// Unlike a strict fs.FS it accepts names fs.ValidPath refuses.
func (sp *SearchPath) WithOS() fs.FS {
	return osFirst{sp}
}

type osFirst struct {
	sp *SearchPath
}

func (o osFirst) Open(name string) (fs.File, error) {
	f, err := os.Open(name)
	if err == nil {
		return f, nil
	}
	if filepath.IsAbs(name) || !fs.ValidPath(filepath.ToSlash(name)) || !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.sp.Open(filepath.ToSlash(name))
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}

// ShaderPair returns the vertex and fragment file names belonging to
// base. An extension on base is ignored.
func ShaderPair(base string) (string, string) {
	base = StripExt(base)
	return base + ".vert", base + ".frag"
}
