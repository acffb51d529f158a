// Package discover finds the user-written files of a TASTE function.
package discover

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"

	"github.com/phobologic/tasteignore/internal/lang"
)

// ErrFunctionNotFound is returned when the directory of a requested function
// does not exist.
var ErrFunctionNotFound = errors.New("function directory not found")

// Options controls discovery.
type Options struct {
	// Logger receives diagnostics. A nil Logger discards them.
	Logger *log.Logger
}

// NormalizeFunction strips trailing path separators and any leading directory
// from a function name as typed by the user.
func NormalizeFunction(name string) string {
	name = strings.TrimRight(name, "/"+string(filepath.Separator))
	if name == "" {
		return ""
	}
	return filepath.Base(name)
}

// UserFiles walks the directory of function inside fsys and returns the path
// specs of the files a user edits, relative to the root of fsys. Specs may
// contain glob wildcards. Directories are visited in lexical order.
//
// A language directory that is a symbolic link is returned as-is and not
// descended into, since it points at an implementation that is processed on
// its own.
func UserFiles(fsys billy.Filesystem, function string, opts Options) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	name := NormalizeFunction(function)
	info, err := fsys.Stat(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, fsys.Join(fsys.Root(), name))
		}
		return nil, fmt.Errorf("reading function directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFunctionNotFound, fsys.Join(fsys.Root(), name))
	}

	w := &walker{fsys: fsys, function: name, logger: logger}
	if err := w.visit(name, info); err != nil {
		return nil, err
	}
	return w.results, nil
}

type walker struct {
	fsys     billy.Filesystem
	function string
	logger   *log.Logger
	results  []string
}

func (w *walker) visit(dir string, info os.FileInfo) error {
	if tag, ok := lang.Parse(filepath.Base(dir)); ok {
		if info.Mode()&os.ModeSymlink != 0 {
			w.logger.Debug("recording linked implementation", "dir", dir)
			w.results = append(w.results, dir)
			return nil
		}
		w.addImplementation(tag, dir)
	}

	entries, err := w.fsys.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, e := range entries {
		child := w.fsys.Join(dir, e.Name())
		fi, err := w.fsys.Lstat(child)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", child, err)
		}

		if fi.Mode()&os.ModeSymlink != 0 {
			if !w.isLinkedImplementation(child, e.Name()) {
				continue
			}
		} else if !fi.IsDir() {
			continue
		}

		if err := w.visit(child, fi); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) addImplementation(tag lang.Tag, dir string) {
	names := lang.UserFiles(tag, w.function)
	if len(names) == 0 {
		w.logger.Debug("no user file convention for language", "language", tag, "dir", dir)
		return
	}
	for _, n := range names {
		w.results = append(w.results, w.fsys.Join(dir, "src", n))
	}
}

// isLinkedImplementation reports whether the symlink at path is a language
// directory pointing at a directory. Other links are not followed.
func (w *walker) isLinkedImplementation(path, name string) bool {
	if _, ok := lang.Parse(name); !ok {
		w.logger.Debug("skipping symlink", "path", path)
		return false
	}
	target, err := w.fsys.Stat(path)
	if err != nil || !target.IsDir() {
		w.logger.Debug("skipping dangling language link", "path", path)
		return false
	}
	return true
}
