// Package ignoreset builds the gitignore directives that re-include user files
// in a tree where everything else is ignored.
//
// Git does not look inside an ignored directory, so exposing a file means
// un-ignoring each of its ancestors in turn while re-ignoring their other
// contents:
//
//	!F1
//	F1/*
//	!F1/C
//	F1/C/*
//	!F1/C/src
//	F1/C/src/*
//	!F1/C/src/f1.c
//
// A Set remembers every path it has emitted directives for, so directories
// shared between files are only opened once per run.
package ignoreset

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Set is the accumulator of covered paths for one run. It is not safe for
// concurrent use.
type Set struct {
	fsys    billy.Filesystem
	logger  *log.Logger
	covered map[string]struct{}
}

// New returns an empty Set that expands path specs against fsys. Paths given
// to the Set are relative to the root of fsys.
func New(fsys billy.Filesystem, logger *log.Logger) *Set {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Set{
		fsys:    fsys,
		logger:  logger,
		covered: make(map[string]struct{}),
	}
}

// Directives expands spec against the filesystem and returns the first match
// not covered yet together with its directive lines. It returns an empty path
// and nil lines when nothing matches or every match is already covered.
func (s *Set) Directives(spec string) (string, []string, error) {
	matches, err := util.Glob(s.fsys, spec)
	if err != nil {
		return "", nil, fmt.Errorf("expanding %s: %w", spec, err)
	}
	if len(matches) == 0 {
		s.logger.Debug("no match", "spec", spec)
		return "", nil, nil
	}

	for i, m := range matches {
		if s.Contains(m) {
			continue
		}
		if rest := len(matches) - i - 1; rest > 0 {
			s.logger.Debug("ignoring further matches", "spec", spec, "used", m, "skipped", rest)
		}
		return canonical(m), s.Cover(m), nil
	}

	s.logger.Debug("already covered", "spec", spec)
	return "", nil, nil
}

// Cover marks path and its ancestors as covered and returns the directives
// for the ones that were not covered before, root first. Cover returns nil
// if path is already covered.
func (s *Set) Cover(path string) []string {
	path = canonical(path)
	if path == "" || s.Contains(path) {
		return nil
	}

	// Walk up until an ancestor is found that is already covered; everything
	// above it is covered too.
	var fresh []string
	for dir := parent(path); dir != ""; dir = parent(dir) {
		if _, ok := s.covered[dir]; ok {
			break
		}
		fresh = append(fresh, dir)
	}

	lines := make([]string, 0, 2*len(fresh)+1)
	for i := len(fresh) - 1; i >= 0; i-- {
		dir := fresh[i]
		s.covered[dir] = struct{}{}
		lines = append(lines, "!"+dir, dir+"/*")
	}
	s.covered[path] = struct{}{}
	lines = append(lines, "!"+path)
	return lines
}

// Contains reports whether path has been covered.
func (s *Set) Contains(path string) bool {
	_, ok := s.covered[canonical(path)]
	return ok
}

// Len returns the number of covered paths.
func (s *Set) Len() int {
	return len(s.covered)
}

// canonical converts path to the slash-separated, cleaned form used both as
// set key and in directives. It returns "" for the root itself.
func canonical(path string) string {
	p := filepath.ToSlash(filepath.Clean(path))
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimLeft(p, "/")
	if p == "." {
		return ""
	}
	return p
}

func parent(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	return path[:i]
}
