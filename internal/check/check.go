// Package check verifies generated ignore text against the files it is meant
// to expose.
package check

import (
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Hidden returns the paths that git would still ignore under content. Git
// never looks inside an ignored directory, so a path is visible only when
// neither it nor any of its ancestors match.
func Hidden(content string, paths []string) []string {
	gi := ignore.CompileIgnoreLines(strings.Split(content, "\n")...)

	var hidden []string
	for _, p := range paths {
		if !visible(gi, filepath.ToSlash(p)) {
			hidden = append(hidden, p)
		}
	}
	return hidden
}

func visible(gi *ignore.GitIgnore, path string) bool {
	for i := 0; i < len(path); i++ {
		if path[i] == '/' && gi.MatchesPath(path[:i]) {
			return false
		}
	}
	return !gi.MatchesPath(path)
}
