// Package lang provides the registry of TASTE implementation languages and
// the naming conventions for the files a user edits in each of them.
package lang

import (
	"sort"
	"strings"
)

// Tag names an implementation language. A directory whose base name equals a
// Tag holds an implementation of its function in that language.
type Tag string

const (
	C              Tag = "C"
	CPP            Tag = "CPP"
	Ada            Tag = "Ada"
	SDL            Tag = "SDL"
	Simulink       Tag = "Simulink"
	QGenC          Tag = "QGenC"
	QGenAda        Tag = "QGenAda"
	GUI            Tag = "GUI"
	BlackboxC      Tag = "Blackbox_C"
	BlackboxDevice Tag = "Blackbox_Device"
	SimulinkLegacy Tag = "SIMULINK"
)

// Language holds the naming convention of a supported language.
type Language struct {
	Tag Tag

	// UserFiles returns the names, relative to the src directory of an
	// implementation, of the files a user edits. fn is the lower-cased
	// function name. Names may contain glob wildcards. A nil UserFiles means
	// no convention is known for the language.
	UserFiles func(fn string) []string
}

func single(ext string) func(string) []string {
	return func(fn string) []string { return []string{fn + ext} }
}

func fixed(names ...string) func(string) []string {
	return func(string) []string { return names }
}

// Languages maps directory names to their language configuration.
var Languages = map[Tag]*Language{
	C:              {Tag: C, UserFiles: single(".c")},
	BlackboxC:      {Tag: BlackboxC, UserFiles: single(".c")},
	Ada:            {Tag: Ada, UserFiles: single(".adb")},
	CPP:            {Tag: CPP, UserFiles: func(fn string) []string { return []string{fn + ".cc", fn + "_state.h"} }},
	SDL:            {Tag: SDL, UserFiles: single(".pr")},
	GUI:            {Tag: GUI, UserFiles: fixed("UserWidgets.py")},
	QGenC:          {Tag: QGenC, UserFiles: fixed("*.slx")},
	QGenAda:        {Tag: QGenAda, UserFiles: fixed("*.slx")},
	Simulink:       {Tag: Simulink, UserFiles: fixed("*.slx")},
	BlackboxDevice: {Tag: BlackboxDevice},
	SimulinkLegacy: {Tag: SimulinkLegacy},
}

// Parse returns the tag named by a directory base name. Matching is exact and
// case-sensitive.
func Parse(name string) (Tag, bool) {
	_, ok := Languages[Tag(name)]
	return Tag(name), ok
}

// UserFiles returns the user-file names under src for an implementation of
// function in the given language, or nil if the language has no convention.
func UserFiles(tag Tag, function string) []string {
	l, ok := Languages[tag]
	if !ok || l.UserFiles == nil {
		return nil
	}
	return l.UserFiles(strings.ToLower(function))
}

// Tags returns all supported tags in lexical order.
func Tags() []Tag {
	tags := make([]Tag, 0, len(Languages))
	for t := range Languages {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
