package check

import (
	"reflect"
	"testing"
)

const base = "*\n!.gitignore\n"

func TestHiddenNone(t *testing.T) {
	t.Parallel()

	content := base + "!F1\nF1/*\n!F1/C\nF1/C/*\n!F1/C/src\nF1/C/src/*\n!F1/C/src/f1.c\n"
	if got := Hidden(content, []string{"F1/C/src/f1.c", ".gitignore"}); len(got) != 0 {
		t.Errorf("expected all visible, hidden = %v", got)
	}
}

func TestHiddenSiblingsStayIgnored(t *testing.T) {
	t.Parallel()

	content := base + "!F1\nF1/*\n!F1/C\nF1/C/*\n!F1/C/src\nF1/C/src/*\n!F1/C/src/f1.c\n"
	paths := []string{"F1/C/src/f1.c", "F1/C/src/f1.h", "F1/C/build/f1.o", "F2/x.c"}
	want := []string{"F1/C/src/f1.h", "F1/C/build/f1.o", "F2/x.c"}
	if got := Hidden(content, paths); !reflect.DeepEqual(got, want) {
		t.Errorf("Hidden = %v, want %v", got, want)
	}
}

func TestHiddenMissingAncestor(t *testing.T) {
	t.Parallel()

	// The file is re-included but its parent stays ignored.
	content := base + "!F1\nF1/*\n!F1/C/src/f1.c\n"
	paths := []string{"F1/C/src/f1.c"}
	if got := Hidden(content, paths); !reflect.DeepEqual(got, paths) {
		t.Errorf("Hidden = %v, want %v", got, paths)
	}
}

func TestHiddenEverythingIgnored(t *testing.T) {
	t.Parallel()

	paths := []string{"F1", "F1/C/src/f1.c"}
	if got := Hidden(base, paths); !reflect.DeepEqual(got, paths) {
		t.Errorf("Hidden = %v, want %v", got, paths)
	}
}
