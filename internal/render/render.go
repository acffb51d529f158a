// Package render serializes a generated ignore document to gitignore text.
package render

import (
	"fmt"
	"strings"

	"github.com/phobologic/tasteignore/internal/model"
)

// Header opens every generated file: a warning, then the rules that ignore
// everything except the ignore file itself.
const Header = `# This file is generated by tasteignore. Do not edit it by hand:
# rerun tasteignore to update the list of tracked user files.
*
!.gitignore
`

// Footer closes every generated file.
const Footer = "\n#EOF\n"

// Encode converts a Document into gitignore text. Blocks appear in document
// order, each introduced by a comment naming its function.
func Encode(doc *model.Document) string {
	var b strings.Builder
	b.WriteString(Header)
	for i := range doc.Functions {
		writeBlock(&b, &doc.Functions[i])
	}
	b.WriteString(Footer)
	return b.String()
}

func writeBlock(b *strings.Builder, fb *model.FunctionBlock) {
	fmt.Fprintf(b, "\n# %s\n", fb.Name)
	for _, line := range fb.Directives {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
