// Package model defines core data structures for tasteignore.
package model

// FunctionBlock holds the directives generated for one TASTE function.
type FunctionBlock struct {
	Name string

	// Files lists the concrete user files and linked implementations the
	// block exposes, in emission order.
	Files []string

	// Directives are gitignore lines, without trailing newlines.
	Directives []string
}

// Document is the complete generated ignore file, ready for serialization.
type Document struct {
	Functions []FunctionBlock
}

// Files returns every exposed path of the document in order.
func (d *Document) Files() []string {
	var files []string
	for i := range d.Functions {
		files = append(files, d.Functions[i].Files...)
	}
	return files
}
