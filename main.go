// tasteignore generates the .gitignore of a TASTE project work directory so
// that only the user-written files of the given functions are tracked.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/phobologic/tasteignore/internal/check"
	"github.com/phobologic/tasteignore/internal/discover"
	"github.com/phobologic/tasteignore/internal/ignoreset"
	"github.com/phobologic/tasteignore/internal/lang"
	"github.com/phobologic/tasteignore/internal/model"
	"github.com/phobologic/tasteignore/internal/render"
)

const outputName = ".gitignore"

// ErrOutputExists is returned when the ignore file exists and overwriting was
// not requested.
var ErrOutputExists = errors.New("output file already exists")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n", err)
		fmt.Fprint(os.Stderr, usage())
		os.Exit(1)
	}
}

// options is the configuration of one run. It is built once by parseArgs and
// not modified afterwards.
type options struct {
	root      string
	force     bool
	debug     bool
	functions []string
}

func usage() string {
	tags := make([]string, 0, len(lang.Languages))
	for _, t := range lang.Tags() {
		tags = append(tags, string(t))
	}
	return `Usage: tasteignore [-h] [-dbg] [-f] [-r ROOT] [function...]

Write ROOT/work/.gitignore so that git tracks only the user-written files of
the named TASTE functions. Everything else in the work directory, including
all generated code, is ignored.

Flags:
  -h        show this help and exit
  -dbg      print diagnostics to standard output
  -f        overwrite an existing .gitignore
  -r ROOT   root directory of the TASTE project (default: current directory)

Recognized implementation directories: ` + strings.Join(tags, ", ") + "\n"
}

func parseArgs(args []string) (options, error) {
	flags := flag.NewFlagSet("tasteignore", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	var opts options
	flags.BoolVar(&opts.debug, "dbg", false, "print diagnostics")
	flags.BoolVar(&opts.force, "f", false, "overwrite an existing .gitignore")
	flags.StringVar(&opts.root, "r", "", "root directory of the TASTE project")

	if err := flags.Parse(reorderArgs(args)); err != nil {
		return options{}, err
	}
	opts.functions = flags.Args()

	if opts.root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return options{}, fmt.Errorf("resolving working directory: %w", err)
		}
		opts.root = wd
	}
	root, err := filepath.Abs(opts.root)
	if err != nil {
		return options{}, fmt.Errorf("resolving root: %w", err)
	}
	opts.root = root
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		_, _ = fmt.Fprint(stdout, usage())
		return nil
	}
	if err != nil {
		return err
	}

	logger := newLogger(stdout, opts.debug)
	logger.Debug("options", "root", opts.root, "force", opts.force, "functions", opts.functions)

	workDir := filepath.Join(opts.root, "work")
	info, err := os.Stat(workDir)
	if err != nil {
		return fmt.Errorf("work directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", workDir)
	}
	fsys := osfs.New(workDir)

	// Refuse early so an existing file is reported before any scanning.
	if !opts.force {
		if _, err := fsys.Lstat(outputName); err == nil {
			return fmt.Errorf("%w: %s (use -f to overwrite)", ErrOutputExists, filepath.Join(workDir, outputName))
		}
	}

	doc, err := generate(fsys, opts.functions, logger)
	if err != nil {
		return err
	}

	content := render.Encode(doc)
	for _, p := range check.Hidden(content, doc.Files()) {
		logger.Warn("user file is still ignored by the generated rules", "path", p)
	}

	if err := writeOutput(fsys, outputName, content, opts.force); err != nil {
		return err
	}
	logger.Debug("wrote ignore file", "path", filepath.Join(workDir, outputName), "bytes", len(content))
	return nil
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "tasteignore",
		Level:  level,
	})
}

// generate builds the document for functions, in the order given. All
// functions share one ignore set so no directive is emitted twice.
func generate(fsys billy.Filesystem, functions []string, logger *log.Logger) (*model.Document, error) {
	set := ignoreset.New(fsys, logger)
	doc := &model.Document{}
	seen := make(map[string]struct{}, len(functions))

	for _, fn := range functions {
		name := discover.NormalizeFunction(fn)
		if name == "" || name == "." || name == ".." {
			return nil, fmt.Errorf("invalid function name %q", fn)
		}
		if _, dup := seen[name]; dup {
			logger.Debug("skipping repeated function", "function", name)
			continue
		}
		seen[name] = struct{}{}

		specs, err := discover.UserFiles(fsys, name, discover.Options{Logger: logger})
		if err != nil {
			return nil, err
		}

		block := model.FunctionBlock{Name: name}
		for _, spec := range specs {
			path, lines, err := set.Directives(spec)
			if err != nil {
				return nil, err
			}
			if path == "" {
				continue
			}
			block.Files = append(block.Files, path)
			block.Directives = append(block.Directives, lines...)
		}
		logger.Debug("function processed", "function", name, "specs", len(specs), "files", len(block.Files), "directives", len(block.Directives))
		doc.Functions = append(doc.Functions, block)
	}
	return doc, nil
}

// writeOutput writes content to name inside fsys. Without force the file must
// not exist yet, so a previous file is never truncated.
func writeOutput(fsys billy.Filesystem, name, content string, force bool) (err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	path := fsys.Join(fsys.Root(), name)

	f, err := fsys.OpenFile(name, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s (use -f to overwrite)", ErrOutputExists, path)
		}
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// flagsWithValue lists flags that take a value argument.
var flagsWithValue = map[string]bool{
	"-r": true, "--r": true,
}

// reorderArgs moves positional arguments after all flags so Go's flag package
// can parse them correctly (it stops at the first non-flag arg).
func reorderArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			flags = append(flags, args[i])
			if flagsWithValue[args[i]] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, args[i])
		}
	}
	return append(flags, positional...)
}
