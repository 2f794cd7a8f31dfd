package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputDirFlags holds output directory flags. base prefixes the per-artifact
// directories; an explicit per-artifact flag wins over the prefix.
type outputDirFlags struct {
	base    string
	deckDir string
	texDir  string
	pdfDir  string
}

// engineFlags holds PDF compilation flags.
type engineFlags struct {
	binary    string
	noCompile bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common   commonFlags
	output   outputDirFlags
	engine   engineFlags
	formats  []string
	template string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addOutputDirFlags adds output directory flags to a FlagSet.
func addOutputDirFlags(fs *flag.FlagSet, f *outputDirFlags) {
	fs.StringVarP(&f.base, "output", "o", "", "base output directory")
	fs.StringVar(&f.deckDir, "deck-dir", "", "output directory for .pptx files")
	fs.StringVar(&f.texDir, "tex-dir", "", "output directory for .tex files")
	fs.StringVar(&f.pdfDir, "pdf-dir", "", "output directory for compiled PDFs")
}

// addEngineFlags adds compilation flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVar(&f.binary, "engine", "", "LaTeX engine binary (default pdflatex)")
	fs.BoolVar(&f.noCompile, "no-compile", false, "emit .tex source without compiling to PDF")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	fs.StringSliceVarP(&f.formats, "formats", "f", nil, "output formats: pptx, latex (default both)")
	fs.StringVarP(&f.template, "template", "t", "", "LaTeX template name or .tex.tmpl path")

	addCommonFlags(fs, &f.common)
	addOutputDirFlags(fs, &f.output)
	addEngineFlags(fs, &f.engine)

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
