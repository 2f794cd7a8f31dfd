package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate slide decks from topic files")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'deckgen help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen generate <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate .pptx decks and LaTeX Beamer sources from YAML topic files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Topic file, directory, or glob pattern")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -f, --formats <list>      Output formats: pptx, latex (default both)")
	fmt.Fprintln(w, "  -o, --output <path>       Base output directory")
	fmt.Fprintln(w, "      --deck-dir <path>     Directory for .pptx files (default decks)")
	fmt.Fprintln(w, "      --tex-dir <path>      Directory for .tex files (default slides)")
	fmt.Fprintln(w, "      --pdf-dir <path>      Directory for compiled PDFs (default pdfs)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "LaTeX:")
	fmt.Fprintln(w, "  -t, --template <s>        Template name or .tex.tmpl path")
	fmt.Fprintln(w, "      --engine <s>          Engine binary (default pdflatex)")
	fmt.Fprintln(w, "      --no-compile          Emit .tex source without compiling to PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: deckgen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: deckgen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
