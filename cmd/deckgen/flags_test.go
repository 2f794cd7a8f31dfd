package main

import (
	"strings"
	"testing"
)

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseGenerateFlags([]string{
		"topics",
		"--formats", "pptx,latex",
		"--template", "beamer",
		"-o", "out",
		"--deck-dir", "out/decks",
		"--engine", "xelatex",
		"--no-compile",
		"-q",
	})
	if err != nil {
		t.Fatalf("parseGenerateFlags() error = %v", err)
	}

	if len(positional) != 1 || positional[0] != "topics" {
		t.Errorf("positional = %v", positional)
	}
	if len(flags.formats) != 2 {
		t.Errorf("formats = %v, want 2 entries", flags.formats)
	}
	if flags.template != "beamer" {
		t.Errorf("template = %q", flags.template)
	}
	if flags.output.base != "out" {
		t.Errorf("output base = %q", flags.output.base)
	}
	if flags.output.deckDir != "out/decks" {
		t.Errorf("deckDir = %q", flags.output.deckDir)
	}
	if flags.engine.binary != "xelatex" || !flags.engine.noCompile {
		t.Errorf("engine = %+v", flags.engine)
	}
	if !flags.common.quiet {
		t.Error("quiet shorthand not parsed")
	}
}

func TestParseGenerateFlags_Defaults(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseGenerateFlags([]string{"input.yml"})
	if err != nil {
		t.Fatal(err)
	}
	if len(positional) != 1 {
		t.Errorf("positional = %v", positional)
	}
	if len(flags.formats) != 0 || flags.template != "" || flags.engine.noCompile {
		t.Errorf("non-zero defaults: %+v", flags)
	}
}

func TestParseGenerateFlags_Unknown(t *testing.T) {
	t.Parallel()

	if _, _, err := parseGenerateFlags([]string{"--bogus"}); err == nil {
		t.Fatal("unknown flag should fail")
	}
}

func TestRunMain_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("no args", func(t *testing.T) {
		t.Parallel()
		env, _, stderr := testEnv()
		if got := runMain(nil, env); got != ExitUsage {
			t.Errorf("runMain() = %d, want %d", got, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "Usage:") {
			t.Error("usage not printed")
		}
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()
		if got := runMain([]string{"version"}, env); got != ExitSuccess {
			t.Errorf("runMain() = %d", got)
		}
		if !strings.Contains(stdout.String(), "deckgen") {
			t.Errorf("version output = %q", stdout.String())
		}
	})

	t.Run("help command", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()
		if got := runMain([]string{"help", "generate"}, env); got != ExitSuccess {
			t.Errorf("runMain() = %d", got)
		}
		if !strings.Contains(stdout.String(), "deckgen generate") {
			t.Errorf("help output = %q", stdout.String())
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()
		env, _, stderr := testEnv()
		if got := runMain([]string{"explode"}, env); got != ExitUsage {
			t.Errorf("runMain() = %d, want %d", got, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "explode") {
			t.Error("unknown command not named")
		}
	})
}
