package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRun_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("no args prints usage and errors", func(t *testing.T) {
		t.Parallel()
		env, _, stderr := testEnv()
		err := run(context.Background(), nil, env)
		if !errors.Is(err, ErrNoCommand) {
			t.Errorf("error = %v, want ErrNoCommand", err)
		}
		if !strings.Contains(stderr.String(), "Usage: md2docx") {
			t.Errorf("stderr = %q, want usage text", stderr.String())
		}
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()
		env, _, _ := testEnv()
		err := run(context.Background(), []string{"frobnicate"}, env)
		if !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("error = %v, want ErrUnknownCommand", err)
		}
	})

	t.Run("version prints version", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()
		err := run(context.Background(), []string{"version"}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "md2docx") {
			t.Errorf("stdout = %q, want version line", stdout.String())
		}
	})

	t.Run("help prints usage", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()
		err := run(context.Background(), []string{"help"}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "Commands:") {
			t.Errorf("stdout = %q, want command list", stdout.String())
		}
	})

	t.Run("help convert prints convert usage", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()
		err := run(context.Background(), []string{"help", "convert"}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "md2docx convert") {
			t.Errorf("stdout = %q, want convert usage", stdout.String())
		}
	})

	t.Run("convert without input returns ErrNoInput", func(t *testing.T) {
		t.Parallel()
		env, _, _ := testEnv()
		err := run(context.Background(), []string{"convert"}, env)
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("error = %v, want ErrNoInput", err)
		}
	})

	t.Run("convert with bad flag returns ErrBadFlags", func(t *testing.T) {
		t.Parallel()
		env, _, _ := testEnv()
		err := run(context.Background(), []string{"convert", "--not-a-flag"}, env)
		if !errors.Is(err, ErrBadFlags) {
			t.Errorf("error = %v, want ErrBadFlags", err)
		}
	})
}

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	t.Run("parses all flags", func(t *testing.T) {
		t.Parallel()
		flags, positional, err := parseConvertFlags([]string{
			"notes.md",
			"-o", "/out",
			"-c", "myconfig",
			"-w", "4",
			"-t", "45s",
			"--title", "Release Notes",
			"--preview",
			"-q",
			"-v",
		})
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}
		if len(positional) != 1 || positional[0] != "notes.md" {
			t.Errorf("positional = %v, want [notes.md]", positional)
		}
		if flags.output != "/out" {
			t.Errorf("output = %q", flags.output)
		}
		if flags.common.config != "myconfig" {
			t.Errorf("config = %q", flags.common.config)
		}
		if flags.workers != 4 {
			t.Errorf("workers = %d", flags.workers)
		}
		if flags.timeout != "45s" {
			t.Errorf("timeout = %q", flags.timeout)
		}
		if flags.document.title != "Release Notes" {
			t.Errorf("title = %q", flags.document.title)
		}
		if !flags.outputMode.preview {
			t.Error("preview = false, want true")
		}
		if !flags.common.quiet || !flags.common.verbose {
			t.Error("quiet/verbose flags not parsed")
		}
	})

	t.Run("defaults when no flags", func(t *testing.T) {
		t.Parallel()
		flags, positional, err := parseConvertFlags([]string{"notes.md"})
		if err != nil {
			t.Fatalf("parseConvertFlags() error = %v", err)
		}
		if len(positional) != 1 {
			t.Errorf("positional = %v", positional)
		}
		if flags.workers != 0 {
			t.Errorf("workers = %d, want 0", flags.workers)
		}
		if flags.outputMode.preview {
			t.Error("preview = true, want false")
		}
	})

	t.Run("unknown flag returns error", func(t *testing.T) {
		t.Parallel()
		_, _, err := parseConvertFlags([]string{"--bogus"})
		if err == nil {
			t.Fatal("expected error for unknown flag")
		}
	})
}

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	printUsage(buf)
	for _, want := range []string{"convert", "version", "help"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
