package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2DOCX_CONFIG: config file path
	Title      string // MD2DOCX_TITLE: document title metadata
	Timeout    string // MD2DOCX_TIMEOUT: conversion timeout
	InputDir   string // MD2DOCX_INPUT_DIR: default input directory
	OutputDir  string // MD2DOCX_OUTPUT_DIR: default output directory
	Preview    bool   // MD2DOCX_PREVIEW: write HTML previews
	Workers    int    // MD2DOCX_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2DOCX_CONFIG":     true,
	"MD2DOCX_TITLE":      true,
	"MD2DOCX_TIMEOUT":    true,
	"MD2DOCX_INPUT_DIR":  true,
	"MD2DOCX_OUTPUT_DIR": true,
	"MD2DOCX_PREVIEW":    true,
	"MD2DOCX_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MD2DOCX_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2DOCX_CONFIG"),
		Title:      os.Getenv("MD2DOCX_TITLE"),
		InputDir:   os.Getenv("MD2DOCX_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2DOCX_OUTPUT_DIR"),
	}

	// Keep the timeout as a string; duration parsing and validation
	// happen once in buildConverter.
	if timeout := os.Getenv("MD2DOCX_TIMEOUT"); timeout != "" {
		if _, err := time.ParseDuration(timeout); err == nil {
			cfg.Timeout = timeout
		}
	}

	if preview := os.Getenv("MD2DOCX_PREVIEW"); preview != "" {
		if b, err := strconv.ParseBool(preview); err == nil {
			cfg.Preview = b
		}
	}

	if workers := os.Getenv("MD2DOCX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2DOCX_* variables.
// Helps catch typos like MD2DOCX_TITEL instead of MD2DOCX_TITLE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2DOCX_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Title != "" && cfg.Document.Title == "" {
		cfg.Document.Title = env.Title
	}
	if env.Timeout != "" && cfg.Timeout == "" {
		cfg.Timeout = env.Timeout
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Preview && !cfg.Preview.Enabled {
		cfg.Preview.Enabled = true
	}
}
