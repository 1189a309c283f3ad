package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRootCommandRegistersServeAndEnvFlag(t *testing.T) {
	root := newRootCmd()

	if root.Use != appName {
		t.Fatalf("expected root use %q, got %q", appName, root.Use)
	}
	if cmd, _, err := root.Find([]string{"serve"}); err != nil || cmd.Use != "serve" {
		t.Fatalf("expected serve subcommand, got %v (%v)", cmd, err)
	}
	flag := root.PersistentFlags().Lookup("envfile")
	if flag == nil || flag.Shorthand != "e" {
		t.Fatalf("expected --envfile/-e persistent flag")
	}
}

func TestPreRunLoadsEnvFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("DATA_DIR=/from/envfile\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("DATA_DIR", "")

	orig := envFiles
	defer func() { envFiles = orig }()
	envFiles = []string{path}

	if err := preRun(newRootCmd(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("DATA_DIR"); got != "/from/envfile" {
		t.Fatalf("expected env file applied, got %q", got)
	}
}

func TestPreRunReportsMissingEnvFile(t *testing.T) {
	orig := envFiles
	defer func() { envFiles = orig }()
	envFiles = []string{filepath.Join(t.TempDir(), "missing.env")}

	if err := preRun(newRootCmd(), nil); err == nil {
		t.Fatalf("expected error for missing env file")
	}
}
