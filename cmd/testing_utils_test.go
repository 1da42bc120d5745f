package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"

	"github.com/PolarWolf314/mpw/internal/configs"
	logger "github.com/PolarWolf314/mpw/internal/logging"
)

// setupTestEnvironment points user settings at temp directories and returns the document path.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	originalSettings := configs.UserMpwSettings
	originalNoColor := color.NoColor
	configs.UserMpwSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempDir, "config"),
		UserDataPath:    filepath.Join(tempDir, "data"),
		Username:        "testuser",
	}
	color.NoColor = true
	t.Setenv("NO_COLOR", "1")

	ResetGlobalState()
	t.Cleanup(func() {
		configs.UserMpwSettings = originalSettings
		color.NoColor = originalNoColor
		ResetGlobalState()
		SetLogger(logger.Logger{})
	})

	return filepath.Join(tempDir, "sites.toml")
}

// withStdin replaces os.Stdin with a file holding content for the duration of the test.
func withStdin(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write stdin file: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open stdin file: %v", err)
	}

	original := os.Stdin
	os.Stdin = f
	t.Cleanup(func() {
		os.Stdin = original
		f.Close()
	})
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	reader, writer, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stdout = writer
	os.Stderr = writer

	outputChan := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, reader)
		outputChan <- buf.String()
	}()

	runErr := fn()

	writer.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-outputChan, runErr
}

// runCLI executes the root command with args and returns its combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	return captureOutput(func() error {
		root := GetRootCmd()
		root.SetArgs(args)
		return Execute()
	})
}
