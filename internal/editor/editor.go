// Package editor composes event descriptions in the user's $EDITOR.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned for a blank editor command.
var ErrNoEditor = errors.New("empty editor command")

// ResolveEditor determines which editor to use based on config, env vars, and fallback.
func ResolveEditor(configEditor string) string {
	if configEditor != "" {
		return configEditor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// Command builds the editor invocation for path. Arguments in editorCmd are
// split on whitespace.
func Command(editorCmd, path string) (*exec.Cmd, error) {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return nil, ErrNoEditor
	}
	args := append(parts[1:], path)
	return exec.Command(parts[0], args...), nil
}

// TempFile writes content to a new markdown temp file and returns its path.
// The caller removes it.
func TempFile(content string) (string, error) {
	tmp, err := os.CreateTemp("", "termcal-*.md")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return tmp.Name(), nil
}

// ReadResult reads back an edited file. The result is trimmed and changed
// reports whether it differs from the trimmed original. An emptied file is a
// change when the original was not empty.
func ReadResult(path, original string) (content string, changed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("reading edited file: %w", err)
	}
	content = strings.TrimSpace(string(data))
	return content, content != strings.TrimSpace(original), nil
}

// Edit opens initial in the editor attached to the current terminal and
// returns the edited text.
func Edit(editorCmd string, initial string) (content string, changed bool, err error) {
	path, err := TempFile(initial)
	if err != nil {
		return "", false, err
	}
	defer os.Remove(path)

	cmd, err := Command(editorCmd, path)
	if err != nil {
		return "", false, err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("editor exited with error: %w", err)
	}
	return ReadResult(path, initial)
}
