package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveEditorConfig(t *testing.T) {
	if got := ResolveEditor("nano"); got != "nano" {
		t.Errorf("expected nano, got %q", got)
	}
}

func TestResolveEditorEnvEditor(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	t.Setenv("VISUAL", "code")
	if got := ResolveEditor(""); got != "vim" {
		t.Errorf("expected vim (from EDITOR), got %q", got)
	}
}

func TestResolveEditorEnvVisual(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "code")
	if got := ResolveEditor(""); got != "code" {
		t.Errorf("expected code (from VISUAL), got %q", got)
	}
}

func TestResolveEditorFallback(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
	if got := ResolveEditor(""); got != "vi" {
		t.Errorf("expected vi (fallback), got %q", got)
	}
}

func TestCommandSplitsArgs(t *testing.T) {
	cmd, err := Command("code --wait", "/tmp/x.md")
	if err != nil {
		t.Fatalf("Command: %v", err)
	}
	want := []string{"code", "--wait", "/tmp/x.md"}
	if len(cmd.Args) != len(want) {
		t.Fatalf("args = %v, want %v", cmd.Args, want)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, cmd.Args[i], want[i])
		}
	}

	if _, err := Command("   ", "/tmp/x.md"); !errors.Is(err, ErrNoEditor) {
		t.Errorf("expected ErrNoEditor, got %v", err)
	}
}

func TestEditUnchanged(t *testing.T) {
	// 'true' exits successfully without touching the file.
	content, changed, err := Edit("true", "Bring snacks\n")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if changed {
		t.Error("expected changed=false for unchanged content")
	}
	if content != "Bring snacks" {
		t.Errorf("content = %q", content)
	}
}

func TestReadResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desc.md")

	os.WriteFile(path, []byte("  new text \n"), 0644)
	content, changed, err := ReadResult(path, "old text")
	if err != nil {
		t.Fatalf("ReadResult: %v", err)
	}
	if content != "new text" || !changed {
		t.Errorf("got %q, %v", content, changed)
	}

	os.WriteFile(path, []byte("\n"), 0644)
	content, changed, _ = ReadResult(path, "old text")
	if content != "" || !changed {
		t.Errorf("emptied file: got %q, %v", content, changed)
	}

	if _, _, err := ReadResult(filepath.Join(t.TempDir(), "missing.md"), ""); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTempFile(t *testing.T) {
	path, err := TempFile("hello")
	if err != nil {
		t.Fatalf("TempFile: %v", err)
	}
	defer os.Remove(path)
	if filepath.Ext(path) != ".md" {
		t.Errorf("path = %q, want .md", path)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "hello" {
		t.Errorf("content = %q", data)
	}
}
