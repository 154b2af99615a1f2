package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/chris-regnier/termcal/internal/event"
	"github.com/chris-regnier/termcal/internal/storage"
	"github.com/chris-regnier/termcal/internal/ui"
)

func stubConfirm(t *testing.T, answer bool) *int {
	t.Helper()
	calls := 0
	orig := confirmDelete
	confirmDelete = func(event.Event) (bool, error) {
		calls++
		return answer, nil
	}
	t.Cleanup(func() { confirmDelete = orig })
	return &calls
}

func TestDeleteForce(t *testing.T) {
	setupTestEnv(t)
	calls := stubConfirm(t, false)
	e := addTestEvent(t, "Dentist", "2025-03-14", "", "")

	var buf bytes.Buffer
	if err := deleteRun(&buf, e.ID, true); err != nil {
		t.Fatalf("deleteRun: %v", err)
	}
	if *calls != 0 {
		t.Error("--force should not prompt")
	}
	if _, ok := store.Get(e.ID); ok {
		t.Error("event still stored")
	}
	if buf.String() != "Deleted: Dentist ("+e.ID+")\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDeleteConfirmed(t *testing.T) {
	setupTestEnv(t)
	calls := stubConfirm(t, true)
	e := addTestEvent(t, "Dentist", "2025-03-14", "09:30", "")

	var buf bytes.Buffer
	if err := deleteRun(&buf, e.ID, false); err != nil {
		t.Fatalf("deleteRun: %v", err)
	}
	if *calls != 1 {
		t.Errorf("confirm called %d times", *calls)
	}
	if !strings.Contains(buf.String(), "Event: Dentist (2025-03-14 09:30)") {
		t.Errorf("output = %q", buf.String())
	}
	if _, ok := store.Get(e.ID); ok {
		t.Error("event still stored")
	}
}

func TestDeleteCancelled(t *testing.T) {
	setupTestEnv(t)
	stubConfirm(t, false)
	e := addTestEvent(t, "Dentist", "2025-03-14", "", "")

	var buf bytes.Buffer
	if err := deleteRun(&buf, e.ID, false); err != nil {
		t.Fatalf("deleteRun: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "Cancelled.\n") {
		t.Errorf("output = %q", buf.String())
	}
	if _, ok := store.Get(e.ID); !ok {
		t.Error("event deleted despite cancel")
	}
}

func TestDeleteNotFound(t *testing.T) {
	setupTestEnv(t)
	var buf bytes.Buffer
	err := deleteRun(&buf, "nonexist", true)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteJSONOutput(t *testing.T) {
	setupTestEnv(t)
	jsonOutput = true
	e := addTestEvent(t, "Dentist", "2025-03-14", "", "")

	var buf bytes.Buffer
	if err := deleteRun(&buf, e.ID, true); err != nil {
		t.Fatalf("deleteRun: %v", err)
	}
	var got ui.DeleteResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("JSON unmarshal: %v", err)
	}
	if !got.Deleted || got.ID != e.ID {
		t.Errorf("result = %+v", got)
	}
}
