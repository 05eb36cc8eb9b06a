package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-graveyard/internal/storage"
)

func TestPrintRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var empty bytes.Buffer
	if err := printRuns(&empty, store, "crypt", "The Crypt"); err != nil {
		t.Fatalf("printRuns() failed: %v", err)
	}
	if !strings.Contains(empty.String(), "No runs recorded yet.") {
		t.Errorf("empty output:\n%s", empty.String())
	}

	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for _, r := range []storage.Run{
		{LevelID: "crypt", Player: "ann", Outcome: storage.OutcomeWon, Score: 2000, Kills: 4, Ticks: 3600, CreatedAt: at},
		{LevelID: "crypt", Player: "bob", Outcome: storage.OutcomeLost, Score: 500, CreatedAt: at},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	var out bytes.Buffer
	if err := printRuns(&out, store, "crypt", "The Crypt"); err != nil {
		t.Fatalf("printRuns() failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Best Runs - The Crypt", "ann", "won", "1:00", "Best: 2000  Runs: 2  Escaped: 1  Average: 1250"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Index(text, "ann") > strings.Index(text, "bob") {
		t.Error("runs should be listed best first")
	}
}

func TestKeyHold(t *testing.T) {
	if _, err := keyHold("", -1); err == nil {
		t.Error("negative hold should fail")
	}
	if got, err := keyHold("", 9); err != nil || got != 9 {
		t.Errorf("keyHold(9) = %d, %v", got, err)
	}
	if got, err := keyHold(filepath.Join(t.TempDir(), "missing.yaml"), 0); err != nil || got < 1 {
		t.Errorf("keyHold(0) = %d, %v; want the settings value", got, err)
	}
}
