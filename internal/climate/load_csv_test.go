package climate

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDailyCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily.csv")
	content := "date,rainfall_mm,pet_mm\n2023-05-01,12.5,4.2\n2023-05-02,0,5.1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	history, err := LoadDailyCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 days, got %d", len(history))
	}

	first := history[time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)]
	if first.Rainfall != 12.5 || first.PET != 4.2 {
		t.Errorf("first day = %+v, want rainfall 12.5 pet 4.2", first)
	}
}

func TestLoadDailyCSVBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily.csv")
	content := "date,rainfall_mm,pet_mm\n05/01/2023,12.5,4.2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := LoadDailyCSV(path); err == nil {
		t.Error("expected error for a non-ISO date")
	}
}

func TestLoadDailyCSVMissingFile(t *testing.T) {
	if _, err := LoadDailyCSV(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("expected error for a missing file")
	}
}
