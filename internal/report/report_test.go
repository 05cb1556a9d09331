package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	kerrors "github.com/PolarWolf314/caesar/internal/errors"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "run.toml")

	r := New()
	r.Version = "1.2.3"
	r.Mode = "decrypt"
	r.Key = 42
	r.Input = "in.txt"
	r.Output = "stdout"
	r.Characters = 15
	r.Letters = 14

	if err := Save(path, r); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !loaded.Timestamp.Equal(r.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", loaded.Timestamp, r.Timestamp)
	}
	loaded.Timestamp = r.Timestamp
	if loaded != r {
		t.Errorf("Load() = %+v, want %+v", loaded, r)
	}
}

func TestSaveWritesTOMLKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	r := New()
	r.Mode = "encrypt"
	r.Letters = 3

	if err := Save(path, r); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	for _, key := range []string{"run_id", "mode = \"encrypt\"", "letters_rotated = 3"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("report should contain %q, got:\n%s", key, data)
		}
	}
}

func TestNewGeneratesRunID(t *testing.T) {
	a, b := New(), New()
	if _, err := uuid.Parse(a.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", a.RunID, err)
	}
	if a.RunID == b.RunID {
		t.Error("each report should get its own run ID")
	}
}

func TestSaveFailsOnDirectory(t *testing.T) {
	dir := t.TempDir()

	err := Save(dir, New())
	if !errors.Is(err, kerrors.ErrReportWrite) {
		t.Errorf("expected ErrReportWrite, got: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	r := New()
	r.Mode = "rot13"
	if err := Save(path, r); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown mode") {
		t.Errorf("Load should reject an unknown mode, got: %v", err)
	}
}
