package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/PolarWolf314/caesar/internal/caesar"
	kerrors "github.com/PolarWolf314/caesar/internal/errors"
)

// Report summarizes one cipher run.
type Report struct {
	RunID     string    `toml:"run_id"`
	Timestamp time.Time `toml:"timestamp"`
	Version   string    `toml:"version"`

	Mode   string `toml:"mode"`
	Key    int    `toml:"key"`
	Input  string `toml:"input"`
	Output string `toml:"output"`

	Characters int `toml:"characters"`
	Letters    int `toml:"letters_rotated"`
}

// New returns a Report with a fresh run ID and the current UTC time.
func New() Report {
	return Report{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC().Truncate(time.Second),
	}
}

// Save writes r to filePath as TOML, creating parent directories and
// replacing any existing file.
func Save(filePath string, r Report) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrReportWrite, err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrReportWrite, err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(r); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrReportWrite, err)
	}
	return nil
}

// Load reads a report previously written by Save. Reports whose mode is not
// "encrypt" or "decrypt" are rejected.
func Load(filePath string) (Report, error) {
	var r Report
	if _, err := toml.DecodeFile(filePath, &r); err != nil {
		return Report{}, err
	}
	if _, err := caesar.ParseMode(r.Mode); err != nil {
		return Report{}, fmt.Errorf("invalid report %s: %w", filePath, err)
	}
	return r, nil
}
