package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

const fileVersion = 1

// metadata is the first line of a saved journal
type metadata struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Version      int       `json:"version"`
	OutcomeCount int       `json:"outcome_count"`
	Capacity     int       `json:"capacity"`
}

// Path returns the file a journal with id is saved to in directory
func Path(directory, id string) string {
	return filepath.Join(directory, id+".journal.jsonl.zst")
}

// SaveToFile writes the retained outcomes to a zstd JSONL file in
// directory, metadata first
func (j *Journal) SaveToFile(directory string) error {
	outcomes := j.Outcomes()

	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	file, err := os.Create(Path(directory, j.id))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	enc, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	buf := bufio.NewWriter(enc)
	lines := json.NewEncoder(buf)

	meta := metadata{
		ID:           j.id,
		Timestamp:    time.Now(),
		Version:      fileVersion,
		OutcomeCount: len(outcomes),
		Capacity:     j.capacity,
	}
	if err := lines.Encode(&meta); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	for i := range outcomes {
		if err := lines.Encode(&outcomes[i]); err != nil {
			_ = enc.Close()
			return fmt.Errorf("failed to encode outcome %d: %w", i, err)
		}
	}
	if err := buf.Flush(); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finish zstd stream: %w", err)
	}

	j.logger.Info("saved journal to disk",
		zap.String("journal_id", j.id),
		zap.Int("outcome_count", len(outcomes)),
		zap.String("directory", directory))
	return nil
}

// LoadFromFile reads a journal saved by SaveToFile. Statistics are rebuilt
// from the saved outcomes only.
func LoadFromFile(logger *zap.Logger, directory, id string) (*Journal, error) {
	file, err := os.Open(Path(directory, id))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	dec, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer dec.Close()

	lines := json.NewDecoder(dec)

	var meta metadata
	if err := lines.Decode(&meta); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}
	if meta.Version != fileVersion {
		return nil, fmt.Errorf("unsupported journal version: %d", meta.Version)
	}

	j := New(logger, meta.Capacity, WithID(meta.ID))
	for i := 0; i < meta.OutcomeCount; i++ {
		var out dispatch.Outcome
		if err := lines.Decode(&out); err != nil {
			return nil, fmt.Errorf("failed to decode outcome %d: %w", i, err)
		}
		j.Record(out)
	}
	return j, nil
}

// ReadLines decodes every outcome in a file produced by Writer
func ReadLines(path string) ([]dispatch.Outcome, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	dec, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer dec.Close()

	var outcomes []dispatch.Outcome
	lines := json.NewDecoder(dec)
	for {
		var out dispatch.Outcome
		err := lines.Decode(&out)
		if err == io.EOF {
			return outcomes, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode outcome %d: %w", len(outcomes), err)
		}
		outcomes = append(outcomes, out)
	}
}
