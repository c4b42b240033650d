package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// HighScoreFile is the default persistence path, relative to the working
// directory.
const HighScoreFile = "gridchase_highscore.json"

type highScoreRecord struct {
	Score int `json:"score"`
}

// LoadHighScore reads the saved best score. A missing file is zero, not an
// error.
func LoadHighScore(path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	var rec highScoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	return rec.Score, nil
}

// SaveHighScore writes the best score.
func SaveHighScore(path string, score int) error {
	data, err := json.Marshal(highScoreRecord{Score: score})
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}
