package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// session is the on-disk shape of the pushed item list.
type session struct {
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
	Items     []string  `json:"items"`
}

func loadSession(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var s session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	return s.Items, nil
}

func saveSession(path string, items []string) error {
	s := session{
		Version:   "1.0",
		UpdatedAt: time.Now(),
		Items:     items,
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
