package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveResults writes the analysis as indented JSON to path.
func (a *Analysis) SaveResults(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write results %s: %w", path, err)
	}
	return nil
}
