package philosophy

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads and validates a philosophy from a YAML file.
func LoadFromFile(path string) (DraftPhilosophy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DraftPhilosophy{}, fmt.Errorf("failed to read philosophy file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML philosophy document. Unset tier
// thresholds and sleeper settings fall back to the stock defaults so a
// file only has to spell out the weight groups it cares about.
func Parse(data []byte) (DraftPhilosophy, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DraftPhilosophy{}, fmt.Errorf("failed to parse philosophy YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return DraftPhilosophy{}, err
	}
	return p, nil
}

// DefaultConfigPath is where the stock philosophy file ships.
func DefaultConfigPath() string {
	return filepath.Join("config", "philosophy.yaml")
}
