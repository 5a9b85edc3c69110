package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AliasFile is the root of a YAML alias-override file.
type AliasFile struct {
	// Aliases maps legacy extractor field names to canonical dot-paths.
	Aliases map[string]string `yaml:"aliases"`
}

// LoadAliases loads and parses a YAML alias-override file.
func LoadAliases(path string) (*AliasFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file %s: %w", path, err)
	}

	return ParseAliases(data)
}

// ParseAliases parses YAML data into an AliasFile.
func ParseAliases(data []byte) (*AliasFile, error) {
	var af AliasFile

	err := yaml.Unmarshal(data, &af)
	if err != nil {
		return nil, fmt.Errorf("failed to parse alias YAML: %w", err)
	}

	if af.Aliases == nil {
		af.Aliases = map[string]string{}
	}

	return &af, nil
}
