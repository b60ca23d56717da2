// Package export persists tool results to disk so the search command can
// work over the last listing. Files are plain JSON or YAML picked by
// extension; nothing here is consulted by the tools themselves.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultFile = "resources.json"

// Record is the flattened form a tool result is saved in.
type Record struct {
	Kind       string            `json:"kind" yaml:"kind"`
	Project    string            `json:"project" yaml:"project"`
	Name       string            `json:"name" yaml:"name"`
	Region     string            `json:"region,omitempty" yaml:"region,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// DefaultPath returns ~/.gcpkit/resources.json, creating the directory when
// needed.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".gcpkit")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultFile), nil
}

// Save writes records to path, as YAML for .yaml/.yml files and pretty JSON
// otherwise.
func Save(path string, records []Record) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(records)
	} else {
		data, err = json.MarshalIndent(records, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// Load reads records back from path.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("export file not found at %s; run a list command with --save first", path)
		}
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}
	var records []Record
	if isYAML(path) {
		err = yaml.Unmarshal(data, &records)
	} else {
		err = json.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse export file: %w", err)
	}
	return records, nil
}

// MergeForProject replaces the stored records of one project while keeping
// everything else in the file.
func MergeForProject(path string, records []Record, projectID string) error {
	existing, err := Load(path)
	if err != nil {
		// First save for this path.
		return Save(path, records)
	}
	var kept []Record
	for _, r := range existing {
		if r.Project != projectID {
			kept = append(kept, r)
		}
	}
	return Save(path, append(kept, records...))
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
