package themes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a single theme definition from disk. Both JSON and YAML
// files are accepted, keyed off the file extension.
func Load(path string) (*Definition, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("theme path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}

	def, err := parseDefinition(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	def.Source = path
	return def, nil
}

// LoadFromDir loads every theme definition in a directory. A missing
// directory yields an empty slice. Results are sorted by id.
func LoadFromDir(dir string) ([]*Definition, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Definition{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Definition{}, nil
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dir, err)
	}

	defs := make([]*Definition, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		def, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})

	return defs, nil
}

// LoadSet loads a directory plus the builtin themes into a Set.
// Directory definitions shadow builtins with the same id; two directory
// definitions with the same id are a DuplicateIDError.
func LoadSet(dir string) (Set, error) {
	defs, err := LoadFromDir(dir)
	if err != nil {
		return nil, err
	}

	set := make(Set, len(defs))
	for _, def := range defs {
		if prev, exists := set[def.ID]; exists {
			return nil, &DuplicateIDError{ID: def.ID, First: prev.Source, Second: def.Source}
		}
		set[def.ID] = def
	}

	builtins, err := LoadBuiltins()
	if err != nil {
		return nil, err
	}
	for _, def := range builtins {
		if _, exists := set[def.ID]; exists {
			continue
		}
		set[def.ID] = def
	}

	return set, nil
}

func parseDefinition(data []byte, ext string) (*Definition, error) {
	var def Definition

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, err
		}
	}

	def.ID = strings.TrimSpace(def.ID)
	def.Name = strings.TrimSpace(def.Name)
	if err := def.CheckShape(); err != nil {
		return nil, err
	}

	return &def, nil
}
