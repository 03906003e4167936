// Package store provides functionality for storing and retrieving
// merchant alias mappings.
//
// Receipts print the merchant line inconsistently: the same store shows up
// as "K-market Töölöntori", "K-MARKET TOOLONTORI" or with leftover address
// fragments, depending on the OCR pass. An alias file maps raw extracted
// merchant strings to the canonical name used in exports.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"jlehtis/kuitti-csv/internal/logging"
)

// AliasStore loads and saves merchant alias mappings.
type AliasStore struct {
	AliasFile string
	logger    logging.Logger

	aliases map[string]string
}

// NewAliasStore creates a store backed by the given YAML file. An empty
// path defaults to "merchants.yaml" resolved from standard locations.
func NewAliasStore(aliasFile string, logger logging.Logger) *AliasStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &AliasStore{
		AliasFile: aliasFile,
		logger:    logger,
	}
}

// findConfigFile looks for the alias file in standard locations.
func (s *AliasStore) findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "kuitti-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// Load reads the alias mapping from disk. A missing file is not an error;
// it yields an empty mapping so extraction proceeds without aliases.
func (s *AliasStore) Load() error {
	filename := s.AliasFile
	if filename == "" {
		filename = "merchants.yaml"
	}

	filePath, err := s.findConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Merchant alias file not found, continuing without aliases",
				logging.Field{Key: logging.FieldFile, Value: filename})
			s.aliases = map[string]string{}
			return nil
		}
		return fmt.Errorf("error resolving alias file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading alias file: %w", err)
	}

	aliases := map[string]string{}
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return fmt.Errorf("error parsing alias file %s: %w", filePath, err)
	}

	s.aliases = aliases
	s.logger.Debug("Loaded merchant aliases",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(aliases)})
	return nil
}

// Save writes the alias mapping back to disk.
func (s *AliasStore) Save() error {
	filename := s.AliasFile
	if filename == "" {
		filename = "merchants.yaml"
	}

	data, err := yaml.Marshal(s.aliases)
	if err != nil {
		return fmt.Errorf("error serializing aliases: %w", err)
	}

	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating alias directory: %w", err)
		}
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("error writing alias file: %w", err)
	}
	return nil
}

// Resolve maps a raw merchant string to its canonical name. The second
// return value reports whether a mapping existed.
func (s *AliasStore) Resolve(raw string) (string, bool) {
	canonical, ok := s.aliases[raw]
	return canonical, ok
}

// Add records a new alias in memory; call Save to persist it.
func (s *AliasStore) Add(raw, canonical string) {
	if s.aliases == nil {
		s.aliases = map[string]string{}
	}
	s.aliases[raw] = canonical
}
