package interview

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RulesConfig holds extra keywords per extraction category, loaded from a
// YAML file. Keywords extend the built-in table; they never replace it.
//
// Example:
//
//	keywords:
//	  push: ["useless", "waste of money"]
//	  diet_media: ["substack"]
type RulesConfig struct {
	Keywords map[string][]string `yaml:"keywords"`
}

// NewExtractorFromConfig builds an extractor with the default rule table
// extended by the keyword lists in the given YAML file
func NewExtractorFromConfig(path string) (*Extractor, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	var config RulesConfig
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	extractor := NewExtractor()
	for category, keywords := range config.Keywords {
		if err := extractor.AddKeywords(category, keywords); err != nil {
			return nil, fmt.Errorf("invalid rules file %s: %w", path, err)
		}
	}

	return extractor, nil
}
