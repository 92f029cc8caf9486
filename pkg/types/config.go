// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractorConfig holds settings for a chapter extraction run.
// The config file may set only the input path.
type ExtractorConfig struct {
	// InputPath is the markdown document to scan
	// (e.g. "public/decks/aws-cloud-practicioner/book-data.md").
	InputPath string `json:"input_path" yaml:"input_path" mapstructure:"input_path"`
}
