package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/printshop/printshop/internal/pricing"
)

// FileSource re-reads a catalog.yaml on every load.
type FileSource struct {
	path      string
	parser    *Parser
	validator *Validator
}

func NewFileSource(path string) (*FileSource, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	return &FileSource{
		path:      path,
		parser:    NewParser(),
		validator: NewValidator(),
	}, nil
}

func (s *FileSource) Load(ctx context.Context) (*pricing.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	catalog, err := s.parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", s.path, err)
	}

	if err := s.validator.Validate(catalog); err != nil {
		return nil, fmt.Errorf("catalog file %s failed validation: %w", s.path, err)
	}

	return catalog, nil
}
