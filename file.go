package confindent

import (
	"fmt"
	"os"

	"github.com/gennyble/confindent/ast"
)

// Load reads and parses the file at path.
func Load(path string) (*ast.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("confindent: %w", err)
	}
	return Parse(data)
}

// Save serializes doc and writes it to the file at path, creating or
// truncating it.
func Save(doc *ast.Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("confindent: %w", err)
	}
	return nil
}
