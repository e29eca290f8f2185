package yamjson

import (
	"fmt"
	"os"
)

// Load reads a YAML file into a Document whose path is set for Save and Reload.
func Load(path string, opts ...Option) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("yamjson: cannot read %q: %w", path, err)
	}
	return New(string(b), append(opts, WithPath(path))...), nil
}

// Save writes the rendered document to its path.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	return d.SaveTo(d.path)
}

// SaveTo writes the rendered document to path, keeping the mode of an existing file.
func (d *Document) SaveTo(path string) error {
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(d.Render()), mode); err != nil {
		return fmt.Errorf("yamjson: cannot write %q: %w", path, err)
	}
	return nil
}

// Reload discards the current value and re-reads the document from its path. On error the
// document is left unchanged.
func (d *Document) Reload() error {
	if d.path == "" {
		return ErrNoPath
	}
	b, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("yamjson: cannot read %q: %w", d.path, err)
	}
	d.load(string(b))
	return nil
}
