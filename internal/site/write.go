package site

import (
	"fmt"
	"os"
)

// DefaultOutputPath is where the rendered page lands unless overridden
const DefaultOutputPath = "roster.html"

// WriteFile persists the rendered page, replacing any previous copy.
// The tool is idempotent, so a plain overwrite is enough; re-running
// repairs a bad write.
func WriteFile(path, html string) error {
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
