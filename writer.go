package testgen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/testgenx/testgen/internal/oserr"
)

// OutputPath derives the path of the generated test document by
// inserting suffix before the source file's extension:
// OutputPath("src/math.ts", ".test") is "src/math.test.ts". A source
// path without an extension gets the suffix appended.
func OutputPath(sourcePath, suffix string) string {
	ext := filepath.Ext(sourcePath)
	return strings.TrimSuffix(sourcePath, ext) + suffix + ext
}

// WriteDocument writes a generated document to path. Failures are
// translated into descriptive errors per underlying OS error code.
func WriteDocument(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return oserr.Translate("write", path, err)
	}
	return nil
}
