package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles overwrites every generated file, creating parent directories as
// needed. Relative filenames are resolved against baseDir when it is set.
func WriteFiles(files []GeneratedFile, baseDir string) error {
	for _, file := range files {
		outputPath := file.Filename
		if baseDir != "" && !filepath.IsAbs(outputPath) {
			outputPath = filepath.Join(baseDir, outputPath)
		}

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
