// =============================================================================
// Escheatment Mailing Preparation - File Manager
// =============================================================================
//
// Shared file-handling utilities for the pipeline: output directory
// resolution and creation, output file naming with placeholder expansion,
// and archival of processed input files.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileManager handles directory and archival concerns for one run.
type FileManager struct {
	// OutputDir is where output artifacts are written.
	OutputDir string

	// ArchiveDir is where processed input files are moved.
	ArchiveDir string
}

// NewFileManager creates a file manager for the given directories.
func NewFileManager(outputDir, archiveDir string) *FileManager {
	return &FileManager{OutputDir: outputDir, ArchiveDir: archiveDir}
}

// EnsureOutputDir creates the output directory if it does not exist.
func (fm *FileManager) EnsureOutputDir() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// OutputPath resolves a file name inside the output directory.
func (fm *FileManager) OutputPath(name string) string {
	return filepath.Join(fm.OutputDir, name)
}

// ArchiveInputFile moves a processed input file into the archive directory.
// An existing archived file with the same name is made unique with a
// timestamp suffix rather than overwritten.
func (fm *FileManager) ArchiveInputFile(path string) (string, error) {
	if err := os.MkdirAll(fm.ArchiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory %s: %w", fm.ArchiveDir, err)
	}

	target := filepath.Join(fm.ArchiveDir, filepath.Base(path))
	if FileExists(target) {
		ext := filepath.Ext(target)
		stem := strings.TrimSuffix(filepath.Base(target), ext)
		target = filepath.Join(fm.ArchiveDir, fmt.Sprintf("%s_%s%s", stem, time.Now().Format("20060102_150405"), ext))
	}

	if err := os.Rename(path, target); err != nil {
		// Rename fails across filesystems; fall back to copy+remove.
		if err := copyFile(path, target); err != nil {
			return "", fmt.Errorf("failed to archive %s: %w", path, err)
		}
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("failed to remove archived input %s: %w", path, err)
		}
	}
	return target, nil
}

// GenerateOutputFileName expands the placeholders in a name format:
// {stem} (input file name without extension), {timestamp}
// (YYYYMMDD_HHMMSS) and {uuid}.
func GenerateOutputFileName(format, inputPath string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	name := strings.ReplaceAll(format, "{stem}", stem)
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	return name
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// copyFile copies src to dst, creating or truncating dst.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
