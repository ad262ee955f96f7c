package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureOutputDirAndOutputPath(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "out", "nested")
	fm := NewFileManager(outputDir, "")

	require.NoError(t, fm.EnsureOutputDir())
	assert.DirExists(t, outputDir)
	assert.Equal(t, filepath.Join(outputDir, "StaticData.dat"), fm.OutputPath("StaticData.dat"))
}

func TestArchiveInputFile(t *testing.T) {
	archiveDir := filepath.Join(t.TempDir(), "archive")
	fm := NewFileManager("", archiveDir)

	input := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("data"), 0644))

	target, err := fm.ArchiveInputFile(input)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(archiveDir, "input.txt"), target)
	assert.FileExists(t, target)
	assert.NoFileExists(t, input)
}

func TestArchiveInputFileCollision(t *testing.T) {
	archiveDir := t.TempDir()
	fm := NewFileManager("", archiveDir)
	require.NoError(t, os.WriteFile(filepath.Join(archiveDir, "input.txt"), []byte("old"), 0644))

	input := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("new"), 0644))

	target, err := fm.ArchiveInputFile(input)
	require.NoError(t, err)

	// The earlier archive keeps its name; the new one gets a timestamp
	// suffix.
	assert.NotEqual(t, filepath.Join(archiveDir, "input.txt"), target)
	assert.True(t, strings.HasPrefix(filepath.Base(target), "input_"))
	assert.Equal(t, ".txt", filepath.Ext(target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestGenerateOutputFileName(t *testing.T) {
	name := GenerateOutputFileName("{stem}_rev.xlsx", "/data/in/ast_file.txt")
	assert.Equal(t, "ast_file_rev.xlsx", name)

	stamped := GenerateOutputFileName("{stem}_{timestamp}.xlsx", "/data/in/ast_file.txt")
	assert.True(t, strings.HasPrefix(stamped, "ast_file_"))
	assert.True(t, strings.HasSuffix(stamped, ".xlsx"))
	assert.Regexp(t, `ast_file_\d{8}_\d{6}\.xlsx`, stamped)

	unique := GenerateOutputFileName("{uuid}.dat", "whatever.txt")
	assert.Regexp(t, `^[0-9a-f-]{36}\.dat$`, unique)
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe")
	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, nil, 0644))
	assert.True(t, FileExists(path))
}
