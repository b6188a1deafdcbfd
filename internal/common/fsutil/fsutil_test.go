package fsutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitExtensions(t *testing.T) {
	tests := []struct {
		path        string
		format      string
		compression string
	}{
		{"process.json", "json", ""},
		{"dir/Process.YAML", "yaml", ""},
		{"process.json.xz", "json", "xz"},
		{"process.plist.bz2", "plist", "bz2"},
		{"bundle.yml.gz", "yml", "gz"},
		{"noext", "", ""},
		{"archive.gz", "", "gz"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, compression := SplitExtensions(tt.path)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.compression, compression)
		})
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.json")

	require.NoError(t, WriteFile(path, []byte("{}"), 0644))
	assert.True(t, FileExists(path))
	assert.True(t, DirExists(filepath.Dir(path)))
	assert.False(t, FileExists(filepath.Dir(path)))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriteFileRejectsFileAsDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := WriteFile(filepath.Join(blocker, "out.json"), []byte("{}"), 0644)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestConcurrentWritesToSamePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "process.json")
	relative, err := filepath.Rel(".", path)
	if err != nil {
		relative = path
	}
	payloads := []string{`{"a":1}`, `{"b":22}`, `{"c":333}`}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := path
			if i%2 == 0 {
				target = relative
			}
			assert.NoError(t, WriteFile(target, []byte(payloads[i%len(payloads)]), 0644))
		}(i)
	}
	wg.Wait()

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, payloads, string(data))
}

func TestGetConfigDirDevelopment(t *testing.T) {
	t.Setenv("FORM_COMPOSER_ENV", "development")

	dir, err := GetConfigDir("go-form-composer")
	require.NoError(t, err)
	assert.Equal(t, "config", dir)
}
