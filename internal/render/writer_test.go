package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated")

	files := []GeneratedFile{
		{Filename: "token.go", Content: []byte("package model\n")},
		{Filename: "account.go", Content: []byte("package model\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	for _, f := range files {
		content, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, content)
	}
}
