package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clank/internal/core/domain"
)

// content has three lines so cursor math is easy to follow:
//
//	offset 0:  "int x = 1;\n"   (line 1, 10 chars + newline)
//	offset 11: "int y = 2;\n"   (line 2)
//	offset 22: "int z"          (line 3, no trailing newline)
const content = "int x = 1;\nint y = 2;\nint z"

func writeSource(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpen(t *testing.T) {
	path := writeSource(t)

	e, err := Open(path, "app", 2, 5)
	require.NoError(t, err)

	assert.Equal(t, path, e.FileName())
	assert.Equal(t, "app", e.ProjectName())
	assert.Equal(t, 15, e.CurrentPosition())
	assert.Equal(t, 1, e.CurrentLine())
	assert.Equal(t, 11, e.PositionFromLine(1))
}

func TestOpen_ColumnClampsToLineEnd(t *testing.T) {
	path := writeSource(t)

	e, err := Open(path, "app", 1, 99)
	require.NoError(t, err)

	// The cursor stops before the newline, not past it.
	assert.Equal(t, 10, e.CurrentPosition())
	assert.Equal(t, 0, e.CurrentLine())
}

func TestOpen_LastLineWithoutNewline(t *testing.T) {
	path := writeSource(t)

	e, err := Open(path, "app", 3, 6)
	require.NoError(t, err)

	assert.Equal(t, len(content), e.CurrentPosition())
	assert.Equal(t, 2, e.CurrentLine())
}

func TestOpen_InvalidLocation(t *testing.T) {
	path := writeSource(t)

	tests := []struct {
		name   string
		line   int
		column int
	}{
		{"zero line", 0, 1},
		{"zero column", 1, 0},
		{"line past end of file", 9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(path, "app", tt.line, tt.column)
			assert.ErrorIs(t, err, domain.ErrInvalidLocation)
		})
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "gone.cpp"), "app", 1, 1)
	assert.Error(t, err)
}

func TestTextRange(t *testing.T) {
	path := writeSource(t)
	e, err := Open(path, "app", 1, 1)
	require.NoError(t, err)

	assert.Equal(t, "int x", e.TextRange(0, 5))
	assert.Equal(t, content, e.TextRange(-3, len(content)+10))
	assert.Equal(t, "", e.TextRange(5, 5))
	assert.Equal(t, "", e.TextRange(9, 2))
}

func TestPositionFromLine_Bounds(t *testing.T) {
	path := writeSource(t)
	e, err := Open(path, "app", 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, e.PositionFromLine(-1))
	assert.Equal(t, len(content), e.PositionFromLine(42))
}
