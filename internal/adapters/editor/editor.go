// Package editor provides a file-backed editor for one-shot completions.
package editor

import (
	"os"
	"strconv"

	"go.trai.ch/clank/internal/core/domain"
	"go.trai.ch/clank/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Editor = (*FileEditor)(nil)

// FileEditor presents a file on disk as an editor buffer with a fixed cursor.
// The cursor is placed from a 1-based line and column at construction time.
type FileEditor struct {
	path       string
	project    string
	buffer     string
	cursor     int
	lineStarts []int
}

// Open reads path into a buffer and places the cursor at the 1-based
// line and column. A column past the end of the line clamps to the line end.
func Open(path, project string, line, column int) (*FileEditor, error) {
	if line < 1 || column < 1 {
		return nil, zerr.With(zerr.With(domain.ErrInvalidLocation, "line", strconv.Itoa(line)), "column", strconv.Itoa(column))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidLocation.Error()), "file", path)
	}

	e := &FileEditor{
		path:       path,
		project:    project,
		buffer:     string(data),
		lineStarts: lineStarts(string(data)),
	}
	if line > len(e.lineStarts) {
		return nil, zerr.With(zerr.With(domain.ErrInvalidLocation, "file", path), "line", strconv.Itoa(line))
	}

	start := e.lineStarts[line-1]
	end := e.lineEnd(line - 1)
	e.cursor = start + column - 1
	if e.cursor > end {
		e.cursor = end
	}
	return e, nil
}

// FileName returns the path of the backing file.
func (e *FileEditor) FileName() string { return e.path }

// ProjectName returns the project the file was opened under.
func (e *FileEditor) ProjectName() string { return e.project }

// CurrentPosition returns the cursor's byte offset.
func (e *FileEditor) CurrentPosition() int { return e.cursor }

// CurrentLine returns the 0-based line the cursor is on.
func (e *FileEditor) CurrentLine() int {
	line := 0
	for line+1 < len(e.lineStarts) && e.lineStarts[line+1] <= e.cursor {
		line++
	}
	return line
}

// PositionFromLine returns the byte offset of the start of a 0-based line.
func (e *FileEditor) PositionFromLine(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(e.lineStarts) {
		return len(e.buffer)
	}
	return e.lineStarts[line]
}

// TextRange returns the buffer content between start and end, clamped to
// the buffer bounds.
func (e *FileEditor) TextRange(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(e.buffer) {
		end = len(e.buffer)
	}
	if start >= end {
		return ""
	}
	return e.buffer[start:end]
}

// lineStarts returns the byte offset of every line start, including an
// entry for line zero.
func lineStarts(buffer string) []int {
	starts := []int{0}
	for i := 0; i < len(buffer); i++ {
		if buffer[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineEnd returns the byte offset just past the last character of the
// 0-based line, excluding its newline.
func (e *FileEditor) lineEnd(line int) int {
	if line+1 < len(e.lineStarts) {
		return e.lineStarts[line+1] - 1
	}
	return len(e.buffer)
}
