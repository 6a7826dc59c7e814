// Package ports defines the core interfaces for the application.
package ports

// Editor is the text-editor collaborator a completion request is made for.
// Positions are byte offsets into the buffer; lines are 0-based.
//
//go:generate mockgen -source=editor.go -destination=mocks/mock_editor.go -package=mocks
type Editor interface {
	// FileName returns the full path of the file open in the editor.
	FileName() string

	// TextRange returns the buffer content between the start and end offsets.
	TextRange(start, end int) string

	// CurrentPosition returns the cursor's byte offset in the buffer.
	CurrentPosition() int

	// CurrentLine returns the 0-based line the cursor is on.
	CurrentLine() int

	// PositionFromLine returns the byte offset of the start of a 0-based line.
	PositionFromLine(line int) int

	// ProjectName returns the name of the project the file belongs to.
	ProjectName() string
}
