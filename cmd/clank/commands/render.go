package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/clank/internal/adapters/detector"
	"go.trai.ch/clank/internal/ui/style"
)

// completionMarker prefixes candidate lines in clang's completion output.
const completionMarker = "COMPLETION: "

var (
	nameStyle      = lipgloss.NewStyle().Foreground(style.Iris).Bold(true)
	signatureStyle = lipgloss.NewStyle().Foreground(style.Slate)
)

// renderCandidates writes the completion output to w. Plain mode passes the
// compiler output through untouched; pretty mode extracts candidate lines
// and styles them.
func renderCandidates(w io.Writer, raw string, mode detector.OutputMode) error {
	if mode != detector.ModePretty {
		_, err := io.WriteString(w, raw)
		return err
	}

	count := 0
	for _, line := range strings.Split(raw, "\n") {
		if !strings.HasPrefix(line, completionMarker) {
			continue
		}
		count++

		name, signature, _ := strings.Cut(strings.TrimPrefix(line, completionMarker), " : ")
		if signature == "" {
			fmt.Fprintf(w, "  %s %s\n", style.Dot, nameStyle.Render(name))
			continue
		}
		fmt.Fprintf(w, "  %s %s  %s\n", style.Dot, nameStyle.Render(name), signatureStyle.Render(signature))
	}

	if count == 0 {
		fmt.Fprintln(w, "no completion candidates")
	}
	return nil
}
