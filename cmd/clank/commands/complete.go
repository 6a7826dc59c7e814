package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/clank/internal/adapters/detector"
	"go.trai.ch/clank/internal/app"
	"go.trai.ch/clank/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <file:line:column>",
		Short: "Request code-completion candidates at a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, line, column, err := parseLocation(args[0])
			if err != nil {
				return err
			}

			project, _ := cmd.Flags().GetString("project")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			watch, _ := cmd.Flags().GetBool("watch")
			outputMode, _ := cmd.Flags().GetString("output-mode")

			out, err := c.app.Complete(cmd.Context(), file, line, column, app.CompleteOptions{
				Project:  project,
				CacheDir: cacheDir,
				Watch:    watch,
			})
			if err != nil {
				return err
			}

			mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)
			return renderCandidates(cmd.OutOrStdout(), out, mode)
		},
	}

	cmd.Flags().StringP("project", "p", "", "Project name from clank.yaml (defaults to the sole configured project)")
	cmd.Flags().String("cache-dir", "", "Override the PCH cache directory")
	cmd.Flags().BoolP("watch", "w", false, "Abort the run when the file changes on disk")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, pretty, or plain")
	return cmd
}

// parseLocation splits a file:line:column token. The line and column are
// 1-based; the file part may itself contain colons.
func parseLocation(token string) (string, int, int, error) {
	colIdx := strings.LastIndexByte(token, ':')
	if colIdx <= 0 {
		return "", 0, 0, zerr.With(domain.ErrInvalidLocation, "token", token)
	}
	lineIdx := strings.LastIndexByte(token[:colIdx], ':')
	if lineIdx <= 0 {
		return "", 0, 0, zerr.With(domain.ErrInvalidLocation, "token", token)
	}

	line, err := strconv.Atoi(token[lineIdx+1 : colIdx])
	if err != nil {
		return "", 0, 0, zerr.With(domain.ErrInvalidLocation, "token", token)
	}
	column, err := strconv.Atoi(token[colIdx+1:])
	if err != nil {
		return "", 0, 0, zerr.With(domain.ErrInvalidLocation, "token", token)
	}

	return token[:lineIdx], line, column, nil
}
