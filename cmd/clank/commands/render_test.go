package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clank/internal/adapters/detector"
)

const rawCompletionOutput = `main.cpp:3:11: error: no member named 'vec'
COMPLETION: push_back : [#void#]push_back(<#const T &value#>)
COMPLETION: size : [#size_t#]size()
COMPLETION: vector
`

func TestRenderCandidates_Plain(t *testing.T) {
	var out strings.Builder
	require.NoError(t, renderCandidates(&out, rawCompletionOutput, detector.ModePlain))

	// Diagnostics included, untouched.
	assert.Equal(t, rawCompletionOutput, out.String())
}

func TestRenderCandidates_Pretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var out strings.Builder
	require.NoError(t, renderCandidates(&out, rawCompletionOutput, detector.ModePretty))

	got := out.String()

	// Only candidate lines survive, one bullet each.
	assert.NotContains(t, got, "error:")
	assert.Contains(t, got, "● push_back  [#void#]push_back(<#const T &value#>)")
	assert.Contains(t, got, "● size  [#size_t#]size()")

	// A candidate without a signature renders the bare name.
	assert.Contains(t, got, "● vector\n")
	assert.Equal(t, 3, strings.Count(got, "●"))
}

func TestRenderCandidates_NoCandidates(t *testing.T) {
	var out strings.Builder
	require.NoError(t, renderCandidates(&out, "main.cpp:1:1: error: expected expression\n", detector.ModePretty))

	assert.Equal(t, "no completion candidates\n", out.String())
}
