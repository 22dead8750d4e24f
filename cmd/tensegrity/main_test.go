package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibbyd/tensegrity/internal/session"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestScoreCommandJSON(t *testing.T) {
	out := runCommand(t, "score", "--value", "40")

	var frame session.Frame
	require.NoError(t, json.Unmarshal([]byte(out), &frame))
	assert.Equal(t, 40, frame.State.Value)
	assert.Equal(t, 80.0, frame.Report.Score)
	assert.Equal(t, 480.0, frame.Shape.Top.X)
}

func TestScoreCommandClamps(t *testing.T) {
	out := runCommand(t, "score", "--direction", "-999")

	var frame session.Frame
	require.NoError(t, json.Unmarshal([]byte(out), &frame))
	assert.Equal(t, -50, frame.State.Direction)
}

func TestScoreCommandSVG(t *testing.T) {
	// Flag values persist across Execute calls; reset them explicitly.
	out := runCommand(t, "score", "--svg", "--value", "0", "--direction", "0")
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, "Structural integrity 100")
}

func TestPointsCommand(t *testing.T) {
	out := runCommand(t, "points")
	for _, label := range []string{"Value", "Direction", "Exchange", "Operate"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "Investors")
	assert.Contains(t, out, "Market")
}
