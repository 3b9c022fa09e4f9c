package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execEmit(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewEmitCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestEmitSeededNext(t *testing.T) {
	out, err := execEmit(t, "text", "--seed", "42", "--count", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"1434747710",
		"302596119",
		"269548474",
		"1122627734",
		"361709742",
	}, lines)
}

func TestEmitCompatMatchesSeeded(t *testing.T) {
	seeded, err := execEmit(t, "text", "--seed", "7", "--count", "10")
	require.NoError(t, err)
	compat, err := execEmit(t, "text", "--seed", "7", "--count", "10", "--strategy", "compat")
	require.NoError(t, err)
	assert.Equal(t, seeded, compat)
}

func TestEmitBytes(t *testing.T) {
	out, err := execEmit(t, "text", "--seed", "42", "--op", "next_bytes", "--len", "8")
	require.NoError(t, err)
	assert.Equal(t, "3e17ba96ae04cd3b", strings.TrimSpace(out))
}

func TestEmitJSONEnvelope(t *testing.T) {
	out, err := execEmit(t, "json", "--seed", "42", "--op", "next_max", "--max", "100", "--count", "2")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), data["seed"])
	assert.Equal(t, "next_max", data["op"])
	assert.NotEmpty(t, data["run_token"])
	assert.Equal(t, []any{"66", "14"}, data["draws"])
}

func TestEmitDefaultSeedFromSharedSource(t *testing.T) {
	out, err := execEmit(t, "text")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestEmitRejectsUnknownOp(t *testing.T) {
	_, err := execEmit(t, "text", "--seed", "1", "--op", "next_gaussian")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEmitRejectsNegativeBound(t *testing.T) {
	_, err := execEmit(t, "text", "--seed", "1", "--op", "next_max", "--max", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEmitRejectsInvertedRange(t *testing.T) {
	_, err := execEmit(t, "text", "--seed", "1", "--op", "next_range", "--min", "5", "--max", "-5")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEmitRejectsUnknownStrategy(t *testing.T) {
	_, err := execEmit(t, "text", "--seed", "1", "--strategy", "quantum")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEmitRejectsZeroCount(t *testing.T) {
	_, err := execEmit(t, "text", "--seed", "1", "--count", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
