package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rand-str-gen/rand-str-gen/internal/charset"
)

// fakeClip records clipboard writes instead of touching the OS clipboard.
type fakeClip struct {
	text string
	err  error
}

func (f *fakeClip) Write(text string) error {
	f.text = text

	return f.err
}

// execute resets flag state, runs the root command with args, and returns
// the captured output. Flag values persist between Execute calls, so every
// test goes through here.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	copyToClipboard = false
	repeat = defaults.Repeat
	showPool = false
	logLevel = defaults.LogLevel
	noColor = true

	var buf bytes.Buffer

	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return buf.String(), err
}

func outputLines(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestRunDefaultPool(t *testing.T) {
	out, err := execute(t, "10")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 1)
	assert.Len(t, []rune(lines[0]), 10)

	pool, err := charset.Build(charset.DefaultRequest())
	require.NoError(t, err)

	for _, r := range lines[0] {
		assert.True(t, pool.Contains(r), "character %q is not in the default pool", r)
	}
}

func TestRunRepeat(t *testing.T) {
	out, err := execute(t, "-r", "3", "6")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 3)

	for _, line := range lines {
		assert.Len(t, []rune(line), 6)
	}
}

func TestRunEntriesRestrictPool(t *testing.T) {
	out, err := execute(t, "20", "-A", "+[ab]")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 1)

	for _, r := range lines[0] {
		assert.Contains(t, []rune{'a', 'b'}, r)
	}
}

func TestRunExcludeMiscSymbolsEntry(t *testing.T) {
	out, err := execute(t, "200", "-m")
	require.NoError(t, err)

	for _, r := range []rune{'!', '*', '&', '#'} {
		assert.NotContains(t, outputLines(out)[0], string(r))
	}
}

func TestRunShowPool(t *testing.T) {
	out, err := execute(t, "--show-pool", "4", "-A", "+[xy]")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 2)
	assert.Equal(t, "pool: ['x' 'y']", lines[0])
	assert.Len(t, []rune(lines[1]), 4)
}

func TestRunCopyToClipboard(t *testing.T) {
	prev := clipWriter
	fake := &fakeClip{}
	clipWriter = fake

	defer func() { clipWriter = prev }()

	out, err := execute(t, "-c", "-r", "2", "8")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 2)
	assert.Equal(t, lines[1], fake.text, "clipboard should hold the last generated string")
}

func TestRunCopyFailure(t *testing.T) {
	prev := clipWriter
	clipWriter = &fakeClip{err: assert.AnError}

	defer func() { clipWriter = prev }()

	out, err := execute(t, "-c", "6")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)

	// The string is still printed before the clipboard failure.
	assert.Len(t, []rune(outputLines(out)[0]), 6)
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"length is not a number", []string{"abc"}, ErrInvalidLength},
		{"length zero", []string{"0"}, ErrInvalidLength},
		{"negative length parsed as flag", []string{"-5"}, ErrInvalidFlag},
		{"unknown flag", []string{"--frobnicate", "5"}, ErrInvalidFlag},
		{"repeat zero", []string{"-r", "0", "5"}, ErrInvalidRepeat},
		{"bad entry prefix", []string{"5", "m"}, charset.ErrBadEntryPrefix},
		{"unknown set letter", []string{"5", "+z"}, charset.ErrUnknownSetEntry},
		{"unterminated custom set", []string{"5", "+[ab"}, charset.ErrUnterminatedSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, isUsageError(err))
		})
	}
}

func TestRunEmptyPool(t *testing.T) {
	_, err := execute(t, "5", "-A")
	require.Error(t, err)
	assert.ErrorIs(t, err, charset.ErrEmptyPool)
	assert.False(t, isUsageError(err))
}

func TestRunMissingLength(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingLength)
	assert.True(t, isUsageError(err))
}

// executeTop runs the full Execute path (logger setup, error reporting)
// with the command's error stream captured.
func executeTop(t *testing.T, args ...string) (string, error) {
	t.Helper()

	copyToClipboard = false
	repeat = defaults.Repeat
	showPool = false
	logLevel = defaults.LogLevel
	noColor = true

	var out, errOut bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := Execute()

	return errOut.String(), err
}

func TestExecuteUsageHintAtDefaultLevel(t *testing.T) {
	// The default log level is warn; the hint must still appear.
	stderr, err := executeTop(t, "5", "m")
	require.Error(t, err)
	assert.ErrorIs(t, err, charset.ErrBadEntryPrefix)
	assert.Contains(t, stderr, "use --help for valid args")
}

func TestExecuteFlagErrorGetsHint(t *testing.T) {
	stderr, err := executeTop(t, "-5")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFlag)
	assert.Contains(t, stderr, "use --help for valid args")
}

func TestExecuteMissingLengthGetsHint(t *testing.T) {
	stderr, err := executeTop(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingLength)
	assert.Contains(t, stderr, "use --help for valid args")
}

func TestExecuteNoHintForEmptyPool(t *testing.T) {
	stderr, err := executeTop(t, "5", "-A")
	require.Error(t, err)
	assert.ErrorIs(t, err, charset.ErrEmptyPool)
	assert.NotContains(t, stderr, "use --help for valid args")
}

func TestHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "rand-str-gen [flags] length [entry ...]")
	assert.Contains(t, out, "misc symbols")
	assert.Contains(t, out, "--repeat")
}
