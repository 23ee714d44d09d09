package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termcal/calendar"
	"github.com/lixenwraith/termcal/config"
	"github.com/lixenwraith/termcal/input"
	"github.com/lixenwraith/termcal/session"
	"github.com/lixenwraith/termcal/terminal"
)

// captureStart replaces the session launcher and returns the options it receives
func captureStart(t *testing.T) *session.Options {
	t.Helper()
	got := &session.Options{}
	orig := startFunc
	startFunc = func(opts session.Options) error {
		*got = opts
		return nil
	}
	t.Cleanup(func() { startFunc = orig })
	return got
}

func fixedToday(t *testing.T, at time.Time) {
	t.Helper()
	orig := timeProvider
	timeProvider = calendar.NewMockTimeProvider(at)
	t.Cleanup(func() { timeProvider = orig })
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "termcal [month year]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
	assert.NotNil(t, cmd.Flags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("debug"))
}

func TestVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "termcal version dev\n", buf.String())
}

func TestRun_NoArgsOpensToday(t *testing.T) {
	got := captureStart(t)
	fixedToday(t, time.Date(2023, time.July, 15, 10, 0, 0, 0, time.Local))

	require.NoError(t, execute(t, "--config", emptyConfig(t)))
	require.NotNil(t, got.Calendar)
	assert.Equal(t, 15, got.Calendar.Day)
	assert.Equal(t, 7, got.Calendar.Month)
	assert.Equal(t, 2023, got.Calendar.Year)
	assert.Equal(t, input.DefaultKeyTable(), got.Keys)
	assert.Equal(t, terminal.DefaultTheme(), got.Theme)
}

func TestRun_MonthYear(t *testing.T) {
	got := captureStart(t)

	require.NoError(t, execute(t, "--config", emptyConfig(t), "2", "2024"))
	require.NotNil(t, got.Calendar)
	assert.Equal(t, calendar.NoDay, got.Calendar.Day)
	assert.Equal(t, 2, got.Calendar.Month)
	assert.Equal(t, 2024, got.Calendar.Year)
	assert.Equal(t, 29, got.Calendar.DaysInMonth())
	assert.Equal(t, calendar.Thursday, got.Calendar.WeekdayOffset())
}

func TestRun_ArgErrorsBeforeTerminal(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"month out of range", []string{"13", "2024"}, config.ErrMonthRange},
		{"year omitted", []string{"5"}, config.ErrYearMissing},
		{"month not integer", []string{"may", "2024"}, config.ErrMonthNotInteger},
		{"year not integer", []string{"5", "soon"}, config.ErrYearNotInteger},
		{"negative year", []string{"5", "-1"}, config.ErrYearNotInteger},
		{"negative month", []string{"-3", "2024"}, config.ErrMonthNotInteger},
		{"negative month alone", []string{"-12"}, config.ErrMonthNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			started := false
			orig := startFunc
			startFunc = func(session.Options) error {
				started = true
				return nil
			}
			defer func() { startFunc = orig }()

			err := execute(t, append([]string{"--config", emptyConfig(t)}, tt.args...)...)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, started, "terminal must not be touched")
		})
	}
}

func TestNumericFlagError_KeepsRealFlagErrors(t *testing.T) {
	captureStart(t)

	err := execute(t, "-x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shorthand flag: 'x' in -x")

	err = execute(t, "--colour", "red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag: --colour")
}

func TestRun_FlagsBeforePositionals(t *testing.T) {
	got := captureStart(t)

	require.NoError(t, execute(t, "--config", emptyConfig(t), "--debug=false", "11", "1918"))
	require.NotNil(t, got.Calendar)
	assert.Equal(t, 11, got.Calendar.Month)
	assert.Equal(t, 1918, got.Calendar.Year)
}

func TestRun_TooManyArgs(t *testing.T) {
	captureStart(t)
	err := execute(t, "1", "2024", "extra")
	assert.ErrorContains(t, err, "accepts at most 2 arg(s)")
}

func TestRun_ConfigFile(t *testing.T) {
	got := captureStart(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
theme:
  today: fuchsia
keys:
  j: next_month
  t: none
`), 0644))

	require.NoError(t, execute(t, "--config", path, "1", "2000"))

	assert.Equal(t, input.ActionNextMonth, got.Keys.Runes['j'])
	_, bound := got.Keys.Runes['t']
	assert.False(t, bound)

	fg, _, _ := got.Theme[terminal.StyleToday].Decompose()
	assert.Equal(t, tcell.ColorFuchsia, fg)
}

func TestRun_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad action", "keys:\n  x: launch\n", `keys: key "x": unknown action "launch"`},
		{"bad style", "theme:\n  weekend: red\n", `theme: unknown style "weekend"`},
		{"bad color", "theme:\n  today: ultraviolet\n", `theme: style "today": unknown color "ultraviolet"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureStart(t)
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			err := execute(t, "--config", path)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRun_MissingExplicitConfig(t *testing.T) {
	captureStart(t)
	err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRun_SessionErrorPropagates(t *testing.T) {
	orig := startFunc
	startFunc = func(session.Options) error { return terminal.ErrClosed }
	defer func() { startFunc = orig }()

	err := execute(t, "--config", emptyConfig(t), "3", "2021")
	assert.ErrorIs(t, err, terminal.ErrClosed)
}
