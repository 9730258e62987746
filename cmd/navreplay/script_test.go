package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoScript = `
[[step]]
op = "push"
route = "home"

[[step]]
op = "push_result"
route = "detail"
arg = "1"

[[step]]
op = "pop"
arg = "blue"

[[step]]
op = "notify"
message = "Saved"
duration = "2s"

[[step]]
op = "alert"
title = "Save?"

[[step]]
op = "advance"
duration = "2s"

[[step]]
op = "dismiss_alert"

[[step]]
op = "clear"
`

func quietOptions() navstack.Options {
	return navstack.Options{Logger: slog.New(slog.DiscardHandler)}
}

func play(t *testing.T, src string) string {
	t.Helper()
	script, err := ParseScript([]byte(src))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Play(context.Background(), &out, script, quietOptions()))
	return out.String()
}

func TestPlayDemoScript(t *testing.T) {
	want := `1 push +0s view="Home" stack=[home] queue=[] modal=none
2 push_result +0s view="Detail 1" stack=[home detail(1)] queue=[] modal=none
    result: blue
3 pop +0s view="Home" stack=[home] queue=[] modal=none
4 notify +0s view="Home" stack=[home] queue=["Saved"] modal=none
5 alert +0s view="Home" stack=[home] queue=["Saved"] modal=alert("Save?")
6 advance +2s view="Home" stack=[home] queue=[] modal=alert("Save?")
7 dismiss_alert +2s view="Home" stack=[home] queue=[] modal=none
8 clear +2s view="Root" stack=[] queue=[] modal=none
`
	assert.Equal(t, want, play(t, demoScript))
}

func TestPlayStackOperations(t *testing.T) {
	out := play(t, `
[[step]]
op = "replace_all"
route = "home"
[[step]]
op = "push"
route = "detail"
arg = "1"
[[step]]
op = "push"
route = "detail"
arg = "2"
[[step]]
op = "replace"
route = "settings"
[[step]]
op = "pop_while"
until = "home"
[[step]]
op = "push"
route = "detail"
arg = "3"
[[step]]
op = "pop_until"
route = "settings"
until = "home"
`)
	assert.Contains(t, out, "4 replace +0s view=\"Settings\" stack=[home detail(1) settings]")
	assert.Contains(t, out, "5 pop_while +0s view=\"Home\" stack=[home] ")
	assert.Contains(t, out, "7 pop_until +0s view=\"Settings\" stack=[home settings] ")
}

func TestPlayNotificationsExpireInOrder(t *testing.T) {
	out := play(t, `
[[step]]
op = "notify"
message = "long"
duration = "5s"
[[step]]
op = "notify"
message = "default"
[[step]]
op = "advance"
duration = "3s"
[[step]]
op = "notify"
message = "gone"
duration = "1s"
[[step]]
op = "dismiss"
index = 1
[[step]]
op = "advance"
duration = "2s"
`)
	assert.Contains(t, out, `3 advance +3s view="Root" stack=[] queue=["long"] modal=none`)
	assert.Contains(t, out, `5 dismiss +3s view="Root" stack=[] queue=["long"] modal=none`)
	assert.Contains(t, out, `6 advance +5s view="Root" stack=[] queue=[] modal=none`)
}

func TestPlaySheets(t *testing.T) {
	out := play(t, `
[[step]]
op = "sheet"
message = "filters"
full_screen = true
[[step]]
op = "alert"
title = "Sure?"
[[step]]
op = "dismiss_sheet"
`)
	assert.Contains(t, out, "1 sheet +0s view=\"Root\" stack=[] queue=[] modal=sheet(full)\n")
	assert.Contains(t, out, "2 alert +0s view=\"Root\" stack=[] queue=[] modal=alert(\"Sure?\")+sheet(full)\n")
	assert.Contains(t, out, "3 dismiss_sheet +0s view=\"Root\" stack=[] queue=[] modal=alert(\"Sure?\")\n")
}

func TestCompileReportsStepNumber(t *testing.T) {
	cases := []struct {
		name string
		src  string
		step int
		want error
	}{
		{"unknown op", "[[step]]\nop = \"push\"\nroute = \"home\"\n[[step]]\nop = \"teleport\"\n", 2, ErrUnknownOp},
		{"unknown route", "[[step]]\nop = \"push\"\nroute = \"attic\"\n", 1, ErrUnknownRoute},
		{"unknown until", "[[step]]\nop = \"pop_while\"\nuntil = \"attic\"\n", 1, ErrUnknownRoute},
		{"detail without arg", "[[step]]\nop = \"push\"\nroute = \"detail\"\n", 1, ErrBadStep},
		{"advance without duration", "[[step]]\nop = \"clear\"\n[[step]]\nop = \"clear\"\n[[step]]\nop = \"advance\"\n", 3, ErrBadStep},
		{"bad duration", "[[step]]\nop = \"notify\"\nmessage = \"m\"\nduration = \"soon\"\n", 1, ErrBadStep},
		{"missing op", "[[step]]\nroute = \"home\"\n", 1, ErrBadStep},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			script, err := ParseScript([]byte(tc.src))
			require.NoError(t, err)

			var out bytes.Buffer
			err = Play(context.Background(), &out, script, quietOptions())
			require.Error(t, err)

			var stepErr *StepError
			require.ErrorAs(t, err, &stepErr)
			assert.Equal(t, tc.step, stepErr.Step)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, out.String(), "nothing runs when a step is invalid")
		})
	}
}

func TestParseScriptRejectsUnknownKeys(t *testing.T) {
	_, err := ParseScript([]byte("[[step]]\nop = \"push\"\nroute = \"home\"\ncolour = \"red\"\n"))
	assert.ErrorContains(t, err, "colour")
}

func TestParseRoute(t *testing.T) {
	id, err := ParseRoute("detail", "7")
	require.NoError(t, err)
	assert.Equal(t, route.Wrap(Screen{Name: "detail", ID: "7"}), id)
	assert.Equal(t, "detail(7)", id.String())

	_, err = ParseRoute("home", "7")
	assert.ErrorIs(t, err, ErrBadStep)
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.toml")
	require.NoError(t, os.WriteFile(path, []byte(demoScript), 0644))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"run", path, "--log-level", "error"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "8 clear +2s view=\"Root\"")
}

func TestRunCommandMissingScript(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"run", filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, rootCmd.Execute())
}
