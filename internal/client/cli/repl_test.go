package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	err   error
}

func (f *fakeExec) record(call string, args ...any) error {
	if len(args) > 0 {
		call = fmt.Sprint(append([]any{call}, args...)...)
	}
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Add(ctx context.Context) error       { return f.record("add") }
func (f *fakeExec) List(ctx context.Context) error      { return f.record("list") }
func (f *fakeExec) Favorites(ctx context.Context) error { return f.record("favorites") }
func (f *fakeExec) Category(ctx context.Context, name string) error {
	return f.record("category ", name)
}
func (f *fakeExec) Show(ctx context.Context, id string) error { return f.record("show ", id) }
func (f *fakeExec) ToggleFavorite(ctx context.Context, id string) error {
	return f.record("fav ", id)
}
func (f *fakeExec) Tag(ctx context.Context, id string, tags []string) error {
	return f.record("tag ", id, " ", strings.Join(tags, ","))
}
func (f *fakeExec) Edit(ctx context.Context, id string) error   { return f.record("edit ", id) }
func (f *fakeExec) Delete(ctx context.Context, id string) error { return f.record("delete ", id) }
func (f *fakeExec) Search(ctx context.Context, text string) error {
	return f.record("search ", text)
}
func (f *fakeExec) Filter(ctx context.Context, tags []string) error {
	return f.record("filter ", strings.Join(tags, ","))
}
func (f *fakeExec) Download(ctx context.Context, id, path string) error {
	return f.record("download ", id, " ", path)
}
func (f *fakeExec) Stats(ctx context.Context) error { return f.record("stats") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	input := strings.Join([]string{
		"help",
		"add",
		"login",
		"help",
		"add",
		"list",
		"l",
		"favorites",
		"category space",
		"show demo-fox",
		"fav demo-fox",
		"tag demo-fox cute winter",
		"edit demo-fox",
		"search red fox",
		"filter a b",
		"download demo-fox /tmp/fox.jpg",
		"stats",
		"delete demo-fox",
		"logout",
		"",
		"foobar",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	require.Equal(t, []string{
		"login",
		"add",
		"list",
		"list",
		"favorites",
		"category space",
		"show demo-fox",
		"fav demo-fox",
		"tag demo-fox cute,winter",
		"edit demo-fox",
		"search red fox",
		"filter a,b",
		"download demo-fox /tmp/fox.jpg",
		"stats",
		"delete demo-fox",
		"logout",
	}, exec.calls)
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	out := captureOutput(t)

	input := "show\nfav\ncategory\nedit\ndelete\nsearch\nfilter\ndownload x\ntag\nquit\n"
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	require.Empty(t, exec.calls)
	joined := strings.Join(*out, "")
	require.Contains(t, joined, "Usage: show <id>")
	require.Contains(t, joined, "Usage: download <id> <path>")
	require.Contains(t, joined, "Bye!")
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("list\nstats")))

	require.Equal(t, []string{"list", "stats"}, exec.calls)
	require.Contains(t, strings.Join(*out, ""), "Error: boom")
}

func TestRunREPL_AddRequiresLogin(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("add\n")))

	require.Empty(t, exec.calls)
	require.Contains(t, strings.Join(*out, ""), "Please login first")
}
