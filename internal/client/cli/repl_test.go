package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Search(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "search")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) Near(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "near")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "show")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) Categories(ctx context.Context) error {
	f.calls = append(f.calls, "categories")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"search hot stone",
		"near 37.77 -122.42 5",
		"show loc-001",
		"categories",
		"whoami",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "search", "near", "show", "categories", "whoami", "logout"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantOrder)
	}
	for i, c := range exec.calls {
		if c != wantOrder[i] {
			t.Fatalf("commands order mismatch: got %v, want %v", exec.calls, wantOrder)
		}
	}

	if got := exec.args[0]; len(got) != 2 || got[0] != "hot" || got[1] != "stone" {
		t.Fatalf("search args: %v", got)
	}
	if got := exec.args[1]; len(got) != 3 {
		t.Fatalf("near args: %v", got)
	}
	if got := exec.args[2]; len(got) != 1 || got[0] != "loc-001" {
		t.Fatalf("show args: %v", got)
	}
}

func TestRunREPL_SearchAlias(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("s yoga\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "search" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EmptyAndUnknownLines(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nnope\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
