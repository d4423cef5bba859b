package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var max int
	executor.Define("-max", Func(func(i int) {
		max = i
	}))
	var trace bool
	executor.Define("-trace", Func(func() {
		trace = true
	}))

	if err := executor.Execute([]string{
		"-trace",
		"-max", "42",
	}); err != nil {
		t.Fatal(err)
	}
	if max != 42 {
		t.Fatalf("got %v", max)
	}
	if !trace {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-max", "x",
	})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-max",
	})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	bad := errors.New("bad")
	executor.Define("fail", Func(func() error {
		return bad
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, bad) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var addr string
	var limit int
	executor.Define("serve", Sub(map[string]*Command{
		"addr": Func(func(s string) {
			addr = s
		}),
		"limit": Func(func(i int) {
			limit = i
		}),
	}))

	if err := executor.Execute([]string{
		"serve",
		"addr", ":8080",
		"limit", "42",
	}); err != nil {
		t.Fatal(err)
	}
	if addr != ":8080" {
		t.Fatalf("got %v", addr)
	}
	if limit != 42 {
		t.Fatalf("got %v", limit)
	}

	// sub commands are not visible without the parent
	if err := executor.Execute([]string{"addr", "x"}); err == nil {
		t.Fatal("should error")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func() {}))
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("bar", Func(func() {}).Alias("foo"))
	}()
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("got %v", n)
	}
	if s != "foo" {
		t.Fatalf("got %v", s)
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatalf("got %v", n)
	}
	if s != "" {
		t.Fatalf("got %v", s)
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("got %v", n)
	}
	if s != "" {
		t.Fatalf("got %v", s)
	}
}
