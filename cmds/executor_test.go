package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"a", "foo",
	})
	if err == nil || !strings.Contains(err.Error(), "convert") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"nope",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArg(t *testing.T) {
	executor := NewExecutor()

	var got *string
	executor.Define("opt", Func(func(s *string) {
		got = s
	}))

	if err := executor.Execute([]string{"opt"}); err != nil {
		t.Fatal(err)
	}
	if *got != "" {
		t.Fatalf("got %q", *got)
	}

	if err := executor.Execute([]string{"opt", "x"}); err != nil {
		t.Fatal(err)
	}
	if *got != "x" {
		t.Fatalf("got %q", *got)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()

	var path []string
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			path = append(path, "bar")
		}),
	}))

	if err := executor.Execute([]string{
		"foo", "bar",
	}); err != nil {
		t.Fatal(err)
	}
	if strings.Join(path, " ") != "bar" {
		t.Fatalf("got %v", path)
	}

	err := executor.Execute([]string{"bar"})
	if err == nil {
		t.Fatal("sub command must not leak to the top level")
	}
}
