package menu_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"MonkeyApp/internal/menu"
	"MonkeyApp/internal/monkey"
)

type stubSource struct {
	records []monkey.Species
	err     error
}

func (s stubSource) Name() string { return "stub" }

func (s stubSource) LoadAll(context.Context) ([]monkey.Species, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func run(t *testing.T, src monkey.Source, input string) string {
	t.Helper()

	svc := monkey.NewService(monkey.NewStore(src))

	var out bytes.Buffer
	m := menu.New(svc, strings.NewReader(input), &out, nil)
	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestMenu_ListAndExit(t *testing.T) {
	t.Parallel()

	out := run(t, monkey.NewSeedSource(0), "1\n\n4\n")

	for _, want := range []string{"1) List all monkeys", "Available Monkeys", "Baboon", "Mooch", "Access Count", "Goodbye!"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMenu_FindHitAndMiss(t *testing.T) {
	t.Parallel()

	out := run(t, monkey.NewSeedSource(0), "2\nmandrill\n\n2\nGorilla\n\n4\n")

	if !strings.Contains(out, "Southern Cameroon") {
		t.Fatalf("details for Mandrill missing:\n%s", out)
	}
	if !strings.Contains(out, "Monkey 'Gorilla' not found.") {
		t.Fatalf("miss message missing:\n%s", out)
	}
}

func TestMenu_RandomCountsAccesses(t *testing.T) {
	t.Parallel()

	out := run(t, monkey.NewSeedSource(0), "3\n\n3\n\n4\n")

	if !strings.Contains(out, "Random monkey accessed 1 times.") ||
		!strings.Contains(out, "Random monkey accessed 2 times.") {
		t.Fatalf("access counter messages missing:\n%s", out)
	}
}

func TestMenu_RandomEmptyCatalog(t *testing.T) {
	t.Parallel()

	out := run(t, stubSource{}, "3\n\n4\n")
	if !strings.Contains(out, "No monkeys available.") {
		t.Fatalf("empty message missing:\n%s", out)
	}
}

func TestMenu_InvalidOption(t *testing.T) {
	t.Parallel()

	out := run(t, monkey.NewSeedSource(0), "9\n\n4\n")
	if !strings.Contains(out, "Invalid option.") {
		t.Fatalf("invalid option message missing:\n%s", out)
	}
}

func TestMenu_LoadFailure(t *testing.T) {
	t.Parallel()

	out := run(t, stubSource{err: errors.New("boom")}, "1\n\n4\n")
	if !strings.Contains(out, "Could not load monkeys") {
		t.Fatalf("failure message missing:\n%s", out)
	}
}

func TestMenu_EOFEndsLoop(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "1\n", "2\n"} {
		out := run(t, monkey.NewSeedSource(0), input)
		if strings.Contains(out, "Goodbye!") {
			t.Fatalf("input %q: unexpected goodbye", input)
		}
	}
}

func TestMenu_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := menu.New(monkey.NewService(monkey.NewStore(monkey.NewSeedSource(0))), strings.NewReader("4\n"), &bytes.Buffer{}, nil)
	if err := m.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v want=%v", err, context.Canceled)
	}
}
