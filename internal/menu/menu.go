// Package menu is the interactive numbered console menu.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"MonkeyApp/internal/monkey"
	"MonkeyApp/internal/render"
)

type Catalog interface {
	List(ctx context.Context) ([]monkey.Species, error)
	FindByName(ctx context.Context, name string) (monkey.Species, error)
	PickRandom(ctx context.Context) (monkey.Species, error)
	AccessCount() int64
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bd93f9"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
)

const banner = "================ Monkey App ================"

type Menu struct {
	Catalog Catalog
	Log     *zap.Logger

	in  *bufio.Scanner
	out io.Writer
}

func New(c Catalog, in io.Reader, out io.Writer, log *zap.Logger) *Menu {
	if log == nil {
		log = zap.NewNop()
	}
	return &Menu{Catalog: c, Log: log, in: bufio.NewScanner(in), out: out}
}

// Run loops until the user exits, input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		choice, ok := m.readLine("Select an option: ")
		if !ok {
			return m.in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.listAll(ctx)
		case "2":
			if !m.findByName(ctx) {
				return m.in.Err()
			}
		case "3":
			m.random(ctx)
		case "4":
			m.println("Goodbye!")
			return nil
		default:
			m.println("Invalid option.")
		}

		if _, ok := m.readLine("Press Enter to return to menu..."); !ok {
			return m.in.Err()
		}
	}
}

func (m *Menu) printMenu() {
	m.println("")
	m.println(titleStyle.Render(banner))
	m.println("1) List all monkeys")
	m.println("2) Get details for a specific monkey by name")
	m.println("3) Get a random monkey")
	m.println("4) Exit")
	m.println(strings.Repeat("=", len(banner)))
}

func (m *Menu) listAll(ctx context.Context) {
	all, err := m.Catalog.List(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.println("\nAvailable Monkeys:")
	m.println(render.Table(all, m.Catalog.AccessCount()))
}

// findByName reports false when input ended before a name was read.
func (m *Menu) findByName(ctx context.Context) bool {
	name, ok := m.readLine("Enter monkey name: ")
	if !ok {
		return false
	}

	s, err := m.Catalog.FindByName(ctx, name)
	switch {
	case errors.Is(err, monkey.ErrNotFound):
		m.println(fmt.Sprintf("Monkey '%s' not found.", name))
	case err != nil:
		m.fail(err)
	default:
		m.details(s)
	}
	return true
}

func (m *Menu) random(ctx context.Context) {
	s, err := m.Catalog.PickRandom(ctx)
	switch {
	case errors.Is(err, monkey.ErrEmptyCatalog):
		m.println("No monkeys available.")
	case err != nil:
		m.fail(err)
	default:
		m.details(s)
		m.println(fmt.Sprintf("Random monkey accessed %d times.", m.Catalog.AccessCount()))
	}
}

func (m *Menu) details(s monkey.Species) {
	m.println("")
	if err := render.Details(m.out, s); err != nil {
		m.Log.Warn("render details", zap.Error(err))
	}
}

func (m *Menu) fail(err error) {
	m.Log.Warn("menu action failed", zap.Error(err))
	m.println(errorStyle.Render("Could not load monkeys: " + err.Error()))
}

func (m *Menu) readLine(prompt string) (string, bool) {
	_, _ = io.WriteString(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) println(s string) {
	_, _ = io.WriteString(m.out, s+"\n")
}
