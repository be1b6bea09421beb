// Package render turns species into terminal text: the list table, the
// details card shown after a lookup or random pick, and machine-readable
// list formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/nao1215/markdown"
	"gopkg.in/yaml.v3"

	"MonkeyApp/internal/monkey"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, json, yaml or markdown)", s)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	artStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb86c"))
)

var listHeader = []string{"Name", "Location", "Population", "Access Count"}

// List writes all species in the given format. accessCount fills the
// Access Count column of the table and markdown formats.
func List(w io.Writer, f Format, all []monkey.Species, accessCount int64) error {
	switch f {
	case FormatTable:
		_, err := fmt.Fprintln(w, Table(all, accessCount))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(all); err != nil {
			return err
		}
		return enc.Close()
	case FormatMarkdown:
		md := markdown.NewMarkdown(w)
		md.H2("Available Monkeys")
		md.Table(markdown.TableSet{Header: listHeader, Rows: rows(all, accessCount)})
		return md.Build()
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func Table(all []monkey.Species, accessCount int64) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(listHeader...).
		Rows(rows(all, accessCount)...)
	return t.String()
}

func rows(all []monkey.Species, accessCount int64) [][]string {
	out := make([][]string, 0, len(all))
	count := strconv.FormatInt(accessCount, 10)
	for _, m := range all {
		out = append(out, []string{m.Name, m.Location, strconv.Itoa(m.Population), count})
	}
	return out
}

const art = `  .-"""".
 / -   -  \
 |  o   o  |
 |    ^    |
 |  '-'    |
  \       /
   '-----'`

// Details writes the card for one species.
func Details(w io.Writer, m monkey.Species) error {
	var b strings.Builder
	b.WriteString(artStyle.Render(art))
	b.WriteString("\n")

	field := func(label, value string) {
		b.WriteString(labelStyle.Render(label + ":"))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	field("Name", m.Name)
	field("Location", m.Location)
	field("Population", strconv.Itoa(m.Population))
	field("Latitude", strconv.FormatFloat(m.Latitude, 'f', -1, 64))
	field("Longitude", strconv.FormatFloat(m.Longitude, 'f', -1, 64))
	field("Details", m.Details)
	field("Image", m.Image)

	_, err := io.WriteString(w, b.String())
	return err
}
