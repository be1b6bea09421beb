package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"MonkeyApp/internal/monkey"
	"MonkeyApp/internal/render"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]render.Format{
		"table":    render.FormatTable,
		"JSON":     render.FormatJSON,
		" yaml ":   render.FormatYAML,
		"yml":      render.FormatYAML,
		"markdown": render.FormatMarkdown,
		"md":       render.FormatMarkdown,
	}
	for in, want := range cases {
		got, err := render.ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q)=%q,%v want=%q", in, got, err, want)
		}
	}

	if _, err := render.ParseFormat("csv"); err == nil {
		t.Fatalf("expected error for csv")
	}
}

func TestList_Formats(t *testing.T) {
	t.Parallel()

	all := monkey.SeedSpecies()[:3]

	for _, f := range []render.Format{render.FormatTable, render.FormatJSON, render.FormatYAML, render.FormatMarkdown} {
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := render.List(&buf, f, all, 7); err != nil {
				t.Fatalf("list: %v", err)
			}
			out := buf.String()
			for _, m := range all {
				if !strings.Contains(out, m.Name) {
					t.Fatalf("%s output missing %q:\n%s", f, m.Name, out)
				}
			}
		})
	}
}

func TestList_TableShowsAccessCount(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := render.List(&buf, render.FormatMarkdown, monkey.SeedSpecies()[:1], 12); err != nil {
		t.Fatalf("list: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Available Monkeys") || !strings.Contains(out, "Access Count") {
		t.Fatalf("missing heading or column:\n%s", out)
	}
	if !strings.Contains(out, "12") {
		t.Fatalf("access count not rendered:\n%s", out)
	}
}

func TestList_MachineFormatsRoundTrip(t *testing.T) {
	t.Parallel()

	all := monkey.SeedSpecies()

	var js bytes.Buffer
	if err := render.List(&js, render.FormatJSON, all, 0); err != nil {
		t.Fatalf("json: %v", err)
	}
	var fromJSON []monkey.Species
	if err := json.Unmarshal(js.Bytes(), &fromJSON); err != nil {
		t.Fatalf("decode json: %v", err)
	}

	var ys bytes.Buffer
	if err := render.List(&ys, render.FormatYAML, all, 0); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var fromYAML []monkey.Species
	if err := yaml.Unmarshal(ys.Bytes(), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}

	if len(fromJSON) != len(all) || len(fromYAML) != len(all) {
		t.Fatalf("json=%d yaml=%d want=%d", len(fromJSON), len(fromYAML), len(all))
	}
	if fromYAML[7] != all[7] {
		t.Fatalf("yaml entry=%+v want=%+v", fromYAML[7], all[7])
	}
}

func TestList_UnknownFormat(t *testing.T) {
	t.Parallel()

	if err := render.List(&bytes.Buffer{}, render.Format("xml"), nil, 0); err == nil {
		t.Fatalf("expected error")
	}
}

func TestDetails(t *testing.T) {
	t.Parallel()

	m := monkey.Species{
		Name:       "Henry",
		Location:   "Phoenix",
		Details:    "An adorable monkey.",
		Image:      "https://example.com/henry.jpg",
		Population: 1,
		Latitude:   33.448376,
		Longitude:  -112.074036,
	}

	var buf bytes.Buffer
	if err := render.Details(&buf, m); err != nil {
		t.Fatalf("details: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Henry", "Phoenix", "An adorable monkey.", "henry.jpg", "33.448376", "-112.074036"} {
		if !strings.Contains(out, want) {
			t.Fatalf("details missing %q:\n%s", want, out)
		}
	}
}
