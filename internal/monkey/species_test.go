package monkey

import (
	"testing"
	"time"
)

func TestCatalog_Find(t *testing.T) {
	t.Parallel()

	c := newCatalog("id", "test", time.Time{}, []Species{{Name: "Henry"}, {Name: "Blue Monkey"}})

	cases := []struct {
		query string
		want  string
		ok    bool
	}{
		{"henry", "Henry", true},
		{"BLUE MONKEY", "Blue Monkey", true},
		{"Blue", "", false},
		{" Henry", "", false},
		{"\t", "", false},
	}
	for _, tc := range cases {
		got, ok := c.find(tc.query)
		if ok != tc.ok || got.Name != tc.want {
			t.Fatalf("find(%q)=%q,%v want=%q,%v", tc.query, got.Name, ok, tc.want, tc.ok)
		}
	}
}

func TestCatalog_Duplicates(t *testing.T) {
	t.Parallel()

	c := newCatalog("id", "test", time.Time{}, []Species{{Name: "Henry"}, {Name: "Mooch"}, {Name: "henry"}})
	dups := c.duplicates()
	if len(dups) != 1 || dups[0] != "henry" {
		t.Fatalf("dups=%v", dups)
	}
}

func TestCatalog_NegativePopulations(t *testing.T) {
	t.Parallel()

	c := newCatalog("id", "test", time.Time{}, []Species{
		{Name: "Henry", Population: 1},
		{Name: "Ghost", Population: -3},
		{Name: "Mooch"},
	})
	bad := c.negativePopulations()
	if len(bad) != 1 || bad[0] != "Ghost" {
		t.Fatalf("bad=%v", bad)
	}
}
