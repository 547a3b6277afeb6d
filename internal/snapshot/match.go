package snapshot

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

var update = flag.Bool("update", false, "rewrite snapshot files")

// Match compares a rendered view with the snapshot named after the running
// test. The first run records the snapshot.
func Match(t testing.TB, view string) bool {
	t.Helper()
	return MatchNamed(t, NewStore(), t.Name(), view)
}

// MatchNamed is Match with an explicit store and name.
func MatchNamed(t testing.TB, s *Store, name, view string) bool {
	t.Helper()
	got := Normalize(view)

	want, ok, err := s.Load(name)
	if err != nil {
		t.Fatalf("load snapshot %q: %v", name, err)
	}
	if !ok || *update {
		if err := s.Save(name, got); err != nil {
			t.Fatalf("save snapshot %q: %v", name, err)
		}
		return true
	}
	return assert.Equal(t, want, got, "snapshot %s differs; rerun with -update to accept", s.Path(name))
}

// Inline compares a rendered view with an expected literal after the same
// normalization snapshots get. Leading newlines in want are ignored so the
// literal can start on its own line.
func Inline(t testing.TB, want, view string) bool {
	t.Helper()
	return assert.Equal(t, Normalize(trimLeadingNewlines(want)), Normalize(view))
}

func trimLeadingNewlines(s string) string {
	for len(s) > 0 && s[0] == '\n' {
		s = s[1:]
	}
	return s
}
