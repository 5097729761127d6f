package prefetchcache

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"a/b", "a/b"},
		{"/a/b", "a/b"},
		{`a\b`, "a/b"},
		{`/a\b`, "a/b"},
		{"//a/b", "/a/b"}, // only a single leading slash is stripped
		{"", ""},
		{"/", ""},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := Normalize(c.in); got != c.want {
				t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"a/b", "/a/b", `/a\b`, "//leading", ""} {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
