package strings

import "testing"

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("lookup", "name"); got != "lookup" {
		t.Fatalf("got %q", got)
	}
	defer func() {
		if r := recover(); r != "name is required" {
			t.Fatalf("unexpected panic %v", r)
		}
	}()
	MustString(" \t", "name")
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"verify":     "/verify",
		"/verify/":   "/verify",
		" //lookup ": "/lookup",
		"/a/b":       "/a/b",
	} {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q want %q", in, got, want)
		}
	}

	for _, in := range []string{"", "/", "  / "} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("MustPrefix(%q) should panic", in)
				}
			}()
			MustPrefix(in)
		}()
	}
}

func TestPtr(t *testing.T) {
	t.Parallel()

	if Ptr("") != nil {
		t.Fatalf("empty string should map to nil")
	}
	if p := Ptr("Jane Smith"); p == nil || *p != "Jane Smith" {
		t.Fatalf("got %v", p)
	}
}
