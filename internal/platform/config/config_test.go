package config

import (
	"slices"
	"testing"
	"time"

	kit "callerverify/internal/platform/testkit"
)

func TestPrefix_Nests(t *testing.T) {
	c := New().Prefix("CALLERVERIFY_").Prefix("API_")
	if got := c.Key("PORT"); got != "CALLERVERIFY_API_PORT" {
		t.Fatalf("Key = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_DBURL", "  postgres://x ")
	if got := c.MustString("DBURL"); got != "postgres://x" {
		t.Fatalf("MustString = %q", got)
	}
	t.Setenv("CFGT_BLANK", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("BLANK") })
	kit.MustPanic(t, func() { _ = c.MustString("UNSET") })
}

func TestMayString(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_BACKEND", " redis ")
	if got := c.MayString("BACKEND", "pg"); got != "redis" {
		t.Fatalf("set = %q", got)
	}
	if got := c.MayString("UNSET", "pg"); got != "pg" {
		t.Fatalf("unset = %q", got)
	}
}

func TestParsedAccessors(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_CONC", " 8 ")
	t.Setenv("CFGT_CONC_BAD", "eight")
	t.Setenv("CFGT_ON", "true")
	t.Setenv("CFGT_ON_BAD", "sometimes")
	t.Setenv("CFGT_GRACE", "250ms")
	t.Setenv("CFGT_GRACE_BAD", "soon")

	if got := c.MayInt("CONC", 1); got != 8 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("CONC_BAD", 1); got != 1 {
		t.Fatalf("MayInt bad = %d", got)
	}
	if got := c.MayInt("UNSET", 3); got != 3 {
		t.Fatalf("MayInt unset = %d", got)
	}
	if !c.MayBool("ON", false) || !c.MayBool("ON_BAD", true) || c.MayBool("UNSET", false) {
		t.Fatalf("MayBool mismatch")
	}
	if got := c.MayDuration("GRACE", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("GRACE_BAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration bad = %v", got)
	}
}

func TestMaySeconds(t *testing.T) {
	c := New().Prefix("CFGT_")
	cases := map[string]time.Duration{
		"3600": time.Hour,
		" 0 ":  0,
		"-5":   time.Minute,
		"1h":   time.Minute,
		"":     time.Minute,
	}
	for in, want := range cases {
		t.Setenv("CFGT_TTL", in)
		if got := c.MaySeconds("TTL", time.Minute); got != want {
			t.Fatalf("MaySeconds(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMayFirst(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_OLD_KEY", "legacy")
	if got := c.MayFirst("none", "NEW_KEY", "OLD_KEY"); got != "legacy" {
		t.Fatalf("alias = %q", got)
	}
	t.Setenv("CFGT_NEW_KEY", "current")
	if got := c.MayFirst("none", "NEW_KEY", "OLD_KEY"); got != "current" {
		t.Fatalf("preferred = %q", got)
	}
	if got := c.MayFirst("none", "MISSING_A", "MISSING_B"); got != "none" {
		t.Fatalf("default = %q", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CFGT_")
	def := []string{"*"}

	t.Setenv("CFGT_ORIGINS", " https://a.example , ,https://b.example ")
	if got := c.MayCSV("ORIGINS", def); !slices.Equal(got, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("MayCSV = %v", got)
	}
	t.Setenv("CFGT_ORIGINS", " , ")
	if got := c.MayCSV("ORIGINS", def); !slices.Equal(got, def) {
		t.Fatalf("blank items = %v", got)
	}
	if got := c.MayCSV("UNSET", nil); got != nil {
		t.Fatalf("unset = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("CFGT_")
	if got := c.MayEnum("BACKEND", "pg", "pg", "redis"); got != "pg" {
		t.Fatalf("default = %q", got)
	}
	t.Setenv("CFGT_BACKEND", "REDIS")
	if got := c.MayEnum("BACKEND", "pg", "pg", "redis"); got != "REDIS" {
		t.Fatalf("case insensitive = %q", got)
	}
	t.Setenv("CFGT_BACKEND", "sqlite")
	kit.MustPanic(t, func() { _ = c.MayEnum("BACKEND", "pg", "pg", "redis") })
	if got := c.MayEnum("UNSET", ""); got != "" {
		t.Fatalf("empty default = %q", got)
	}
}
