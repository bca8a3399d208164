package main

import "testing"

func TestSelfURL(t *testing.T) {
	cases := map[string]string{
		":4000":          "http://127.0.0.1:4000",
		"0.0.0.0:4000":   "http://127.0.0.1:4000",
		"[::]:4000":      "http://127.0.0.1:4000",
		"127.0.0.1:8080": "http://127.0.0.1:8080",
		"api.local:80":   "http://api.local:80",
		"[::1]:9000":     "http://[::1]:9000",
		"no-port":        "http://no-port",
	}
	for in, want := range cases {
		if got := selfURL(in); got != want {
			t.Fatalf("selfURL(%q) = %q, want %q", in, got, want)
		}
	}
}
