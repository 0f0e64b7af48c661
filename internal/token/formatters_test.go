package token_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/inkwell-md/inkwell/internal/token"
)

func formatToken(t *testing.T, name string) string {
	t.Helper()
	reg := token.DefaultRegistry()
	f, ok := reg.Lookup(name)
	if !ok {
		t.Fatalf("token %q not registered", name)
	}
	got, err := f.Format(context.Background(), token.Substitution{}, &fakeHost{}, "")
	if err != nil {
		t.Fatalf("Format(%q) error: %v", name, err)
	}
	return got
}

func TestRandomTokenAlphabets(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
	}{
		{"randomDigit", "0123456789"},
		{"randomLetter", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"randomDigitOrLetter", "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[string]bool)
			for i := 0; i < 1000; i++ {
				got := formatToken(t, tt.name)
				if len(got) != 1 {
					t.Fatalf("%s returned %q, want exactly one character", tt.name, got)
				}
				if !strings.Contains(tt.alphabet, got) {
					t.Fatalf("%s returned %q, outside alphabet %q", tt.name, got, tt.alphabet)
				}
				seen[got] = true
			}
			// 1000 draws should hit well over half the alphabet.
			if len(seen) < len(tt.alphabet)/2 {
				t.Errorf("%s produced only %d distinct characters from %d", tt.name, len(seen), len(tt.alphabet))
			}
		})
	}
}

func TestUUIDTokenWellFormedAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := formatToken(t, "uuid")
		if _, err := uuid.Parse(got); err != nil {
			t.Fatalf("uuid token returned %q: %v", got, err)
		}
		if seen[got] {
			t.Fatalf("uuid token repeated %q", got)
		}
		seen[got] = true
	}
}

func TestDateTokenFormats(t *testing.T) {
	reg := token.DefaultRegistry()
	f, _ := reg.Lookup("date")
	host := &fakeHost{}

	tests := []struct {
		format string
		want   string
	}{
		{"", "2026-08-31"},
		{"2006", "2026"},
		{"2006-01-02 15:04", "2026-08-31 10:30"},
		{"Jan 2006", "Aug 2026"},
	}
	for _, tt := range tests {
		got, err := f.Format(context.Background(), token.Substitution{}, host, tt.format)
		if err != nil {
			t.Fatalf("date format %q error: %v", tt.format, err)
		}
		if got != tt.want {
			t.Errorf("date format %q = %q, want %q", tt.format, got, tt.want)
		}
	}
}
