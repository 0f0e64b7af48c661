package token_test

import (
	"context"
	"testing"

	"github.com/inkwell-md/inkwell/internal/token"
)

func staticFormatter(s string) token.Formatter {
	return token.FormatterFunc(func(ctx context.Context, sub token.Substitution, host token.Host, format string) (string, error) {
		return s, nil
	})
}

func TestRegistryCaseInsensitive(t *testing.T) {
	reg := token.NewRegistry()
	reg.Register("FileName", staticFormatter("x"))

	tests := []struct {
		name   string
		wantOK bool
	}{
		{"fileName", true},
		{"filename", true},
		{"FILENAME", true},
		{"FileName", true},
		{"file", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.IsRegistered(tt.name); got != tt.wantOK {
				t.Errorf("IsRegistered(%q) = %v, want %v", tt.name, got, tt.wantOK)
			}
			_, ok := reg.Lookup(tt.name)
			if ok != tt.wantOK {
				t.Errorf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
		})
	}
}

func TestRegisterOverwrites(t *testing.T) {
	reg := token.NewRegistry()
	reg.Register("x", staticFormatter("first"))
	reg.Register("X", staticFormatter("second"))

	f, ok := reg.Lookup("x")
	if !ok {
		t.Fatal("Lookup(x) not found after re-registration")
	}
	got, err := f.Format(context.Background(), token.Substitution{}, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != "second" {
		t.Errorf("after re-registration Format() = %q, want %q", got, "second")
	}

	if n := len(reg.Names()); n != 1 {
		t.Errorf("Names() has %d entries, want 1", n)
	}
}

func TestDefaultRegistryCatalog(t *testing.T) {
	reg := token.DefaultRegistry()

	for _, name := range []string{
		"date",
		"fileName",
		"filePath",
		"folderName",
		"folderPath",
		"originalCopiedFileName",
		"originalCopiedFileExtension",
		"prompt",
		"randomDigit",
		"randomDigitOrLetter",
		"randomLetter",
		"uuid",
	} {
		if !reg.IsRegistered(name) {
			t.Errorf("default registry missing %q", name)
		}
	}
}
