package token

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
)

// DefaultDateLayout is used by the date token when no format is given.
const DefaultDateLayout = "2006-01-02"

const (
	digits         = "0123456789"
	letters        = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitsOrLetter = digits + letters
)

// DefaultRegistry returns a registry populated with the standard token
// catalog:
//
//	date                         current local time, format = Go layout
//	fileName, filePath           target name / path from the substitution
//	folderName, folderPath       target folder name / path
//	originalCopiedFileName       base name of the copied file
//	originalCopiedFileExtension  extension of the copied file
//	prompt                       interactive input, default = copied name
//	randomDigit                  one character from 0-9
//	randomDigitOrLetter          one character from 0-9A-Z
//	randomLetter                 one character from A-Z
//	uuid                         a fresh random identifier
func DefaultRegistry() *Registry {
	reg := NewRegistry()

	reg.Register("date", FormatterFunc(func(ctx context.Context, sub Substitution, host Host, format string) (string, error) {
		layout := format
		if layout == "" {
			layout = DefaultDateLayout
		}
		return host.Now().Format(layout), nil
	}))

	reg.Register("fileName", fromSubstitution(func(sub Substitution) string { return sub.FileName }))
	reg.Register("filePath", fromSubstitution(func(sub Substitution) string { return sub.FilePath }))
	reg.Register("folderName", fromSubstitution(func(sub Substitution) string { return sub.FolderName }))
	reg.Register("folderPath", fromSubstitution(func(sub Substitution) string { return sub.FolderPath }))
	reg.Register("originalCopiedFileName", fromSubstitution(func(sub Substitution) string { return sub.OriginalName }))
	reg.Register("originalCopiedFileExtension", fromSubstitution(func(sub Substitution) string { return sub.OriginalExtension }))

	reg.Register("prompt", FormatterFunc(func(ctx context.Context, sub Substitution, host Host, format string) (string, error) {
		title := format
		if title == "" {
			title = "Enter a name"
		}
		return host.Prompt(ctx, title, sub.OriginalName, func(value string) string {
			return ValidateFilename(reg, value, false)
		})
	}))

	reg.Register("randomDigit", randomChar(digits))
	reg.Register("randomDigitOrLetter", randomChar(digitsOrLetter))
	reg.Register("randomLetter", randomChar(letters))

	reg.Register("uuid", FormatterFunc(func(ctx context.Context, sub Substitution, host Host, format string) (string, error) {
		return uuid.NewString(), nil
	}))

	return reg
}

// fromSubstitution builds a formatter that copies one field verbatim.
func fromSubstitution(get func(Substitution) string) Formatter {
	return FormatterFunc(func(ctx context.Context, sub Substitution, host Host, format string) (string, error) {
		return get(sub), nil
	})
}

// randomChar builds a formatter returning one uniformly chosen
// character from alphabet per call.
func randomChar(alphabet string) Formatter {
	return FormatterFunc(func(ctx context.Context, sub Substitution, host Host, format string) (string, error) {
		return string(alphabet[rand.Intn(len(alphabet))]), nil
	})
}
