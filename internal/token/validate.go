package token

import (
	"fmt"
	"regexp"
	"strings"
)

// reservedNameChars are the characters that break paths on at least one
// supported platform and are therefore rejected in any name segment.
const reservedNameChars = `\/:*?"<>|`

var onlyDotsRe = regexp.MustCompile(`^\.{3,}$`)

// NormalizeTokens rewrites every ${name:format} placeholder in s to its
// bare ${name} form, dropping the format specifier. Text without token
// syntax is returned unchanged.
func NormalizeTokens(s string) string {
	return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		return "${" + name + "}"
	})
}

// ValidateFilename checks a single name segment and returns the reason
// it is invalid, or "" when it is valid.
//
// With allowTokens set, token placeholders are normalized away before
// the character rules run, and every referenced token name must be
// registered in reg. Without it, any token-like syntax is itself an
// error. "." and ".." pass through as reserved relative names.
func ValidateFilename(reg *Registry, name string, allowTokens bool) string {
	if allowTokens {
		if reason := validateTokenNames(reg, name); reason != "" {
			return reason
		}
		name = NormalizeTokens(name)
	} else if placeholderRe.MatchString(name) {
		return "tokens are not allowed here"
	}

	if name == "." || name == ".." {
		return ""
	}
	if name == "" {
		return "name is empty"
	}
	if strings.ContainsAny(name, reservedNameChars) {
		return fmt.Sprintf("name contains a reserved character (%s)", reservedNameChars)
	}
	if onlyDotsRe.MatchString(name) {
		return "name consists only of dots"
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return "name ends with a dot or space"
	}

	return ""
}

// ValidatePath checks a full vault path and returns the reason it is
// invalid, or "" when it is valid. Leading and trailing separators are
// ignored; an empty path is valid. Each segment is checked with
// ValidateFilename (tokens allowed), returning the first failure.
func ValidatePath(reg *Registry, path string) string {
	if reason := validateTokenNames(reg, path); reason != "" {
		return reason
	}
	path = NormalizeTokens(path)

	path = strings.Trim(path, "/")
	if path == "" {
		return ""
	}

	for _, segment := range strings.Split(path, "/") {
		if reason := ValidateFilename(reg, segment, true); reason != "" {
			return reason
		}
	}
	return ""
}

// validateTokenNames checks that every token referenced in s is
// registered, returning a reason naming the first unknown token.
func validateTokenNames(reg *Registry, s string) string {
	for _, m := range placeholderRe.FindAllStringSubmatch(s, -1) {
		if !reg.IsRegistered(m[1]) {
			return fmt.Sprintf("unknown token: %s", m[1])
		}
	}
	return ""
}
