package stringutils

import "strings"

// SplitLines splits s on newlines, dropping a trailing newline if present.
// An empty string yields no lines.
func SplitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func Indent(s string, prefix string) string {
	// why is this not in the stdlib????
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
