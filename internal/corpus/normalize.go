package corpus

import "strings"

const tabWidth = 4

// Normalize prepares a stored sample for typing. Leading and trailing
// newlines are trimmed, tabs become spaces and trailing blanks on each line
// are dropped, since neither can be typed against visibly.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.Trim(text, "\n")
	if !strings.ContainsAny(text, "\t \r") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
		lines[i] = strings.TrimRight(line, " \r")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// NormalizeAll normalizes samples and drops those that end up empty.
func NormalizeAll(samples []string) []string {
	out := make([]string, 0, len(samples))
	for _, s := range samples {
		if s = Normalize(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
