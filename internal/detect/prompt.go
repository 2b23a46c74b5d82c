package detect

import (
	"regexp"
	"strings"
)

// promptPatterns match common shell prompts when no shell integration is
// present. First submatch is the command text.
var promptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\w+@[\w-]+:[^$]+\$\s+(.+)$`), // user@host:path$ command
	regexp.MustCompile(`bash-[\d.]+\$\s+(.+)$`),      // bash-5.1$ command
	regexp.MustCompile(`\]\$\s+(.+)$`),               // ]$ command
	regexp.MustCompile(`^\$\s+(.+)$`),                // $ command
	regexp.MustCompile(`^#\s+(.+)$`),                 // # command (root)
	regexp.MustCompile(`^>\s+(.+)$`),                 // > command
	regexp.MustCompile(`^❯\s+(.+)$`),                 // ❯ command
}

// matchPrompt extracts a command from a prompt-looking line.
func matchPrompt(line string) (string, bool) {
	s := strings.TrimRight(line, " \t")
	if s == "" {
		return "", false
	}
	for _, re := range promptPatterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// trimPrompt strips a leading prompt from a captured command line, leaving
// the text as typed when no pattern matches.
func trimPrompt(line string) string {
	for _, re := range promptPatterns {
		if m := re.FindStringSubmatch(strings.TrimRight(line, " \t")); m != nil {
			return m[1]
		}
	}
	return line
}
