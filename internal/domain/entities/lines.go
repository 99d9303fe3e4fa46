package entities

import (
	"regexp"
	"strings"
)

var credentialLinePattern = regexp.MustCompile(`^\s+netrc\s+=\s+.*$`)

// SplitLines splits content on "\n". A trailing newline yields a final empty line.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// StripCredentialLines removes indented `netrc = <value>` assignments and then
// drops every line left empty, including lines that were empty to begin with.
// Whitespace-only lines that did not match are kept.
func StripCredentialLines(lines []string) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = credentialLinePattern.ReplaceAllString(line, "")
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}

// RenameRepository replaces every occurrence of repo with target in each line.
// The match is a plain substring match, so a repo name embedded in a longer
// identifier is replaced too.
func RenameRepository(lines []string, repo, target string) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		if repo == "" {
			result[i] = line
			continue
		}
		result[i] = strings.ReplaceAll(line, repo, target)
	}
	return result
}
