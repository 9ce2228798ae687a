// Package cheat parses .cheat files into snippets.
//
// A cheat file looks like:
//
//	% git, branch
//
//	# Delete a local branch
//	git branch -d <branch>
//
//	$ branch: git branch --format='%(refname:short)'
//
// "%" sets the tags for the snippets that follow, "#" starts a new snippet
// with a description, ";" lines are ignored and "$" lines declare where the
// values for a variable come from. Every other non-blank line is part of the
// current snippet; consecutive lines are joined with newlines.
package cheat

import (
	"regexp"
	"strings"
)

// Cheat is one snippet with its metadata.
type Cheat struct {
	Tags    string
	Comment string
	Snippet string
	File    string
	// Suggestions are the "$" declarations of the file the cheat came from.
	Suggestions map[string]Suggestion
}

// Suggestion describes how to list candidate values for a variable.
type Suggestion struct {
	Command string
	Opts    SuggestionOpts
}

// SuggestionOpts are the options that follow "---" on a "$" line.
type SuggestionOpts struct {
	Column       int
	Delimiter    string
	Multi        bool
	Map          string
	PreventExtra bool
	Header       string
}

var variablePattern = regexp.MustCompile(`<(\w[\w\-]*)>`)

// Variables returns the distinct <variable> names in snippet in order of
// first appearance.
func Variables(snippet string) []string {
	var names []string
	seen := map[string]bool{}
	for _, m := range variablePattern.FindAllStringSubmatch(snippet, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Fill replaces every <variable> that has a value. Unknown variables are kept.
func Fill(snippet string, values map[string]string) string {
	return variablePattern.ReplaceAllStringFunc(snippet, func(m string) string {
		if v, ok := values[m[1:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

// Field separator and newline marker used in finder lines.
const (
	Delimiter = "\t"
	newline   = " ⏎ "
)

// Line renders c as a single finder line: tags, comment and snippet
// separated by Delimiter.
func (c Cheat) Line() string {
	return strings.Join([]string{
		c.Tags,
		c.Comment,
		strings.ReplaceAll(c.Snippet, "\n", newline),
	}, Delimiter)
}

// ParseLine reverses Line. ok is false when line has fewer than three fields.
func ParseLine(line string) (c Cheat, ok bool) {
	parts := strings.SplitN(line, Delimiter, 3)
	if len(parts) != 3 {
		return Cheat{}, false
	}
	return Cheat{
		Tags:    parts[0],
		Comment: parts[1],
		Snippet: strings.ReplaceAll(parts[2], newline, "\n"),
	}, true
}
