package render

import "strings"

// Kind classifies one input line for styling.
type Kind int

const (
	// Plain is an unstyled paragraph.
	Plain Kind = iota
	// Heading is a section heading, marked by "**" anywhere in the line.
	Heading
	// Bullet is a bulleted item, marked by a hyphen anywhere in the line.
	Bullet
)

// Line is one classified input line with markers stripped.
type Line struct {
	Kind Kind
	Text string
}

// Classify applies the marker rules to a single line. Rules are checked in
// order with plain substring containment, no look-ahead: a line containing
// both "**" and "-" is always a heading. This mirrors the loose markup the
// generation service emits and is deliberately not a markdown parser.
func Classify(line string) Line {
	switch {
	case strings.Contains(line, "**"):
		return Line{Kind: Heading, Text: strings.ReplaceAll(line, "**", "")}
	case strings.Contains(line, "-"):
		return Line{Kind: Bullet, Text: strings.ReplaceAll(line, "-", "")}
	default:
		return Line{Kind: Plain, Text: line}
	}
}

// ClassifyAll splits text into lines and classifies each independently,
// preserving order. Empty or whitespace-only input is replaced by the fixed
// placeholder line.
func ClassifyAll(text string) []Line {
	if strings.TrimSpace(text) == "" {
		text = PlaceholderText
	}
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, Classify(l))
	}
	return lines
}

// PlaceholderText is substituted when the renderer receives no content.
const PlaceholderText = "No content available."
