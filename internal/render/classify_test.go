package render

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind Kind
		text string
	}{
		{name: "heading", line: "**Professional Summary**", kind: Heading, text: "Professional Summary"},
		{name: "heading marker mid-line", line: "See **this** part", kind: Heading, text: "See this part"},
		{name: "bullet", line: "- Skill: Python", kind: Bullet, text: " Skill: Python"},
		{name: "bullet hyphen mid-line", line: "Built CI-CD pipelines", kind: Bullet, text: "Built CICD pipelines"},
		{name: "plain", line: "Atlanta, GA", kind: Plain, text: "Atlanta, GA"},
		{name: "empty line stays plain", line: "", kind: Plain, text: ""},
		{name: "heading beats bullet", line: "**Bold-Section**", kind: Heading, text: "Bold-Section"},
		{name: "single asterisk is not a heading", line: "*emphasis*", kind: Plain, text: "*emphasis*"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line)
			if got.Kind != tt.kind {
				t.Fatalf("Classify(%q).Kind = %v, want %v", tt.line, got.Kind, tt.kind)
			}
			if got.Text != tt.text {
				t.Fatalf("Classify(%q).Text = %q, want %q", tt.line, got.Text, tt.text)
			}
		})
	}
}

func TestClassifyAllEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\n"} {
		lines := ClassifyAll(input)
		if len(lines) != 1 {
			t.Fatalf("ClassifyAll(%q) returned %d lines", input, len(lines))
		}
		if lines[0].Text != PlaceholderText {
			t.Fatalf("ClassifyAll(%q) = %q, want placeholder", input, lines[0].Text)
		}
	}
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	lines := ClassifyAll("**Skills**\n- Go\nplain closing line")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].Kind != Heading || lines[1].Kind != Bullet || lines[2].Kind != Plain {
		t.Fatalf("unexpected kinds: %+v", lines)
	}
}
