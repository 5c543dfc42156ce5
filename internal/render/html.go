package render

import (
	"html"
	"strings"
)

// documentTitle is emitted once at the top of every rendered document.
const documentTitle = "Resume"

// BuildHTML converts classified lines into the print-ready HTML page the
// engine turns into a PDF. Styling approximates a plain ATS-friendly
// document: a centered title, spaced bold section headings, bullet glyphs,
// unstyled body paragraphs.
func BuildHTML(lines []Line) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: letter; margin: 1in; }
  body { font-family: Helvetica, Arial, sans-serif; font-size: 10pt; margin: 0; }
  h1 { font-size: 18pt; text-align: center; margin: 0 0 0.2in 0; }
  h2 { font-size: 14pt; margin: 0.2in 0 0 0; }
  p { margin: 2pt 0; }
</style>
</head>
<body>
`)
	b.WriteString("<h1>" + documentTitle + "</h1>\n")

	for _, line := range lines {
		text := html.EscapeString(line.Text)
		switch line.Kind {
		case Heading:
			b.WriteString("<h2>" + text + "</h2>\n")
		case Bullet:
			b.WriteString("<p>• " + text + "</p>\n")
		default:
			b.WriteString("<p>" + text + "</p>\n")
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
