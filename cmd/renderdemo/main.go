package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"resume-builder/internal/extract"
	"resume-builder/internal/render"
)

const sampleResume = `**Professional Summary**
Backend engineer with 8+ years building resilient APIs and data services.

**Work Experience**
- Led migration of a monolith to services handling 40k rps
- Cut p99 latency from 900ms to 120ms

**Education**
BSc Computer Science, Georgia Tech

**Skills**
Go, PostgreSQL, AWS, Kubernetes`

func main() {
	outPath := flag.String("out", "./out/sample_resume.pdf", "output path for generated PDF")
	flag.Parse()

	renderer := render.NewRenderer(render.NewChromeEngine(os.Getenv("CHROME_PATH")))

	if err := renderer.Render(context.Background(), sampleResume, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := validateRenderedPDF(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func validateRenderedPDF(path string) error {
	text, err := extract.TextFromPDFFile(path)
	if err != nil {
		return err
	}
	for _, want := range []string{"Resume", "Professional Summary", "Skills"} {
		if !strings.Contains(text, want) {
			return fmt.Errorf("rendered pdf missing %q", want)
		}
	}
	return nil
}
