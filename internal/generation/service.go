package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-builder/internal/llm"
	"resume-builder/internal/records"
	"resume-builder/internal/telemetry"
)

// ErrInvalidInput marks a request missing required fields.
var ErrInvalidInput = errors.New("missing required fields")

// Fixed degraded-content placeholders. A provider failure never aborts the
// flow; the affected section carries one of these instead.
const (
	resumePlaceholder      = "Unable to generate resume due to an error."
	atsPlaceholder         = "Unable to analyze ATS compatibility."
	coverLetterPlaceholder = "Unable to generate cover letter due to an error."
)

// Input carries the user-entered career details for one generation request.
type Input struct {
	Name              string
	JobTitle          string
	Company           string
	ExperienceSummary string
	WorkExperience    string
	Education         string
	Certifications    string
	Skills            string
}

// Result is the outcome of a generation request. Saved is false when the
// record could not be persisted; the generated content is still returned.
type Result struct {
	Record records.Record
	Saved  bool
}

// Service orchestrates the three generations and the best-effort save.
type Service struct {
	LLM     llm.Generator
	Records records.Store
}

// Generate validates the input, produces the resume, ATS feedback, and
// cover letter (each degrading to a placeholder on provider failure),
// converts the feedback markdown to HTML, and saves the assembled record.
func (s *Service) Generate(ctx context.Context, in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	resumeText := s.generate(ctx, "resume", llm.ResumePrompt(llm.ResumeInput{
		Name:              in.Name,
		JobTitle:          in.JobTitle,
		ExperienceSummary: in.ExperienceSummary,
		WorkExperience:    in.WorkExperience,
		Education:         in.Education,
		Certifications:    in.Certifications,
		Skills:            in.Skills,
	}), resumePlaceholder)

	atsFeedback := s.generate(ctx, "ats_feedback", llm.ATSPrompt(resumeText), atsPlaceholder)

	coverLetter := s.generate(ctx, "cover_letter", llm.CoverLetterPrompt(llm.CoverLetterInput{
		Name:              in.Name,
		JobTitle:          in.JobTitle,
		Company:           in.Company,
		ExperienceSummary: in.ExperienceSummary,
		Skills:            in.Skills,
	}), coverLetterPlaceholder)

	rec := records.Record{
		Name:              in.Name,
		JobTitle:          in.JobTitle,
		Company:           in.Company,
		ExperienceSummary: in.ExperienceSummary,
		WorkExperience:    in.WorkExperience,
		Education:         in.Education,
		Certifications:    in.Certifications,
		Skills:            in.Skills,
		ResumeText:        resumeText,
		CoverLetterText:   coverLetter,
		ATSFeedback:       markdownToHTML(atsFeedback),
	}

	saved := true
	if err := s.Records.Save(ctx, records.Name(in.Name), rec); err != nil {
		telemetry.Error("records.save.failed", map[string]any{
			"name":  in.Name,
			"error": err.Error(),
		})
		saved = false
	}

	return Result{Record: rec, Saved: saved}, nil
}

func (s *Service) generate(ctx context.Context, task, prompt, placeholder string) string {
	text, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		telemetry.Error("llm.generate.failed", map[string]any{
			"task":  task,
			"error": err.Error(),
		})
		return placeholder
	}
	return text
}

func validate(in Input) error {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"job_title", in.JobTitle},
		{"company", in.Company},
		{"experience_summary", in.ExperienceSummary},
		{"work_experience", in.WorkExperience},
		{"education", in.Education},
		{"skills", in.Skills},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
