package llm

import (
	"strings"
	"testing"
)

func TestResumePrompt(t *testing.T) {
	prompt := ResumePrompt(ResumeInput{
		Name:              "Jane Doe",
		JobTitle:          "Backend Engineer",
		ExperienceSummary: "8 years",
		WorkExperience:    "Acme",
		Education:         "BSc",
		Skills:            "Go",
	})
	for _, want := range []string{"Jane Doe", "Backend Engineer", "ATS-optimized", "Certifications: None"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("resume prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestResumePromptKeepsCertifications(t *testing.T) {
	prompt := ResumePrompt(ResumeInput{Name: "Jane", Certifications: "CKA"})
	if !strings.Contains(prompt, "Certifications: CKA") {
		t.Fatalf("expected certifications to pass through:\n%s", prompt)
	}
}

func TestATSPromptEmbedsResume(t *testing.T) {
	prompt := ATSPrompt("**Summary**\n- Go")
	if !strings.Contains(prompt, "ATS Score (0-100)") {
		t.Fatalf("ats prompt missing score request:\n%s", prompt)
	}
	if !strings.Contains(prompt, "**Summary**\n- Go") {
		t.Fatalf("ats prompt missing resume body:\n%s", prompt)
	}
}

func TestCoverLetterPromptOrdersCompanyAndRole(t *testing.T) {
	prompt := CoverLetterPrompt(CoverLetterInput{
		Name:     "Jane Doe",
		JobTitle: "Backend Engineer",
		Company:  "Acme",
	})
	if !strings.Contains(prompt, "applying to Acme as a Backend Engineer") {
		t.Fatalf("cover letter prompt misordered:\n%s", prompt)
	}
}
