package llm

import "fmt"

// ResumeInput carries the user-entered fields for resume generation.
type ResumeInput struct {
	Name              string
	JobTitle          string
	ExperienceSummary string
	WorkExperience    string
	Education         string
	Certifications    string
	Skills            string
}

// CoverLetterInput carries the fields for cover-letter generation.
type CoverLetterInput struct {
	Name              string
	JobTitle          string
	Company           string
	ExperienceSummary string
	Skills            string
}

// ResumePrompt builds the ATS-optimized resume prompt.
func ResumePrompt(in ResumeInput) string {
	certs := in.Certifications
	if certs == "" {
		certs = "None"
	}
	return fmt.Sprintf(`Create a professional ATS-optimized resume for %s, applying for %s.
- **Professional Summary** (Concise, keyword-rich)
- **Education** (Degrees, Institutions)
- **Work Experience** (2-4 positions with bullet points)
- **Certifications** (If applicable)
- **Skills** (Optimized for ATS parsing)

Experience Summary: %s
Work Experience: %s
Education: %s
Certifications: %s
Skills: %s
`, in.Name, in.JobTitle, in.ExperienceSummary, in.WorkExperience, in.Education, certs, in.Skills)
}

// ATSPrompt builds the ATS compatibility analysis prompt for a generated
// resume body.
func ATSPrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze this resume for ATS (Applicant Tracking System) compatibility.
- Provide an **ATS Score (0-100)**
- Identify **missing critical keywords**
- Suggest **improvements for better ATS ranking**

Resume Text:
%s
`, resumeText)
}

// CoverLetterPrompt builds the personalized cover letter prompt.
func CoverLetterPrompt(in CoverLetterInput) string {
	return fmt.Sprintf(`Write a compelling, ATS-friendly personalized cover letter for %s applying to %s as a %s.

Guidelines:
- Start with a strong **introduction** addressing the hiring manager.
- Highlight **why you're the perfect fit** (using experience & skills).
- End with a **call to action** requesting an interview.
- Keep the tone **professional, confident, and enthusiastic**.

Experience Summary: %s
Skills: %s
`, in.Name, in.Company, in.JobTitle, in.ExperienceSummary, in.Skills)
}
