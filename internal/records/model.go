package records

// Record is the full snapshot persisted for one generation request: the
// user-entered fields plus the three generated texts. Records are always
// written whole; there are no partial updates.
type Record struct {
	Name              string `json:"name"`
	JobTitle          string `json:"job_title"`
	Company           string `json:"company"`
	ExperienceSummary string `json:"experience_summary"`
	WorkExperience    string `json:"work_experience"`
	Education         string `json:"education"`
	Certifications    string `json:"certifications,omitempty"`
	Skills            string `json:"skills"`
	ResumeText        string `json:"resume_text"`
	CoverLetterText   string `json:"cover_letter_text"`
	ATSFeedback       string `json:"ats_feedback"`
}
