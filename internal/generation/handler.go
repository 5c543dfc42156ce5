package generation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-builder/internal/server/respond"
	"resume-builder/internal/telemetry"
)

// Handler wires the generation endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.generate)
}

type generateRequest struct {
	Name              string `json:"name"`
	JobTitle          string `json:"job_title"`
	Company           string `json:"company"`
	ExperienceSummary string `json:"experience_summary"`
	WorkExperience    string `json:"work_experience"`
	Education         string `json:"education"`
	Certifications    string `json:"certifications"`
	Skills            string `json:"skills"`
}

type generateResponse struct {
	ResumeText      string   `json:"resume_text"`
	CoverLetterText string   `json:"cover_letter_text"`
	ATSFeedback     string   `json:"ats_feedback"`
	Saved           bool     `json:"saved"`
	SavedResumes    []string `json:"saved_resumes"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	generationID := uuid.NewString()
	telemetry.Info("generation.start", map[string]any{
		"generation_id": generationID,
		"name":          req.Name,
		"job_title":     req.JobTitle,
	})

	result, err := h.Svc.Generate(c.Request.Context(), Input{
		Name:              req.Name,
		JobTitle:          req.JobTitle,
		Company:           req.Company,
		ExperienceSummary: req.ExperienceSummary,
		WorkExperience:    req.WorkExperience,
		Education:         req.Education,
		Certifications:    req.Certifications,
		Skills:            req.Skills,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "generation failed", nil)
		return
	}

	telemetry.Info("generation.complete", map[string]any{
		"generation_id": generationID,
		"saved":         result.Saved,
	})

	respond.OK(c, generateResponse{
		ResumeText:      result.Record.ResumeText,
		CoverLetterText: result.Record.CoverLetterText,
		ATSFeedback:     result.Record.ATSFeedback,
		Saved:           result.Saved,
		SavedResumes:    h.savedNames(c),
	})
}

// savedNames refreshes the history list shown next to a new generation.
// Listing is best-effort here; a failure leaves the list empty.
func (h *Handler) savedNames(c *gin.Context) []string {
	names, err := h.Svc.Records.List(c.Request.Context())
	if err != nil {
		telemetry.Error("records.list.failed", map[string]any{"error": err.Error()})
		return []string{}
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, string(n))
	}
	return out
}
