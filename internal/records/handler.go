package records

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/render"
	"resume-builder/internal/server/respond"
)

// Handler serves the saved-resume history and the PDF download.
type Handler struct {
	Store    Store
	Renderer *render.Renderer
	// PDFDir is where rendered documents are written before download.
	PDFDir string
}

// NewHandler constructs a Handler.
func NewHandler(store Store, renderer *render.Renderer, pdfDir string) *Handler {
	return &Handler{Store: store, Renderer: renderer, PDFDir: pdfDir}
}

// RegisterRoutes attaches record routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:name", h.get)
	rg.GET("/resumes/:name/download", h.download)
}

type recordResponse struct {
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

func toResponse(rec Record) recordResponse {
	return recordResponse(rec)
}

func (h *Handler) list(c *gin.Context) {
	names, err := h.Store.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list resumes", nil)
		return
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, string(n))
	}
	respond.OK(c, gin.H{"resumes": out})
}

func (h *Handler) get(c *gin.Context) {
	name := Name(c.Param("name"))
	rec, err := h.Store.Load(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load resume", nil)
		return
	}
	respond.OK(c, toResponse(rec))
}

// download renders the stored resume text to a PDF next to the record and
// streams it as an attachment. The record lookup distinguishes not-found
// loudly; the render step fails loudly too.
func (h *Handler) download(c *gin.Context) {
	name := Name(c.Param("name"))
	rec, err := h.Store.Load(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load resume", nil)
		return
	}

	fileName := name.Key() + "_resume.pdf"
	destPath := filepath.Join(h.PDFDir, fileName)
	if err := h.Renderer.Render(c.Request.Context(), rec.ResumeText, destPath); err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_error", "failed to render resume", nil)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(destPath, fileName)
}
