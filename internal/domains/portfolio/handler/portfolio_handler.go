package handler

import (
	"net/http"

	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/internal/domains/portfolio/model"
	"portfolio-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PortfolioHandler handles HTTP requests for the portfolio document
type PortfolioHandler struct {
	service portfolio.Service
}

// NewPortfolioHandler creates a new portfolio handler instance
func NewPortfolioHandler(service portfolio.Service) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// GetPortfolio handles GET /portfolio
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	doc, err := h.service.Document(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc)
}

// GetSection handles GET /portfolio/sections/:name
func (h *PortfolioHandler) GetSection(c *gin.Context) {
	view, err := h.service.SectionView(c.Request.Context(), model.SectionName(c.Param("name")))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// UpdateProfile handles PUT /portfolio/profile (owner only)
// Wholesale replace; no field validation.
func (h *PortfolioHandler) UpdateProfile(c *gin.Context) {
	var profile model.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	doc, err := h.service.SetProfile(c.Request.Context(), profile)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc)
}

type skillsSummaryRequest struct {
	Summary string `json:"summary"`
}

// UpdateSkillsSummary handles PUT /portfolio/skills-summary (owner only)
func (h *PortfolioHandler) UpdateSkillsSummary(c *gin.Context) {
	var req skillsSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	doc, err := h.service.SetSkillsSummary(c.Request.Context(), req.Summary)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc)
}

// UpsertItem handles PUT /portfolio/sections/:name/items (owner only)
// Body is the item's field map; an empty/missing id means insert with a
// freshly generated one, a matching id replaces in place.
func (h *PortfolioHandler) UpsertItem(c *gin.Context) {
	section := model.SectionName(c.Param("name"))

	schema, err := model.SchemaFor(section)
	if err != nil {
		h.fail(c, err)
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	id, _ := fields["id"].(string)
	if id == "" {
		id = uuid.NewString()
	}

	doc, err := h.service.Upsert(c.Request.Context(), section, schema.DecodeItem(id, fields))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc)
}

// DeleteItem handles DELETE /portfolio/sections/:name/items/:id (owner only)
// A no-op when the id is absent, mirroring the store contract.
func (h *PortfolioHandler) DeleteItem(c *gin.Context) {
	doc, err := h.service.Remove(c.Request.Context(), model.SectionName(c.Param("name")), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc)
}

func (h *PortfolioHandler) fail(c *gin.Context, err error) {
	statusCode, message, code := model.GetErrorResponse(err)
	response.ErrorResponse(c, statusCode, code, message)
}
