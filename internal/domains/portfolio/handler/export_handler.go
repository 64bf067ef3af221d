package handler

import (
	"net/http"

	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/render"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves the printable renditions of the portfolio. Export is
// read-only and public, like the page's print button.
type ExportHandler struct {
	service portfolio.Service
	html    *render.HTMLRenderer
	pdf     *render.PDFRenderer
}

// NewExportHandler creates a new export handler instance
func NewExportHandler(service portfolio.Service, html *render.HTMLRenderer, pdf *render.PDFRenderer) *ExportHandler {
	return &ExportHandler{service: service, html: html, pdf: pdf}
}

// ExportHTML handles GET /portfolio/export/html
func (h *ExportHandler) ExportHTML(c *gin.Context) {
	page, err := h.renderPage(c)
	if err != nil {
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// ExportPDF handles GET /portfolio/export/pdf
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	page, err := h.renderPage(c)
	if err != nil {
		return
	}

	pdf, err := h.pdf.RenderHTMLToPDF(c.Request.Context(), page)
	if err != nil {
		response.InternalServerError(c, "PDF export failed")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="portfolio.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// renderPage loads the document and renders the HTML page, writing the
// error response itself on failure.
func (h *ExportHandler) renderPage(c *gin.Context) (string, error) {
	doc, err := h.service.Document(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load portfolio")
		return "", err
	}

	page, err := h.html.Render(doc)
	if err != nil {
		response.InternalServerError(c, "failed to render portfolio")
		return "", err
	}
	return page, nil
}
