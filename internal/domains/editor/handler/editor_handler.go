package handler

import (
	"io"
	"net/http"

	"portfolio-backend/internal/domains/editor"
	"portfolio-backend/internal/domains/portfolio/model"
	"portfolio-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// EditorHandler handles HTTP requests for the edit workflow
type EditorHandler struct {
	service editor.Service
}

// NewEditorHandler creates a new editor handler instance
func NewEditorHandler(service editor.Service) *EditorHandler {
	return &EditorHandler{service: service}
}

// OpenSession handles POST /editor/sessions
func (h *EditorHandler) OpenSession(c *gin.Context) {
	var target editor.Target
	if err := c.ShouldBindJSON(&target); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	view, err := h.service.Open(c.Request.Context(), target)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, view)
}

// GetSession handles GET /editor/sessions/:id
func (h *EditorHandler) GetSession(c *gin.Context) {
	view, err := h.service.Session(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

type setFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// SetField handles PATCH /editor/sessions/:id/fields
func (h *EditorHandler) SetField(c *gin.Context) {
	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	view, err := h.service.SetField(c.Request.Context(), c.Param("id"), req.Field, req.Value)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// AttachImage handles POST /editor/sessions/:id/image
// Multipart form: "field" (target field name) + "file" (the image).
func (h *EditorHandler) AttachImage(c *gin.Context) {
	field := c.PostForm("field")
	if field == "" {
		response.BadRequest(c, "field is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "failed to read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalServerError(c, "failed to read upload")
		return
	}

	view, err := h.service.AttachImage(c.Request.Context(), c.Param("id"), field, data)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

type refineRequest struct {
	Field   string `json:"field" binding:"required"`
	Context string `json:"context"`
}

// RefineField handles POST /editor/sessions/:id/refine
// This blocks for the collaborator round trip; only the one field is busy
// meanwhile, repeat triggers for it are rejected with 409.
func (h *EditorHandler) RefineField(c *gin.Context) {
	var req refineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Refine(c.Request.Context(), c.Param("id"), req.Field, req.Context)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// SaveSession handles POST /editor/sessions/:id/save
func (h *EditorHandler) SaveSession(c *gin.Context) {
	doc, err := h.service.Save(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc)
}

// DeleteItem handles POST /editor/sessions/:id/delete
func (h *EditorHandler) DeleteItem(c *gin.Context) {
	doc, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc)
}

// CancelSession handles DELETE /editor/sessions/:id
func (h *EditorHandler) CancelSession(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// fail maps an error to HTTP. Save/Delete surface portfolio domain errors
// (unknown section, item not found, changes not saved) through the editor.
func (h *EditorHandler) fail(c *gin.Context, err error) {
	statusCode, message, code := editor.GetErrorResponse(err)
	if code == "INTERNAL_ERROR" {
		statusCode, message, code = model.GetErrorResponse(err)
	}
	response.ErrorResponse(c, statusCode, code, message)
}
