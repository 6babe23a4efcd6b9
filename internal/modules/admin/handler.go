package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
	"github.com/Jasrah85/vibrant-art-group/internal/pkg/response"
	"github.com/Jasrah85/vibrant-art-group/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListRequests handles GET /api/v1/admin/requests
// @Summary List commission requests
// @Description Paginated queue, newest-first, optionally filtered by status.
// @Tags Admin
// @Security BearerAuth
// @Param status query string false "Filter by request status"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} ListResponse
// @Router /admin/requests [get]
func (h *Handler) ListRequests(c *gin.Context) {
	var status *domain.RequestStatus
	if raw := c.Query("status"); raw != "" {
		st := domain.RequestStatus(raw)
		status = &st
	}

	limit := parseIntDefault(c.Query("limit"), 20)
	offset := parseIntDefault(c.Query("offset"), 0)

	list, err := h.service.ListRequests(c.Request.Context(), status, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list requests")
		return
	}

	response.Success(c, http.StatusOK, list)
}

// GetRequest handles GET /api/v1/admin/requests/:id
// @Summary Get one commission request
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} RequestDetail
// @Failure 404 {object} map[string]interface{}
// @Router /admin/requests/{id} [get]
func (h *Handler) GetRequest(c *gin.Context) {
	detail, err := h.service.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load request")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// GetTimeline handles GET /api/v1/admin/requests/:id/events
// @Summary Get a request's audit timeline
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param limit query int false "Max entries (default 200)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/requests/{id}/events [get]
func (h *Handler) GetTimeline(c *gin.Context) {
	limit := parseIntDefault(c.Query("limit"), 0)

	events, err := h.service.Timeline(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load timeline")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"events": events})
}

// UpdateRequest handles PATCH /api/v1/admin/requests/:id
// @Summary Update status, assignment and internal notes
// @Description The only mutation path for a request. Returns which fields actually changed.
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body UpdateRequest true "Next state"
// @Success 200 {object} UpdateResult
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /admin/requests/{id} [patch]
func (h *Handler) UpdateRequest(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid payload", errs)
		return
	}

	result, err := h.service.ApplyUpdate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update request")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// SendEmail handles POST /api/v1/admin/requests/:id/email
// @Summary Send a templated email to the request's client
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body SendEmailRequest true "Template and message"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/requests/{id}/email [post]
func (h *Handler) SendEmail(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid payload", errs)
		return
	}

	err := h.service.SendClientEmail(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRequestNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
		case errors.Is(err, ErrEmailSendFailed):
			response.Error(c, http.StatusInternalServerError, "EMAIL_SEND_FAILED", "Email could not be delivered")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to send email")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sent": true, "template": req.Template})
}

func parseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
