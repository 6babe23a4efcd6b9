package commission

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jasrah85/vibrant-art-group/internal/pkg/response"
	"github.com/Jasrah85/vibrant-art-group/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /api/v1/commission (public)
// @Summary Submit a commission request
// @Description Public endpoint for the commission wizard. Computes a server-authoritative estimate, stores the request and notifies the studio.
// @Tags Commission
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Wizard answers"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /commission [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid payload", errs)
		return
	}

	r, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit request")
		return
	}

	response.Success(c, http.StatusCreated, SubmitResponse{
		ID:       r.ID,
		PublicID: r.PublicID,
		Estimate: r.Pricing,
	})
}

// Estimate handles POST /api/v1/commission/estimate (public)
// @Summary Preview a price estimate
// @Description Live estimate for the wizard; nothing is stored.
// @Tags Commission
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Pricing inputs"
// @Success 200 {object} pricing.Estimate
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /commission/estimate [post]
func (h *Handler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid payload", errs)
		return
	}

	response.Success(c, http.StatusOK, h.service.Estimate(&req))
}
