package commission

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public intake endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/commission", h.Submit)
	rg.POST("/commission/estimate", h.Estimate)
}
