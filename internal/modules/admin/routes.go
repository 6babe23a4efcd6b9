package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the studio-side endpoints. The caller attaches the
// auth middleware to the group before registering.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/requests", h.ListRequests)
	rg.GET("/requests/:id", h.GetRequest)
	rg.GET("/requests/:id/events", h.GetTimeline)
	rg.PATCH("/requests/:id", h.UpdateRequest)
	rg.POST("/requests/:id/email", h.SendEmail)
}
