package catalog

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/artists", h.ListArtists)
	rg.GET("/artists/:slug", h.GetArtist)
	rg.GET("/gallery", h.ListGallery)
	rg.GET("/gallery/:slug", h.GetGalleryItem)
	rg.GET("/commission/prefill/:gallerySlug", h.GetPrefill)
}
