package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jasrah85/vibrant-art-group/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListArtists handles GET /api/v1/artists
// @Summary List active artists
// @Tags Catalog
// @Success 200 {object} map[string]interface{}
// @Router /artists [get]
func (h *Handler) ListArtists(c *gin.Context) {
	artists, err := h.service.ListArtists(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list artists")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"artists": artists})
}

// GetArtist handles GET /api/v1/artists/:slug
// @Summary Get one artist by slug
// @Tags Catalog
// @Param slug path string true "Artist slug"
// @Success 200 {object} ArtistView
// @Failure 404 {object} map[string]interface{}
// @Router /artists/{slug} [get]
func (h *Handler) GetArtist(c *gin.Context) {
	artist, err := h.service.GetArtistBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrArtistNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Artist not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load artist")
		return
	}
	response.Success(c, http.StatusOK, artist)
}

// ListGallery handles GET /api/v1/gallery
// @Summary List gallery pieces, newest first
// @Tags Catalog
// @Success 200 {object} map[string]interface{}
// @Router /gallery [get]
func (h *Handler) ListGallery(c *gin.Context) {
	items, err := h.service.ListGallery(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list gallery")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetGalleryItem handles GET /api/v1/gallery/:slug
// @Summary Get one gallery piece by slug
// @Tags Catalog
// @Param slug path string true "Gallery item slug"
// @Success 200 {object} GalleryItemView
// @Failure 404 {object} map[string]interface{}
// @Router /gallery/{slug} [get]
func (h *Handler) GetGalleryItem(c *gin.Context) {
	item, err := h.service.GetGalleryItemBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrGalleryItemNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load gallery item")
		return
	}
	response.Success(c, http.StatusOK, item)
}

// GetPrefill handles GET /api/v1/commission/prefill/:gallerySlug
// @Summary Commission wizard prefill from a gallery piece
// @Description Returns wizard defaults derived from the item, honoring per-item overrides.
// @Tags Catalog
// @Param gallerySlug path string true "Gallery item slug"
// @Success 200 {object} Prefill
// @Failure 404 {object} map[string]interface{}
// @Router /commission/prefill/{gallerySlug} [get]
func (h *Handler) GetPrefill(c *gin.Context) {
	prefill, err := h.service.PrefillFromGallerySlug(c.Request.Context(), c.Param("gallerySlug"))
	if err != nil {
		if errors.Is(err, ErrGalleryItemNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gallery item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build prefill")
		return
	}
	response.Success(c, http.StatusOK, prefill)
}
