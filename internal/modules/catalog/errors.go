package catalog

import "errors"

var (
	ErrArtistNotFound      = errors.New("artist not found")
	ErrGalleryItemNotFound = errors.New("gallery item not found")
)
