package commission

import "github.com/Jasrah85/vibrant-art-group/internal/pricing"

// SubmitRequest is the commission wizard payload. The oneof tags are the
// contract boundary for the pricing engine: nothing past validation may
// carry an unknown enum value.
type SubmitRequest struct {
	ClientName  string `json:"clientName" validate:"required"`
	ClientEmail string `json:"clientEmail" validate:"required,email"`

	RequestedArtistID    *string `json:"requestedArtistId"`
	IsCommunitySupported bool    `json:"isCommunitySupported"`

	// Pricing inputs
	Medium          string `json:"medium" validate:"required,oneof=acrylic watercolor graphite charcoal colored_pencil clay_small wood_small metal_small 3d_print_existing 3d_design_print sublimation_design sublimation_printed_sheet heat_transfer_finished_item mural custom_shoes_clothing mailbox_paint bottle_art"`
	SizeTier        string `json:"sizeTier" validate:"required,oneof=XS S M L XL XXL"`
	DetailLevel     string `json:"detailLevel" validate:"required,oneof=MINIMAL MODERATE DETAILED HIGH PHOTO"`
	BackgroundLevel string `json:"backgroundLevel" validate:"required,oneof=NONE ABSTRACT SIMPLE FULL COMPLEX"`
	Rush            bool   `json:"rush"`

	// Freeform details
	Subject string `json:"subject"`
	Notes   string `json:"notes"`
}

type SubmitResponse struct {
	ID       string           `json:"id"`
	PublicID string           `json:"publicId"`
	Estimate pricing.Estimate `json:"estimate"`
}

// EstimateRequest powers the wizard's live price preview; same enum
// boundary as SubmitRequest, no client data.
type EstimateRequest struct {
	Medium          string `json:"medium" validate:"required,oneof=acrylic watercolor graphite charcoal colored_pencil clay_small wood_small metal_small 3d_print_existing 3d_design_print sublimation_design sublimation_printed_sheet heat_transfer_finished_item mural custom_shoes_clothing mailbox_paint bottle_art"`
	SizeTier        string `json:"sizeTier" validate:"required,oneof=XS S M L XL XXL"`
	DetailLevel     string `json:"detailLevel" validate:"required,oneof=MINIMAL MODERATE DETAILED HIGH PHOTO"`
	BackgroundLevel string `json:"backgroundLevel" validate:"required,oneof=NONE ABSTRACT SIMPLE FULL COMPLEX"`
	Rush            bool   `json:"rush"`
}

func (r *EstimateRequest) toInput() pricing.Input {
	return pricing.Input{
		Medium:          pricing.Medium(r.Medium),
		SizeTier:        pricing.SizeTier(r.SizeTier),
		DetailLevel:     pricing.DetailLevel(r.DetailLevel),
		BackgroundLevel: pricing.BackgroundLevel(r.BackgroundLevel),
		Rush:            r.Rush,
	}
}
