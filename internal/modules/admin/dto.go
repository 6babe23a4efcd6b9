package admin

import (
	"time"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
	"github.com/Jasrah85/vibrant-art-group/internal/pricing"
)

// UpdateRequest carries the only fields an admin may change on a request.
// Everything else on the row is frozen at submission time.
type UpdateRequest struct {
	Status           string  `json:"status" validate:"required,oneof=new needs_clarification approved_quote deposit_requested in_progress ready_for_final completed declined"`
	AssignedArtistID *string `json:"assignedArtistId"`
	AdminNotes       string  `json:"adminNotes"`
}

// SendEmailRequest triggers one templated client email from the detail page.
type SendEmailRequest struct {
	Template string `json:"template" validate:"required,oneof=clarification quote deposit"`
	Message  string `json:"message" validate:"required"`

	// Amounts in cents, used by the quote and deposit templates.
	QuoteCents   *int64 `json:"quoteCents"`
	DepositCents *int64 `json:"depositCents"`
}

// RequestListItem is the trimmed row for the admin queue.
type RequestListItem struct {
	ID                 string               `json:"id"`
	PublicID           string               `json:"publicId"`
	Status             domain.RequestStatus `json:"status"`
	ClientName         string               `json:"clientName"`
	ClientEmail        string               `json:"clientEmail"`
	Medium             string               `json:"medium"`
	SizeTier           string               `json:"sizeTier"`
	Rush               bool                 `json:"rush"`
	ReviewRequired     bool                 `json:"reviewRequired"`
	Total              int64                `json:"total"`
	AssignedArtistID   *string              `json:"assignedArtistId"`
	AssignedArtistName string               `json:"assignedArtistName,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
}

type ListResponse struct {
	Requests []RequestListItem `json:"requests"`
	Total    int               `json:"total"`
}

// RequestDetail is the full request plus resolved artist names.
type RequestDetail struct {
	ID                   string                `json:"id"`
	PublicID             string                `json:"publicId"`
	Status               domain.RequestStatus  `json:"status"`
	RequestedArtistID    *string               `json:"requestedArtistId"`
	RequestedArtistName  string                `json:"requestedArtistName,omitempty"`
	AssignedArtistID     *string               `json:"assignedArtistId"`
	AssignedArtistName   string                `json:"assignedArtistName,omitempty"`
	IsCommunitySupported bool                  `json:"isCommunitySupported"`
	Form                 domain.CommissionForm `json:"form"`
	Pricing              pricing.Estimate      `json:"pricing"`
	ClientName           string                `json:"clientName"`
	ClientEmail          string                `json:"clientEmail"`
	AdminNotes           string                `json:"adminNotes"`
	CreatedAt            time.Time             `json:"createdAt"`
	UpdatedAt            time.Time             `json:"updatedAt"`
}

// UpdateResult reports what an update actually changed. Changes holds the
// event types produced by the diff, in append order; empty means the
// submitted state matched the stored one.
type UpdateResult struct {
	Request *RequestDetail `json:"request"`
	Changes []string       `json:"changes"`
}
