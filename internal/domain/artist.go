package domain

import "time"

type AvailabilityStatus string

const (
	AvailabilityOpen    AvailabilityStatus = "open"
	AvailabilityLimited AvailabilityStatus = "limited"
	AvailabilityClosed  AvailabilityStatus = "closed"
)

type Artist struct {
	ID                    string             `json:"id"`
	Slug                  string             `json:"slug"`
	DisplayName           string             `json:"display_name"`
	BioShort              string             `json:"bio_short"`
	BioLong               *string            `json:"bio_long,omitempty"`
	IsActive              bool               `json:"is_active"`
	AvailabilityStatus    AvailabilityStatus `json:"availability_status"`
	AcceptsRush           bool               `json:"accepts_rush"`
	CommunitySlotsEnabled bool               `json:"community_slots_enabled"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}
