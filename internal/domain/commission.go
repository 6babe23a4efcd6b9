package domain

import (
	"time"

	"github.com/Jasrah85/vibrant-art-group/internal/pricing"
)

type RequestStatus string

const (
	StatusNew                RequestStatus = "new"
	StatusNeedsClarification RequestStatus = "needs_clarification"
	StatusApprovedQuote      RequestStatus = "approved_quote"
	StatusDepositRequested   RequestStatus = "deposit_requested"
	StatusInProgress         RequestStatus = "in_progress"
	StatusReadyForFinal      RequestStatus = "ready_for_final"
	StatusCompleted          RequestStatus = "completed"
	StatusDeclined           RequestStatus = "declined"
)

// EventActor identifies who caused a timeline entry.
type EventActor string

const (
	ActorSystem EventActor = "system"
	ActorAdmin  EventActor = "admin"
	ActorClient EventActor = "client"
)

// Event type tags. Payload shape is convention per tag, not schema-enforced.
const (
	EventRequestCreated    = "request_created"
	EventStatusChanged     = "status_changed"
	EventAssignmentChanged = "assignment_changed"
	EventAdminNotesUpdated = "admin_notes_updated"
	EventEmailSent         = "email_sent"
	EventEmailFailed       = "email_failed"
)

// CommissionForm is the wizard answer snapshot captured at submission time.
// Immutable after creation: it records what was asked for, not current state.
type CommissionForm struct {
	RequestedArtistID    *string `json:"requestedArtistId"`
	IsCommunitySupported bool    `json:"isCommunitySupported"`
	Medium               string  `json:"medium"`
	SizeTier             string  `json:"sizeTier"`
	DetailLevel          string  `json:"detailLevel"`
	BackgroundLevel      string  `json:"backgroundLevel"`
	Rush                 bool    `json:"rush"`
	Subject              string  `json:"subject"`
	Notes                string  `json:"notes"`
}

// CommissionRequest is one client submission. Created once by intake;
// only status, assignment, admin notes and updated_at change afterwards.
type CommissionRequest struct {
	ID                   string            `json:"id"`
	PublicID             string            `json:"public_id"`
	Status               RequestStatus     `json:"status"`
	RequestedArtistID    *string           `json:"requested_artist_id,omitempty"`
	AssignedArtistID     *string           `json:"assigned_artist_id,omitempty"`
	IsCommunitySupported bool              `json:"is_community_supported"`
	Form                 CommissionForm    `json:"form"`
	Pricing              pricing.Estimate  `json:"pricing"`
	ClientName           string            `json:"client_name"`
	ClientEmail          string            `json:"client_email"`
	AdminNotes           string            `json:"admin_notes"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

// CommissionEvent is one append-only audit entry tied to a request.
type CommissionEvent struct {
	ID        string         `json:"id"`
	RequestID string         `json:"request_id"`
	Type      string         `json:"type"`
	Actor     EventActor     `json:"actor"`
	Summary   string         `json:"summary"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
