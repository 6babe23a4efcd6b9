package commission

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
	"github.com/Jasrah85/vibrant-art-group/internal/pkg/besteffort"
)

// notesPreviewLen bounds the audit payload: the full text already lives on
// the request row, the event only carries enough to read the diff.
const notesPreviewLen = 160

// PendingEvent is a timeline entry that has been computed but not yet
// persisted. Producing one has no side effects.
type PendingEvent struct {
	Type    string
	Actor   domain.EventActor
	Summary string
	Payload map[string]any
}

// RequestState is the admin-mutable slice of a request used for diffing.
// It must be read once per operation, not re-read between checks.
type RequestState struct {
	Status           domain.RequestStatus
	AssignedArtistID *string
	AdminNotes       string
}

// DiffAdminUpdate compares a stored state against an admin's proposed next
// state and returns one event per meaningful change, in fixed order:
// status, then assignment, then notes. No change means an empty slice.
func DiffAdminUpdate(current, next RequestState) []PendingEvent {
	var events []PendingEvent

	if current.Status != next.Status {
		events = append(events, PendingEvent{
			Type:    domain.EventStatusChanged,
			Actor:   domain.ActorAdmin,
			Summary: fmt.Sprintf("Status changed: %s → %s", current.Status, next.Status),
			Payload: map[string]any{
				"from": string(current.Status),
				"to":   string(next.Status),
			},
		})
	}

	if !sameArtist(current.AssignedArtistID, next.AssignedArtistID) {
		// The summary only says assigned/unassigned: names are resolved at
		// display time, so the log survives artist renames.
		events = append(events, PendingEvent{
			Type:    domain.EventAssignmentChanged,
			Actor:   domain.ActorAdmin,
			Summary: fmt.Sprintf("Assignment changed: %s → %s", assignmentLabel(current.AssignedArtistID), assignmentLabel(next.AssignedArtistID)),
			Payload: map[string]any{
				"from": artistIDValue(current.AssignedArtistID),
				"to":   artistIDValue(next.AssignedArtistID),
			},
		})
	}

	prevNotes := strings.TrimSpace(current.AdminNotes)
	nextNotes := strings.TrimSpace(next.AdminNotes)
	if prevNotes != nextNotes {
		events = append(events, PendingEvent{
			Type:    domain.EventAdminNotesUpdated,
			Actor:   domain.ActorAdmin,
			Summary: "Internal notes updated",
			Payload: map[string]any{
				"previousLength":  len([]rune(prevNotes)),
				"nextLength":      len([]rune(nextNotes)),
				"previousPreview": preview(prevNotes),
				"nextPreview":     preview(nextNotes),
			},
		})
	}

	return events
}

// NewCreationEvent records the intake of a fresh request. The payload holds
// the key form fields, not the whole wizard snapshot.
func NewCreationEvent(r *domain.CommissionRequest) PendingEvent {
	return PendingEvent{
		Type:    domain.EventRequestCreated,
		Actor:   domain.ActorClient,
		Summary: fmt.Sprintf("Request submitted by %s", r.ClientName),
		Payload: map[string]any{
			"publicId":             r.PublicID,
			"clientEmail":          r.ClientEmail,
			"medium":               r.Form.Medium,
			"sizeTier":             r.Form.SizeTier,
			"detailLevel":          r.Form.DetailLevel,
			"backgroundLevel":      r.Form.BackgroundLevel,
			"rush":                 r.Form.Rush,
			"requestedArtistId":    artistIDValue(r.Form.RequestedArtistID),
			"isCommunitySupported": r.Form.IsCommunitySupported,
		},
	}
}

// NewEmailOutcome records exactly one event per send attempt, success or
// not. The failure payload carries enough to diagnose without resending.
func NewEmailOutcome(template string, to string, actor domain.EventActor, subject string, sendErr error) PendingEvent {
	payload := map[string]any{
		"template": template,
		"provider": "smtp",
		"to":       to,
		"subject":  subject,
	}

	if sendErr != nil {
		payload["message"] = sendErr.Error()
		return PendingEvent{
			Type:    domain.EventEmailFailed,
			Actor:   actor,
			Summary: emailSummary(template, actor, false),
			Payload: payload,
		}
	}

	return PendingEvent{
		Type:    domain.EventEmailSent,
		Actor:   actor,
		Summary: emailSummary(template, actor, true),
		Payload: payload,
	}
}

func emailSummary(template string, actor domain.EventActor, sent bool) string {
	if actor == domain.ActorSystem {
		if sent {
			return "Admin notification email sent"
		}
		return "Admin notification email failed"
	}
	if sent {
		return fmt.Sprintf("Client email sent: %s", template)
	}
	return fmt.Sprintf("Client email failed: %s", template)
}

func sameArtist(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func assignmentLabel(id *string) string {
	if id == nil {
		return "unassigned"
	}
	return "assigned"
}

func artistIDValue(id *string) any {
	if id == nil {
		return nil
	}
	return *id
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) > notesPreviewLen {
		return string(runes[:notesPreviewLen])
	}
	return s
}

// EventRepository is the append-only store behind the timeline.
type EventRepository interface {
	Append(ctx context.Context, e *domain.CommissionEvent) error
}

// EventSink receives events that were successfully appended, e.g. the
// websocket feed on the admin detail page. May be nil.
type EventSink interface {
	EventAppended(e domain.CommissionEvent)
}

// EventLog materializes PendingEvents into stored CommissionEvents.
// Appends are best-effort: a failed write is logged and swallowed, it never
// fails the operation that produced the event.
type EventLog struct {
	repo  EventRepository
	sink  EventSink
	now   func() time.Time
	newID func() string
}

func NewEventLog(repo EventRepository, sink EventSink) *EventLog {
	return &EventLog{
		repo:  repo,
		sink:  sink,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Append persists one pending event against a request.
func (l *EventLog) Append(ctx context.Context, requestID string, pe PendingEvent) {
	besteffort.Run("append_event_"+pe.Type, func() error {
		e := domain.CommissionEvent{
			ID:        l.newID(),
			RequestID: requestID,
			Type:      pe.Type,
			Actor:     pe.Actor,
			Summary:   pe.Summary,
			Data:      pe.Payload,
			CreatedAt: l.now(),
		}
		if err := l.repo.Append(ctx, &e); err != nil {
			return err
		}
		if l.sink != nil {
			l.sink.EventAppended(e)
		}
		return nil
	})
}

// AppendAll persists pending events in the order given.
func (l *EventLog) AppendAll(ctx context.Context, requestID string, events []PendingEvent) {
	for _, pe := range events {
		l.Append(ctx, requestID, pe)
	}
}
