package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
	"github.com/Jasrah85/vibrant-art-group/internal/email"
	"github.com/Jasrah85/vibrant-art-group/internal/modules/commission"
)

// Service is the studio-side workflow over commission requests: queue,
// detail, timeline, the mutation flow and templated client emails.
type Service struct {
	requests RequestRepository
	timeline TimelineRepository
	artists  ArtistDirectory
	log      *commission.EventLog
	mailer   email.Sender

	now func() time.Time
}

func NewService(requests RequestRepository, timeline TimelineRepository, artists ArtistDirectory, log *commission.EventLog, mailer email.Sender) *Service {
	return &Service{
		requests: requests,
		timeline: timeline,
		artists:  artists,
		log:      log,
		mailer:   mailer,
		now:      time.Now,
	}
}

// ListRequests returns a page of the queue, newest-first, optionally
// filtered by status. Artist names are resolved per page.
func (s *Service) ListRequests(ctx context.Context, status *domain.RequestStatus, limit, offset int) (*ListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	requests, total, err := s.requests.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, r := range requests {
		if r.AssignedArtistID != nil {
			ids = append(ids, *r.AssignedArtistID)
		}
	}
	names, err := s.artistNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]RequestListItem, 0, len(requests))
	for _, r := range requests {
		item := RequestListItem{
			ID:               r.ID,
			PublicID:         r.PublicID,
			Status:           r.Status,
			ClientName:       r.ClientName,
			ClientEmail:      r.ClientEmail,
			Medium:           r.Form.Medium,
			SizeTier:         r.Form.SizeTier,
			Rush:             r.Form.Rush,
			ReviewRequired:   r.Pricing.ReviewRequired,
			Total:            r.Pricing.Total,
			AssignedArtistID: r.AssignedArtistID,
			CreatedAt:        r.CreatedAt,
		}
		if r.AssignedArtistID != nil {
			item.AssignedArtistName = names[*r.AssignedArtistID]
		}
		items = append(items, item)
	}

	return &ListResponse{Requests: items, Total: total}, nil
}

// GetRequest returns a single request with artist names resolved.
func (s *Service) GetRequest(ctx context.Context, id string) (*RequestDetail, error) {
	r, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRequestNotFound
	}
	return s.toDetail(ctx, r)
}

// Timeline returns a request's audit log, newest-first.
func (s *Service) Timeline(ctx context.Context, id string, limit int) ([]domain.CommissionEvent, error) {
	r, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRequestNotFound
	}
	return s.timeline.ListByRequest(ctx, id, limit)
}

// ApplyUpdate is the one mutation path for a request. The stored state is
// read once, diffed against the submitted state, and the row update is the
// operation of record: if it fails, no events are written and the error
// surfaces. Event appends afterwards are best-effort.
func (s *Service) ApplyUpdate(ctx context.Context, id string, req UpdateRequest) (*UpdateResult, error) {
	r, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRequestNotFound
	}

	current := commission.RequestState{
		Status:           r.Status,
		AssignedArtistID: r.AssignedArtistID,
		AdminNotes:       r.AdminNotes,
	}
	next := commission.RequestState{
		Status:           domain.RequestStatus(req.Status),
		AssignedArtistID: req.AssignedArtistID,
		AdminNotes:       req.AdminNotes,
	}

	pending := commission.DiffAdminUpdate(current, next)
	if len(pending) == 0 {
		detail, err := s.toDetail(ctx, r)
		if err != nil {
			return nil, err
		}
		return &UpdateResult{Request: detail, Changes: []string{}}, nil
	}

	now := s.now()
	if err := s.requests.UpdateAdminFields(ctx, id, next.Status, next.AssignedArtistID, next.AdminNotes, now); err != nil {
		return nil, err
	}

	s.log.AppendAll(ctx, id, pending)

	r.Status = next.Status
	r.AssignedArtistID = next.AssignedArtistID
	r.AdminNotes = next.AdminNotes
	r.UpdatedAt = now

	changes := make([]string, 0, len(pending))
	for _, pe := range pending {
		changes = append(changes, pe.Type)
	}

	detail, err := s.toDetail(ctx, r)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{Request: detail, Changes: changes}, nil
}

// SendClientEmail sends one templated message to the request's client and
// records exactly one outcome event, sent or failed. Unlike the intake
// notification, a failure here surfaces: the admin pressed the button and
// needs to know it did not go out.
func (s *Service) SendClientEmail(ctx context.Context, id string, req SendEmailRequest) error {
	r, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return ErrRequestNotFound
	}

	msg, err := email.BuildClientEmail(email.ClientEmailParams{
		Template:     email.Template(req.Template),
		PublicID:     r.PublicID,
		ClientName:   r.ClientName,
		Message:      req.Message,
		QuoteCents:   req.QuoteCents,
		DepositCents: req.DepositCents,
	})
	if err != nil {
		return err
	}

	sendErr := s.mailer.Send([]string{r.ClientEmail}, msg.Subject, msg.HTML)

	s.log.Append(ctx, r.ID, commission.NewEmailOutcome(
		req.Template, r.ClientEmail, domain.ActorAdmin, msg.Subject, sendErr,
	))

	if sendErr != nil {
		return fmt.Errorf("%w: %v", ErrEmailSendFailed, sendErr)
	}
	return nil
}

func (s *Service) artistNames(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	return s.artists.NamesByIDs(ctx, ids)
}

func (s *Service) toDetail(ctx context.Context, r *domain.CommissionRequest) (*RequestDetail, error) {
	var ids []string
	if r.RequestedArtistID != nil {
		ids = append(ids, *r.RequestedArtistID)
	}
	if r.AssignedArtistID != nil {
		ids = append(ids, *r.AssignedArtistID)
	}
	names, err := s.artistNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	d := &RequestDetail{
		ID:                   r.ID,
		PublicID:             r.PublicID,
		Status:               r.Status,
		RequestedArtistID:    r.RequestedArtistID,
		AssignedArtistID:     r.AssignedArtistID,
		IsCommunitySupported: r.IsCommunitySupported,
		Form:                 r.Form,
		Pricing:              r.Pricing,
		ClientName:           r.ClientName,
		ClientEmail:          r.ClientEmail,
		AdminNotes:           r.AdminNotes,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
	if r.RequestedArtistID != nil {
		d.RequestedArtistName = names[*r.RequestedArtistID]
	}
	if r.AssignedArtistID != nil {
		d.AssignedArtistName = names[*r.AssignedArtistID]
	}
	return d, nil
}
