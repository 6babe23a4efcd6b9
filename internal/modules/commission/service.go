package commission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
	"github.com/Jasrah85/vibrant-art-group/internal/email"
	"github.com/Jasrah85/vibrant-art-group/internal/pkg/besteffort"
	"github.com/Jasrah85/vibrant-art-group/internal/pkg/publicid"
	"github.com/Jasrah85/vibrant-art-group/internal/pricing"
)

// publicIDRetries caps insert attempts when a generated reference code
// collides with an existing one.
const publicIDRetries = 3

// NotifyConfig carries the outbound-notification settings for intake.
type NotifyConfig struct {
	AdminEmail string
	AppURL     string
}

// Service implements the intake flow: server-authoritative estimate,
// request insert, creation event, admin notification.
type Service struct {
	requests RequestRepository
	log      *EventLog
	mailer   email.Sender
	notify   NotifyConfig

	now         func() time.Time
	newID       func() string
	newPublicID func() string
}

func NewService(requests RequestRepository, log *EventLog, mailer email.Sender, notify NotifyConfig) *Service {
	return &Service{
		requests:    requests,
		log:         log,
		mailer:      mailer,
		notify:      notify,
		now:         time.Now,
		newID:       uuid.NewString,
		newPublicID: publicid.New,
	}
}

// Submit creates a commission request from validated wizard input. The
// estimate is recomputed server-side; whatever number the client saw in the
// wizard is advisory only. The insert is the operation of record: if it
// fails the submission fails. Event logging and the notification email are
// best-effort and never surface to the client.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*domain.CommissionRequest, error) {
	estimate := pricing.Calculate(pricing.Input{
		Medium:          pricing.Medium(req.Medium),
		SizeTier:        pricing.SizeTier(req.SizeTier),
		DetailLevel:     pricing.DetailLevel(req.DetailLevel),
		BackgroundLevel: pricing.BackgroundLevel(req.BackgroundLevel),
		Rush:            req.Rush,
	})

	now := s.now()
	r := &domain.CommissionRequest{
		ID:                   s.newID(),
		PublicID:             s.newPublicID(),
		Status:               domain.StatusNew,
		RequestedArtistID:    req.RequestedArtistID,
		AssignedArtistID:     nil,
		IsCommunitySupported: req.IsCommunitySupported,
		Form: domain.CommissionForm{
			RequestedArtistID:    req.RequestedArtistID,
			IsCommunitySupported: req.IsCommunitySupported,
			Medium:               req.Medium,
			SizeTier:             req.SizeTier,
			DetailLevel:          req.DetailLevel,
			BackgroundLevel:      req.BackgroundLevel,
			Rush:                 req.Rush,
			Subject:              req.Subject,
			Notes:                req.Notes,
		},
		Pricing:     estimate,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		AdminNotes:  "",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.createWithFreshPublicID(ctx, r); err != nil {
		return nil, err
	}

	s.log.Append(ctx, r.ID, NewCreationEvent(r))
	s.notifyAdmin(ctx, r)

	return r, nil
}

// Estimate computes a price preview without persisting anything.
func (s *Service) Estimate(req *EstimateRequest) pricing.Estimate {
	return pricing.Calculate(req.toInput())
}

// createWithFreshPublicID retries the insert with a new reference code when
// the unique index on public_id rejects a collision. Any other error, or a
// collision on the primary key, fails the submission outright.
func (s *Service) createWithFreshPublicID(ctx context.Context, r *domain.CommissionRequest) error {
	var err error
	for attempt := 0; attempt < publicIDRetries; attempt++ {
		err = s.requests.Create(ctx, r)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
		r.PublicID = s.newPublicID()
	}
	return fmt.Errorf("could not allocate a unique public id: %w", err)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// modernc sqlite has no typed error for this.
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

func (s *Service) notifyAdmin(ctx context.Context, r *domain.CommissionRequest) {
	if s.mailer == nil || s.notify.AdminEmail == "" {
		return
	}

	summary := fmt.Sprintf("%s, %s, %s, bg:%s",
		r.Form.Medium, r.Form.SizeTier, r.Form.DetailLevel, r.Form.BackgroundLevel)
	if r.Form.Rush {
		summary += ", rush"
	}

	msg := email.NewRequestAdminEmail(email.NewRequestParams{
		PublicID:    r.PublicID,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		Summary:     summary,
		AdminURL:    fmt.Sprintf("%s/admin/requests/%s", s.notify.AppURL, r.ID),
	})

	var sendErr error
	besteffort.Run("notify_admin_new_request", func() error {
		sendErr = s.mailer.Send([]string{s.notify.AdminEmail}, msg.Subject, msg.HTML)
		return sendErr
	})

	s.log.Append(ctx, r.ID, NewEmailOutcome(
		string(email.TemplateAdminNewRequest),
		s.notify.AdminEmail,
		domain.ActorSystem,
		msg.Subject,
		sendErr,
	))
}
