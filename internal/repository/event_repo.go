package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
)

type CommissionEventRepository struct {
	db *gorm.DB
}

func NewCommissionEventRepository(db *gorm.DB) *CommissionEventRepository {
	return &CommissionEventRepository{db: db}
}

type commissionEventModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	RequestID string    `gorm:"column:request_id;index"`
	Type      string    `gorm:"column:type"`
	Actor     string    `gorm:"column:actor"`
	Summary   string    `gorm:"column:summary"`
	DataJSON  *string   `gorm:"column:data_json;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
}

func (commissionEventModel) TableName() string { return "commission_events" }

func toDomainEvent(m commissionEventModel) (domain.CommissionEvent, error) {
	e := domain.CommissionEvent{
		ID:        m.ID,
		RequestID: m.RequestID,
		Type:      m.Type,
		Actor:     domain.EventActor(m.Actor),
		Summary:   m.Summary,
		CreatedAt: m.CreatedAt,
	}
	if m.DataJSON != nil && *m.DataJSON != "" {
		if err := json.Unmarshal([]byte(*m.DataJSON), &e.Data); err != nil {
			return domain.CommissionEvent{}, fmt.Errorf("event %s: decode payload: %w", m.ID, err)
		}
	}
	return e, nil
}

// Append inserts one audit entry. Rows are never updated or deleted.
func (r *CommissionEventRepository) Append(ctx context.Context, e *domain.CommissionEvent) error {
	m := commissionEventModel{
		ID:        e.ID,
		RequestID: e.RequestID,
		Type:      e.Type,
		Actor:     string(e.Actor),
		Summary:   e.Summary,
		CreatedAt: e.CreatedAt,
	}
	if e.Data != nil {
		raw, err := json.Marshal(e.Data)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		s := string(raw)
		m.DataJSON = &s
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

// ListByRequest returns a request's timeline newest-first, capped at limit.
func (r *CommissionEventRepository) ListByRequest(ctx context.Context, requestID string, limit int) ([]domain.CommissionEvent, error) {
	if limit <= 0 {
		limit = 200
	}

	var models []commissionEventModel
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.CommissionEvent, 0, len(models))
	for _, m := range models {
		e, err := toDomainEvent(m)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
