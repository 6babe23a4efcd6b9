package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
	"github.com/Jasrah85/vibrant-art-group/internal/pricing"
)

type CommissionRequestRepository struct {
	db *gorm.DB
}

func NewCommissionRequestRepository(db *gorm.DB) *CommissionRequestRepository {
	return &CommissionRequestRepository{db: db}
}

type commissionRequestModel struct {
	ID                   string    `gorm:"column:id;primaryKey"`
	PublicID             string    `gorm:"column:public_id;uniqueIndex"`
	Status               string    `gorm:"column:status;index"`
	RequestedArtistID    *string   `gorm:"column:requested_artist_id"`
	AssignedArtistID     *string   `gorm:"column:assigned_artist_id"`
	IsCommunitySupported bool      `gorm:"column:is_community_supported"`
	FormJSON             string    `gorm:"column:form_json;type:text"`
	PricingJSON          string    `gorm:"column:pricing_json;type:text"`
	ClientName           string    `gorm:"column:client_name"`
	ClientEmail          string    `gorm:"column:client_email"`
	AdminNotes           string    `gorm:"column:admin_notes;type:text"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (commissionRequestModel) TableName() string { return "commission_requests" }

func toDomainRequest(m commissionRequestModel) (*domain.CommissionRequest, error) {
	var form domain.CommissionForm
	if err := json.Unmarshal([]byte(m.FormJSON), &form); err != nil {
		return nil, fmt.Errorf("request %s: decode form snapshot: %w", m.ID, err)
	}

	var estimate pricing.Estimate
	if err := json.Unmarshal([]byte(m.PricingJSON), &estimate); err != nil {
		return nil, fmt.Errorf("request %s: decode pricing snapshot: %w", m.ID, err)
	}

	return &domain.CommissionRequest{
		ID:                   m.ID,
		PublicID:             m.PublicID,
		Status:               domain.RequestStatus(m.Status),
		RequestedArtistID:    m.RequestedArtistID,
		AssignedArtistID:     m.AssignedArtistID,
		IsCommunitySupported: m.IsCommunitySupported,
		Form:                 form,
		Pricing:              estimate,
		ClientName:           m.ClientName,
		ClientEmail:          m.ClientEmail,
		AdminNotes:           m.AdminNotes,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}, nil
}

func toRequestModel(r *domain.CommissionRequest) (commissionRequestModel, error) {
	formJSON, err := json.Marshal(r.Form)
	if err != nil {
		return commissionRequestModel{}, fmt.Errorf("encode form snapshot: %w", err)
	}
	pricingJSON, err := json.Marshal(r.Pricing)
	if err != nil {
		return commissionRequestModel{}, fmt.Errorf("encode pricing snapshot: %w", err)
	}

	return commissionRequestModel{
		ID:                   r.ID,
		PublicID:             r.PublicID,
		Status:               string(r.Status),
		RequestedArtistID:    r.RequestedArtistID,
		AssignedArtistID:     r.AssignedArtistID,
		IsCommunitySupported: r.IsCommunitySupported,
		FormJSON:             string(formJSON),
		PricingJSON:          string(pricingJSON),
		ClientName:           r.ClientName,
		ClientEmail:          r.ClientEmail,
		AdminNotes:           r.AdminNotes,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}, nil
}

func (r *CommissionRequestRepository) Create(ctx context.Context, req *domain.CommissionRequest) error {
	m, err := toRequestModel(req)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *CommissionRequestRepository) GetByID(ctx context.Context, id string) (*domain.CommissionRequest, error) {
	var m commissionRequestModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRequest(m)
}

func (r *CommissionRequestRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.CommissionRequest, error) {
	var m commissionRequestModel
	tx := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRequest(m)
}

// List returns requests newest-first with an optional status filter.
func (r *CommissionRequestRepository) List(ctx context.Context, status *domain.RequestStatus, limit, offset int) ([]*domain.CommissionRequest, int, error) {
	q := r.db.WithContext(ctx).Model(&commissionRequestModel{})
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []commissionRequestModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*domain.CommissionRequest, 0, len(models))
	for _, m := range models {
		req, err := toDomainRequest(m)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, req)
	}
	return out, int(total), nil
}

// UpdateAdminFields applies the only admin-mutable fields. Form and pricing
// snapshots are deliberately untouchable here.
func (r *CommissionRequestRepository) UpdateAdminFields(ctx context.Context, id string, status domain.RequestStatus, assignedArtistID *string, adminNotes string, updatedAt time.Time) error {
	tx := r.db.WithContext(ctx).
		Model(&commissionRequestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":             string(status),
			"assigned_artist_id": assignedArtistID,
			"admin_notes":        adminNotes,
			"updated_at":         updatedAt,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
