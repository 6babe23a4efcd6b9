package domain

import "time"

// AdminUser is a back-office account. Sign-in is additionally gated by the
// ADMIN_EMAILS allow-list from config.
type AdminUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
