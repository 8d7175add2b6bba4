package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Admin represents a privileged identity with exclusive rights to mutate
// the tool catalog. Admins live in their own identity space, separate from
// users: an admin session never implies a user session or vice versa.
type Admin struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

func (c *Client) GetAdminByUsername(ctx context.Context, username string) (*Admin, error) {
	var admin Admin
	if err := c.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get admin by username", "error", err)
		}
		return nil, err
	}
	return &admin, nil
}
