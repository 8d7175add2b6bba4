package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// DefaultCategories is the fixed set of category names seeded at startup.
var DefaultCategories = []string{
	"Chatbots",
	"Image Generation",
	"Productivity",
	"Writing",
	"Design",
	"Development",
}

// Seed ensures the fixed category list and the default admin identity exist.
// It is idempotent: categories are keyed by name and the admin is only
// created if no admin with the reserved username exists yet.
func (c *Client) Seed(ctx context.Context, adminUsername, adminPasswordHash string) error {
	for _, name := range DefaultCategories {
		category := Category{Name: name}
		if err := c.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			log.Error("failed to seed category", "name", name, "error", err)
			return err
		}
	}

	var count int64
	if err := c.db.WithContext(ctx).Model(&Admin{}).Where("username = ?", adminUsername).Count(&count).Error; err != nil {
		log.Error("failed to count admins", "error", err)
		return err
	}
	if count > 0 {
		return nil
	}

	admin := Admin{
		Username:     adminUsername,
		PasswordHash: adminPasswordHash,
	}
	if err := c.db.WithContext(ctx).Create(&admin).Error; err != nil {
		// A concurrent seeder may have won the race on the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		log.Error("failed to seed default admin", "error", err)
		return err
	}

	log.Info("seeded default admin", "username", adminUsername)
	return nil
}
