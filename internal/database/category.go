package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Category is a named grouping tools can belong to. The set of categories
// is fixed at seed time; there is no exposed mutation beyond that.
type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null"`
}

func (c *Client) GetAllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		log.Error("failed to get categories", "error", err)
		return nil, err
	}
	return categories, nil
}
