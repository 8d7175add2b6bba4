package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Tool is a cataloged AI product entry.
// CategoryID is taken as given at insert time; the association constraint
// is declared but referential presence is not validated on write.
type Tool struct {
	gorm.Model
	Name           string `gorm:"not null"`
	Description    string
	Benefits       string
	Limitations    string
	UsabilityScore int
	AccessLink     string
	CategoryID     *uint
	Category       *Category `gorm:"constraint:OnDelete:SET NULL;"`
}

// ToolFilter restricts a catalog listing. Zero values mean "no restriction";
// both filters compose with logical AND when set.
type ToolFilter struct {
	// Category restricts to tools whose category name matches exactly.
	Category string
	// Search restricts to tools whose name contains the term as a substring.
	// Matching follows the sqlite LIKE default, which is case-insensitive
	// for ASCII.
	Search string
}

// ListTools returns the tools matching the filter, with their categories
// joined in.
func (c *Client) ListTools(ctx context.Context, filter ToolFilter) ([]Tool, error) {
	query := c.db.WithContext(ctx).Model(&Tool{}).Joins("Category")

	if filter.Category != "" {
		query = query.Where(`"Category"."name" = ?`, filter.Category)
	}
	if filter.Search != "" {
		query = query.Where("tools.name LIKE ?", "%"+filter.Search+"%")
	}

	var tools []Tool
	if err := query.Order("tools.id").Find(&tools).Error; err != nil {
		log.Error("failed to list tools", "error", err)
		return nil, err
	}
	return tools, nil
}

func (c *Client) CreateTool(ctx context.Context, tool *Tool) error {
	if err := c.db.WithContext(ctx).Create(tool).Error; err != nil {
		log.Error("failed to create tool", "error", err)
		return err
	}
	return nil
}

// DeleteTool removes the tool with the given id. Deleting an id that
// doesn't exist is a silent no-op.
func (c *Client) DeleteTool(ctx context.Context, id uint) error {
	if err := c.db.WithContext(ctx).Unscoped().Delete(&Tool{}, id).Error; err != nil {
		log.Error("failed to delete tool", "error", err)
		return err
	}
	return nil
}

// ResetTools removes every tool from the catalog. Used by the reset command.
func (c *Client) ResetTools(ctx context.Context) error {
	if err := c.db.WithContext(ctx).Unscoped().Where("1 = 1").Delete(&Tool{}).Error; err != nil {
		log.Error("failed to reset tools", "error", err)
		return err
	}
	return nil
}
