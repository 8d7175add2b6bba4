package models

import (
	"github.com/jon4hz/aitoolbox/internal/database"
	"github.com/mergestat/timediff"
	"github.com/samber/lo"
)

// ToToolView converts a database tool to its view model.
func ToToolView(tool database.Tool) ToolView {
	view := ToolView{
		ID:             tool.ID,
		Name:           tool.Name,
		Description:    tool.Description,
		Benefits:       tool.Benefits,
		Limitations:    tool.Limitations,
		UsabilityScore: tool.UsabilityScore,
		AccessLink:     tool.AccessLink,
		Added:          timediff.TimeDiff(tool.CreatedAt),
	}
	if tool.Category != nil {
		view.CategoryName = tool.Category.Name
	}
	return view
}

// ToToolViews converts a list of database tools to view models.
func ToToolViews(tools []database.Tool) []ToolView {
	return lo.Map(tools, func(tool database.Tool, _ int) ToolView {
		return ToToolView(tool)
	})
}

// ToCategoryViews converts a list of database categories to view models.
func ToCategoryViews(categories []database.Category) []CategoryView {
	return lo.Map(categories, func(category database.Category, _ int) CategoryView {
		return CategoryView{ID: category.ID, Name: category.Name}
	})
}
