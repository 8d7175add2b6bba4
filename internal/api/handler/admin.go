package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ccoveille/go-safecast"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jon4hz/aitoolbox/internal/api/auth"
	"github.com/jon4hz/aitoolbox/internal/api/models"
	"github.com/jon4hz/aitoolbox/internal/database"
)

func (h *Handler) AdminLoginForm(c *gin.Context) {
	if _, ok := auth.CurrentAdmin(c); ok {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.HTML(http.StatusOK, "admin_login.html", gin.H{})
}

type adminLoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var form adminLoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin_login.html", gin.H{"Error": "all fields are required"})
		return
	}

	admin, err := h.auth.LoginAdmin(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{"Error": "invalid username or password"})
			return
		}
		log.Error("failed to log in admin", "error", err)
		c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{"Error": "login failed"})
		return
	}

	if err := auth.SetAdmin(c, admin.ID, admin.Username); err != nil {
		log.Error("failed to save session", "error", err)
		c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{"Error": "login failed"})
		return
	}
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Dashboard lists the complete catalog with category names for the
// logged-in admin.
func (h *Handler) Dashboard(c *gin.Context) {
	admin := c.MustGet("admin").(models.Identity)

	tools, err := h.db.ListTools(c.Request.Context(), database.ToolFilter{})
	if err != nil {
		log.Error("failed to list tools", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": "failed to load tools"})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Identity": admin,
		"Tools":    models.ToToolViews(tools),
	})
}

func (h *Handler) AddToolForm(c *gin.Context) {
	admin := c.MustGet("admin").(models.Identity)

	categories, err := h.db.GetAllCategories(c.Request.Context())
	if err != nil {
		log.Error("failed to list categories", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": "failed to load categories"})
		return
	}

	c.HTML(http.StatusOK, "add_tool.html", gin.H{
		"Identity":   admin,
		"Categories": models.ToCategoryViews(categories),
	})
}

type addToolForm struct {
	Name           string `form:"name" binding:"required"`
	Description    string `form:"description"`
	Benefits       string `form:"benefits"`
	Limitations    string `form:"limitations"`
	UsabilityScore int    `form:"usability_score"`
	AccessLink     string `form:"access_link"`
	CategoryID     uint   `form:"category_id"`
}

// AddTool inserts a new tool. The category id is taken as given without
// existence validation, matching the schema contract.
func (h *Handler) AddTool(c *gin.Context) {
	admin := c.MustGet("admin").(models.Identity)

	var form addToolForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "add_tool.html", gin.H{"Identity": admin, "Error": "tool name is required"})
		return
	}

	tool := database.Tool{
		Name:           form.Name,
		Description:    form.Description,
		Benefits:       form.Benefits,
		Limitations:    form.Limitations,
		UsabilityScore: form.UsabilityScore,
		AccessLink:     form.AccessLink,
	}
	if form.CategoryID != 0 {
		tool.CategoryID = &form.CategoryID
	}

	if err := h.db.CreateTool(c.Request.Context(), &tool); err != nil {
		log.Error("failed to create tool", "error", err)
		c.HTML(http.StatusInternalServerError, "add_tool.html", gin.H{"Identity": admin, "Error": "failed to add tool"})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// DeleteTool deletes the tool with the given id and redirects back to the
// dashboard. A non-existent id is a no-op, not an error.
func parseUintParam(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 0)
	if err != nil {
		return 0, err
	}
	return safecast.ToUint(id)
}

func (h *Handler) DeleteTool(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Error": "invalid tool id"})
		return
	}

	if err := h.db.DeleteTool(c.Request.Context(), id); err != nil {
		log.Error("failed to delete tool", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": "failed to delete tool"})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}
