package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jon4hz/aitoolbox/internal/api/auth"
	"github.com/jon4hz/aitoolbox/internal/api/models"
	"github.com/jon4hz/aitoolbox/internal/config"
	"github.com/jon4hz/aitoolbox/internal/database"
)

type Handler struct {
	db   *database.Client
	auth *auth.Service
	cfg  *config.Config
}

func New(db *database.Client, authService *auth.Service, cfg *config.Config) *Handler {
	return &Handler{
		db:   db,
		auth: authService,
		cfg:  cfg,
	}
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Identity": auth.Current(c),
	})
}

// Tools renders the public catalog, filtered by the optional category and
// search query parameters. Both filters compose with AND.
func (h *Handler) Tools(c *gin.Context) {
	filter := database.ToolFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	tools, err := h.db.ListTools(c.Request.Context(), filter)
	if err != nil {
		log.Error("failed to list tools", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": "failed to load tools"})
		return
	}

	categories, err := h.db.GetAllCategories(c.Request.Context())
	if err != nil {
		log.Error("failed to list categories", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": "failed to load categories"})
		return
	}

	c.HTML(http.StatusOK, "tools.html", gin.H{
		"Identity":   auth.Current(c),
		"Tools":      models.ToToolViews(tools),
		"Categories": models.ToCategoryViews(categories),
		"Category":   filter.Category,
		"Search":     filter.Search,
	})
}

func (h *Handler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

type registerForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": "all fields are required"})
		return
	}

	_, err := h.auth.Register(c.Request.Context(), form.Username, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, database.ErrEmailTaken) {
			c.HTML(http.StatusConflict, "register.html", gin.H{"Error": "email already registered"})
			return
		}
		log.Error("failed to register user", "error", err)
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{"Error": "registration failed"})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) LoginForm(c *gin.Context) {
	if _, ok := auth.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": "all fields are required"})
		return
	}

	user, err := h.auth.LoginUser(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "invalid email or password"})
			return
		}
		log.Error("failed to log in user", "error", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "login failed"})
		return
	}

	if err := auth.SetUser(c, user.ID, user.Username); err != nil {
		log.Error("failed to save session", "error", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "login failed"})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout clears all session state, user and admin markers alike.
func (h *Handler) Logout(c *gin.Context) {
	if err := auth.Clear(c); err != nil {
		log.Error("failed to clear session", "error", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
