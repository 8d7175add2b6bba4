package api

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jon4hz/aitoolbox/internal/api/auth"
	"github.com/jon4hz/aitoolbox/internal/config"
	"github.com/jon4hz/aitoolbox/internal/database"
	"github.com/stretchr/testify/suite"
)

type APITestSuite struct {
	suite.Suite
	db     *database.Client
	server *httptest.Server
	client *http.Client
	ctx    context.Context
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctx = context.Background()

	db, err := database.New(filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.db = db

	hash, err := auth.HashPassword("admin123")
	s.Require().NoError(err)
	s.Require().NoError(db.Seed(s.ctx, "admin", hash))

	cfg := &config.Config{
		Listen: "127.0.0.1:0",
		Database: &config.DatabaseConfig{
			Path: "unused",
		},
		Session: &config.SessionConfig{
			Key:    "test-secret",
			MaxAge: 3600,
		},
		Admin: &config.AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
	}

	srv, err := New(cfg, db, true)
	s.Require().NoError(err)
	s.server = httptest.NewServer(srv.Handler())

	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	s.client = &http.Client{
		Jar: jar,
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (s *APITestSuite) TearDownTest() {
	s.server.Close()
	s.Require().NoError(s.db.Close())
}

func (s *APITestSuite) get(path string) *http.Response {
	resp, err := s.client.Get(s.server.URL + path)
	s.Require().NoError(err)
	return resp
}

func (s *APITestSuite) postForm(path string, form url.Values) *http.Response {
	resp, err := s.client.Post(
		s.server.URL+path,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	s.Require().NoError(err)
	return resp
}

func (s *APITestSuite) body(resp *http.Response) string {
	defer resp.Body.Close() //nolint:errcheck
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return string(data)
}

func (s *APITestSuite) loginAdmin() {
	resp := s.postForm("/admin/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(http.StatusFound, resp.StatusCode)
	s.Require().Equal("/admin/dashboard", resp.Header.Get("Location"))
}

func (s *APITestSuite) seedCatalog() {
	categories, err := s.db.GetAllCategories(s.ctx)
	s.Require().NoError(err)

	byName := make(map[string]uint, len(categories))
	for _, category := range categories {
		byName[category.Name] = category.ID
	}

	for _, tool := range []database.Tool{
		{Name: "ChatGPT", CategoryID: ptr(byName["Chatbots"])},
		{Name: "Design Chat Helper", CategoryID: ptr(byName["Design"])},
		{Name: "Midjourney", CategoryID: ptr(byName["Design"])},
	} {
		s.Require().NoError(s.db.CreateTool(s.ctx, &tool))
	}
}

func ptr(v uint) *uint { return &v }

func (s *APITestSuite) TestHome() {
	resp := s.get("/")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Contains(s.body(resp), "AI Toolbox")
}

func (s *APITestSuite) TestAdminRoutesRedirectWithoutSession() {
	s.seedCatalog()

	for _, path := range []string{
		"/admin/dashboard",
		"/admin/add-tool",
		"/admin/delete-tool/1",
	} {
		resp := s.get(path)
		resp.Body.Close() //nolint:errcheck
		s.Require().Equal(http.StatusFound, resp.StatusCode, path)
		s.Require().Equal("/admin/login", resp.Header.Get("Location"), path)
	}

	// The gated delete must not have touched the store.
	tools, err := s.db.ListTools(s.ctx, database.ToolFilter{})
	s.Require().NoError(err)
	s.Len(tools, 3)
}

func (s *APITestSuite) TestAdminLoginInvalidCredentials() {
	for _, form := range []url.Values{
		{"username": {"admin"}, "password": {"admin124"}},
		{"username": {"root"}, "password": {"admin123"}},
	} {
		resp := s.postForm("/admin/login", form)
		body := s.body(resp)
		s.Require().Equal(http.StatusUnauthorized, resp.StatusCode)
		// The message must not disclose whether the username exists.
		s.Contains(body, "invalid username or password")
	}
}

func (s *APITestSuite) TestAdminDashboard() {
	s.seedCatalog()
	s.loginAdmin()

	resp := s.get("/admin/dashboard")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body := s.body(resp)
	s.Contains(body, "ChatGPT")
	s.Contains(body, "Midjourney")
}

func (s *APITestSuite) TestAddTool() {
	s.loginAdmin()

	categories, err := s.db.GetAllCategories(s.ctx)
	s.Require().NoError(err)
	s.Require().NotEmpty(categories)

	resp := s.postForm("/admin/add-tool", url.Values{
		"name":            {"Claude"},
		"description":     {"Conversational assistant"},
		"usability_score": {"9"},
		"access_link":     {"https://claude.ai"},
		"category_id":     {"1"},
	})
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(http.StatusFound, resp.StatusCode)
	s.Require().Equal("/admin/dashboard", resp.Header.Get("Location"))

	tools, err := s.db.ListTools(s.ctx, database.ToolFilter{Search: "Claude"})
	s.Require().NoError(err)
	s.Require().Len(tools, 1)
	s.Equal(9, tools[0].UsabilityScore)
}

func (s *APITestSuite) TestDeleteTool() {
	s.seedCatalog()
	s.loginAdmin()

	tools, err := s.db.ListTools(s.ctx, database.ToolFilter{Search: "Midjourney"})
	s.Require().NoError(err)
	s.Require().Len(tools, 1)

	resp := s.get("/admin/delete-tool/" + itoa(tools[0].ID))
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(http.StatusFound, resp.StatusCode)
	s.Require().Equal("/admin/dashboard", resp.Header.Get("Location"))

	remaining, err := s.db.ListTools(s.ctx, database.ToolFilter{})
	s.Require().NoError(err)
	s.Len(remaining, 2)
}

func (s *APITestSuite) TestDeleteToolMissingStillRedirects() {
	s.seedCatalog()
	s.loginAdmin()

	resp := s.get("/admin/delete-tool/999")
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(http.StatusFound, resp.StatusCode)
	s.Require().Equal("/admin/dashboard", resp.Header.Get("Location"))

	tools, err := s.db.ListTools(s.ctx, database.ToolFilter{})
	s.Require().NoError(err)
	s.Len(tools, 3)
}

func (s *APITestSuite) TestLogoutClearsAdminSession() {
	s.loginAdmin()

	resp := s.get("/logout")
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(http.StatusFound, resp.StatusCode)
	s.Require().Equal("/login", resp.Header.Get("Location"))

	resp = s.get("/admin/dashboard")
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(http.StatusFound, resp.StatusCode)
	s.Require().Equal("/admin/login", resp.Header.Get("Location"))
}

func (s *APITestSuite) TestRegisterAndLogin() {
	resp := s.postForm("/register", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"s3cret"},
	})
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(http.StatusFound, resp.StatusCode)
	s.Require().Equal("/login", resp.Header.Get("Location"))

	resp = s.postForm("/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"s3cret"},
	})
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(http.StatusFound, resp.StatusCode)
	s.Require().Equal("/", resp.Header.Get("Location"))

	// A user session doesn't grant admin access.
	resp = s.get("/admin/dashboard")
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(http.StatusFound, resp.StatusCode)
	s.Require().Equal("/admin/login", resp.Header.Get("Location"))
}

func (s *APITestSuite) TestRegisterDuplicateEmail() {
	form := url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"s3cret"},
	}

	resp := s.postForm("/register", form)
	resp.Body.Close() //nolint:errcheck
	s.Require().Equal(http.StatusFound, resp.StatusCode)

	resp = s.postForm("/register", form)
	body := s.body(resp)
	s.Require().Equal(http.StatusConflict, resp.StatusCode)
	s.Contains(body, "email already registered")
}

func (s *APITestSuite) TestLoginInvalidCredentials() {
	resp := s.postForm("/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"whatever"},
	})
	body := s.body(resp)
	s.Require().Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Contains(body, "invalid email or password")
}

func (s *APITestSuite) TestRegisterMissingFields() {
	resp := s.postForm("/register", url.Values{
		"username": {"alice"},
	})
	body := s.body(resp)
	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
	s.Contains(body, "all fields are required")
}

func (s *APITestSuite) TestToolsFiltering() {
	s.seedCatalog()

	resp := s.get("/tools?category=Design")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body := s.body(resp)
	s.Contains(body, "Midjourney")
	s.Contains(body, "Design Chat Helper")
	s.NotContains(body, "ChatGPT")

	resp = s.get("/tools?search=chat")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body = s.body(resp)
	s.Contains(body, "ChatGPT")
	s.Contains(body, "Design Chat Helper")
	s.NotContains(body, "Midjourney")

	resp = s.get("/tools?category=Design&search=chat")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body = s.body(resp)
	s.Contains(body, "Design Chat Helper")
	s.NotContains(body, "ChatGPT")
	s.NotContains(body, "Midjourney")
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
