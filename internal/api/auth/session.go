package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/jon4hz/aitoolbox/internal/api/models"
)

// Session keys. User and admin markers are independent key sets inside the
// one cookie session; neither implies the other.
const (
	sessionUserID    = "user_id"
	sessionUserName  = "user_name"
	sessionAdminID   = "admin_id"
	sessionAdminName = "admin_name"
)

// SetUser records a user identity in the session.
func SetUser(c *gin.Context, id uint, name string) error {
	session := sessions.Default(c)
	session.Set(sessionUserID, id)
	session.Set(sessionUserName, name)
	return session.Save()
}

// SetAdmin records an admin identity in the session.
func SetAdmin(c *gin.Context, id uint, name string) error {
	session := sessions.Default(c)
	session.Set(sessionAdminID, id)
	session.Set(sessionAdminName, name)
	return session.Save()
}

// Clear drops all session state, user and admin markers alike.
func Clear(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// CurrentUser returns the user identity in the session, if any.
func CurrentUser(c *gin.Context) (models.Identity, bool) {
	session := sessions.Default(c)
	id, ok := session.Get(sessionUserID).(uint)
	if !ok {
		return models.Anonymous(), false
	}
	name, _ := session.Get(sessionUserName).(string)
	return models.Identity{Role: models.RoleUser, ID: id, Name: name}, true
}

// CurrentAdmin returns the admin identity in the session, if any.
func CurrentAdmin(c *gin.Context) (models.Identity, bool) {
	session := sessions.Default(c)
	id, ok := session.Get(sessionAdminID).(uint)
	if !ok {
		return models.Anonymous(), false
	}
	name, _ := session.Get(sessionAdminName).(string)
	return models.Identity{Role: models.RoleAdmin, ID: id, Name: name}, true
}

// Current returns the identity of the request for display purposes,
// preferring the admin marker when both are present.
func Current(c *gin.Context) models.Identity {
	if admin, ok := CurrentAdmin(c); ok {
		return admin
	}
	if user, ok := CurrentUser(c); ok {
		return user
	}
	return models.Anonymous()
}
