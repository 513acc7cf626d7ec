package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/services"
)

type AuthHandler struct {
	AuthService *services.AuthService
	Sessions    auth.SessionStore
	CookieName  string
	SessionTTL  time.Duration
}

func NewAuthHandler(svc *services.AuthService, store auth.SessionStore, cookieName string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{
		AuthService: svc,
		Sessions:    store,
		CookieName:  cookieName,
		SessionTTL:  ttl,
	}
}

// Login is POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	id := h.Sessions.Create(auth.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
	c.SetCookie(h.CookieName, id, int(h.SessionTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"success": true, "role": user.Role})
}

// Register is POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.AuthService.Register(&req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Registration successful"})
}

// Logout is POST /auth/logout. Destroys the session if there is one.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(h.CookieName); err == nil {
		h.Sessions.Delete(id)
	}
	c.SetCookie(h.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// Me is GET /auth/me, behind RequireAuth.
func (h *AuthHandler) Me(c *gin.Context) {
	sess := auth.CurrentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"user_id":    sess.UserID,
		"username":   sess.Username,
		"email":      sess.Email,
		"role":       sess.Role,
		"first_name": sess.FirstName,
		"last_name":  sess.LastName,
	})
}
