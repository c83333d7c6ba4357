package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refresh_token"

type AuthHandler struct {
	authUC domain.AuthUsecase
	tokens *token.Service
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, tokens *token.Service, cfg *config.Config, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC: authUC,
		tokens: tokens,
		config: cfg,
	}

	// Public Routes
	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", loginLimiter, handler.Register)
		publicAuth.POST("/login", loginLimiter, handler.Login)
		publicAuth.POST("/refresh", handler.Refresh)
		publicAuth.POST("/logout", handler.Logout)
		// Peer-facing endpoint: remote-mode deployments forward their bearer
		// tokens here for verification.
		publicAuth.POST("/verify", handler.VerifyToken)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=candidate employer"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new user with name, email, password, and role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// Remote-mode deployments never mint credentials locally; the signup is
	// proxied to the authoritative peer.
	if !h.config.LocalAuth() {
		h.proxyToPeer(c, "/v1/auth/register")
		return
	}

	user, pair, err := h.authUC.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	h.setRefreshCookie(c, pair.Refresh)
	response.Success(c, http.StatusCreated, "Registration successful", gin.H{
		"token": pair.Access,
		"user":  user,
	})
}

// Login godoc
// @Summary      User Login
// @Description  Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if !h.config.LocalAuth() {
		h.proxyToPeer(c, "/v1/auth/login")
		return
	}

	user, pair, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setRefreshCookie(c, pair.Refresh)
	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": pair.Access,
		"user":  user,
	})
}

// Refresh rotates the refresh token carried in the HTTP-only cookie. The old
// cookie is cleared before the new pair is issued: if rotation fails the
// client is left without a refresh token and must log in again (fail-closed).
func (h *AuthHandler) Refresh(c *gin.Context) {
	oldToken, err := c.Cookie(refreshCookieName)
	if err != nil || oldToken == "" {
		c.Error(apperror.Unauthorized("Refresh token missing"))
		return
	}

	h.clearRefreshCookie(c)

	pair, err := h.authUC.Refresh(c.Request.Context(), oldToken)
	if err != nil {
		c.Error(err)
		return
	}

	h.setRefreshCookie(c, pair.Refresh)
	response.Success(c, http.StatusOK, "Token refreshed", gin.H{
		"token": pair.Access,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearRefreshCookie(c)
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// VerifyToken is the server side of remote-mode verification: a peer
// deployment posts a raw bearer token and receives the identity this
// deployment vouches for. Always answers 200; validity travels in the body.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	if !h.config.LocalAuth() {
		// Without the signing secret this deployment cannot vouch for anyone.
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	claims, err := h.tokens.ParseAccess(req.Token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), claims.Subject)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user": domain.Identity{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		// In remote mode the resolved identity may not exist in the local
		// store; that surfaces here as a plain 404.
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", gin.H{
		"user":         user,
		"completeness": domain.ComputeCompleteness(user),
	})
}

// proxyToPeer forwards the raw request body to the authoritative peer and
// relays its response verbatim.
func (h *AuthHandler) proxyToPeer(c *gin.Context, path string) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(apperror.BadRequest("Could not read request body"))
		return
	}

	peerURL := h.config.AuthPeerURL + path
	httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, peerURL, bytes.NewReader(body))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Forwarded-For", c.ClientIP())
	httpReq.Header.Set("User-Agent", c.Request.UserAgent())

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		logger.Log.Error("auth peer unavailable", "error", err, "path", path)
		c.Error(apperror.New(http.StatusInternalServerError, "Authentication service unavailable", err))
		return
	}
	defer resp.Body.Close()

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to parse peer response", err))
		return
	}
	c.JSON(resp.StatusCode, payload)
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookieName, refreshToken, int(token.RefreshTTL.Seconds()), "/v1/auth", h.config.CookieDomain, h.config.CookieSecure, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookieName, "", -1, "/v1/auth", h.config.CookieDomain, h.config.CookieSecure, true)
}
