package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to a request identity. The mode is
// fixed at construction time for the process lifetime:
//
//   - Local mode (tokens != nil): verify signature+expiry with the local
//     secret, then load the user from the local store. An expired or
//     malformed token never touches the database.
//   - Remote mode (verifier != nil): forward the raw token to the peer
//     deployment. The identity the peer vouches for is used as-is; it is not
//     guaranteed to exist in the local store, and downstream handlers that
//     load full records by that id may legitimately 404.
//
// There is no fallback between modes within a request, and every failure
// surfaces as a generic 401.
func AuthMiddleware(cfg *config.Config, tokens *token.Service, verifier *auth.Verifier, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if authHeader == "" || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Not authorized", nil)
			c.Abort()
			return
		}

		if cfg.LocalAuth() {
			resolveLocal(c, tokenString, tokens, authUC)
			return
		}
		resolveRemote(c, tokenString, verifier)
	}
}

func resolveLocal(c *gin.Context, tokenString string, tokens *token.Service, authUC domain.AuthUsecase) {
	claims, err := tokens.ParseAccess(tokenString)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Not authorized", nil)
		c.Abort()
		return
	}

	// The JWT role claim can be stale; the local store is the authority.
	user, err := authUC.GetCurrentUser(c.Request.Context(), claims.Subject)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Not authorized", nil)
		c.Abort()
		return
	}

	setIdentity(c, &domain.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
	c.Next()
}

func resolveRemote(c *gin.Context, tokenString string, verifier *auth.Verifier) {
	remote, err := verifier.Verify(c.Request.Context(), tokenString)
	if err != nil {
		// A down or slow peer fails every authenticated request during the
		// outage. Logged distinctly from a plain rejection, but the client
		// sees the same generic 401 either way.
		if err == auth.ErrTokenRejected {
			logger.Log.Debug("peer rejected token")
		} else {
			logger.Log.Error("peer verification unavailable", "error", err)
		}
		response.Error(c, http.StatusUnauthorized, "Not authorized", nil)
		c.Abort()
		return
	}

	setIdentity(c, &domain.Identity{
		ID:    remote.ID,
		Name:  remote.Name,
		Email: remote.Email,
		Role:  remote.Role,
	})
	c.Next()
}

func setIdentity(c *gin.Context, id *domain.Identity) {
	role := id.Role
	if role == "" {
		role = domain.RoleCandidate // Fallback
	}
	c.Set(string(domain.KeyUserID), id.ID)
	c.Set(string(domain.KeyUserEmail), id.Email)
	c.Set(string(domain.KeyUserRole), role)
	c.Set(string(domain.KeyUserName), id.Name)

	// Usecases receive the request context, not the gin context, so the
	// typed keys must live there too.
	ctx := c.Request.Context()
	ctx = context.WithValue(ctx, domain.KeyUserID, id.ID)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, id.Email)
	ctx = context.WithValue(ctx, domain.KeyUserRole, role)
	c.Request = c.Request.WithContext(ctx)
}
