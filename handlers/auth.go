package handlers

import (
	"net/http"
	"strings"

	"washly/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler covers the token lifecycle this service owns. Tokens are
// issued by the identity service; here they can only be revoked.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Logout revokes the caller's bearer token for the remainder of its
// lifetime, so it stops working before its exp claim would retire it.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	ttl, err := utils.TokenRemainingLife(tokenString)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", err.Error())
		return
	}

	if err := utils.RevokeToken(c.Request.Context(), tokenString, ttl); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
