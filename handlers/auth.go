package handlers

import (
	"net/http"

	"travelrisk/models"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// Login authenticates with email and password and returns a session token.
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		log.WithField("email", req.Email).Warnf("Login rejected: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.service.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: 86400,
		User:      user,
	})
}
