package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gantry/internal/infrastructure/auth"
	"gantry/internal/shared/constants"
	"gantry/internal/shared/logger"
	"gantry/internal/shared/utils"
)

type AuthHandler struct {
	credentials *auth.CredentialVerifier
	jwtService  *auth.JWTService
	logger      logger.Interface
}

func NewAuthHandler(credentials *auth.CredentialVerifier, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		jwtService:  jwtService,
		logger:      logger.NewLogger(),
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Login checks the configured admin credential and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username and password required")
		return
	}

	if err := h.credentials.Verify(req.Username, req.Password); err != nil {
		h.logger.Warnw("failed login attempt", "username", req.Username)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, expiresIn, err := h.jwtService.Generate(req.Username, constants.RoleAdmin)
	if err != nil {
		h.logger.Errorw("failed to issue access token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.OKResponse(c, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	})
}
