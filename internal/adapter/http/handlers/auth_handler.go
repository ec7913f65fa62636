package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	request "github.com/The0ne18/jobsbreeze-api/internal/adapter/http/dto/request"
	response "github.com/The0ne18/jobsbreeze-api/internal/adapter/http/dto/response"
	"github.com/The0ne18/jobsbreeze-api/internal/auth"
	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
	"github.com/The0ne18/jobsbreeze-api/pkg"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
	errInvalidCredentials  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid email or password", http.StatusUnauthorized)
)

// AuthCredentials is the single configured account the API authenticates.
// The service is single-tenant: one business owner, one login.
type AuthCredentials struct {
	Email        string
	PasswordHash string
	Name         string
}

// AuthHandler handles login requests and issues session tokens.
type AuthHandler struct {
	creds    AuthCredentials
	secret   string
	tokenTTL time.Duration
}

func NewAuthHandler(creds AuthCredentials, secret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{creds: creds, secret: secret, tokenTTL: tokenTTL}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email != strings.ToLower(h.creds.Email) {
		c.JSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.creds.PasswordHash), []byte(payload.Password)); err != nil {
		c.JSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
		return
	}

	user := entities.User{ID: "owner", Email: h.creds.Email, Name: h.creds.Name}
	token, err := auth.GenerateToken(h.secret, user, h.tokenTTL)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLogin(token, user))
}
