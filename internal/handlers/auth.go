package handlers

import (
	"errors"
	"net/http"

	"taskmanager/internal/models"
	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

// Response bodies fixed by the public contract.
const (
	msgUserCreated        = "User Created"
	errInvalidCredentials = "invalid credentials"
	errRegistrationFailed = "failed to register user"
	errLoginFailed        = "failed to log in"
)

// Single, shared credentials payload for both register and login.
type authCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      plain
// @Param        body  body   authCredentials  true  "Credentials"
// @Success      200   {string}  string  "User Created"
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	if _, err := h.services.SignUp(input.Username, input.Password); err != nil {
		if errors.Is(err, models.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": models.ErrUsernameTaken.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRegistrationFailed, "register_failed", err, "username", input.Username)
		return
	}

	c.String(http.StatusOK, msgUserCreated)
}

// @Summary      Log in and obtain a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   authCredentials  true  "Credentials"
// @Success      200   {string}  string  "JWT"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(input.Username, input.Password)
	if err != nil {
		// Unknown username and wrong password get the same response,
		// so usernames cannot be enumerated through this endpoint.
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidPassword) {
			if h.log != nil {
				h.log.Infow("login_rejected", "username", input.Username)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidCredentials})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoginFailed, "login_failed", err, "username", input.Username)
		return
	}

	// Token is the whole body, as a bare JSON string.
	c.JSON(http.StatusOK, token)
}
