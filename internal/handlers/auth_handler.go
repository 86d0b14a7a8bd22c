package handlers

import (
	"errors"
	"net/http"

	"farmsync/internal/middleware"
	"farmsync/internal/services"
	"farmsync/internal/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService     services.AuthService
	identityService services.IdentityService
}

func NewAuthHandler(authService services.AuthService, identityService services.IdentityService) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		identityService: identityService,
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	identity, err := h.identityService.SignUp(req.Email, req.Password, req.FullName, req.Phone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Sign the new owner straight in, as the signup form does.
	token, session, err := h.authService.StartOwnerSession(identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"session": session,
	})
}

// SignIn accepts either an owner email or a worker username in the same
// field; anything containing an underscore goes down the worker path.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	token, session, err := h.authService.SignIn(req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"session": session,
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.authService.SignOut(middleware.TokenFrom(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}

func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": middleware.SessionFrom(c)})
}

// UpdateUser changes the owner's profile name and/or password. A password
// change invalidates the current session, so the client must sign in again.
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req struct {
		FullName    string `json:"full_name"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session := middleware.SessionFrom(c)
	identity, err := h.identityService.UpdateUser(session.ID, req.FullName, req.NewPassword)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	signedOut := false
	if req.NewPassword != "" {
		_ = h.authService.SignOut(middleware.TokenFrom(c))
		signedOut = true
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       identity,
		"signed_out": signedOut,
	})
}

// validationError writes field-scoped validation failures as a 400 with a
// per-field breakdown; other errors fall through to the given status.
func validationError(c *gin.Context, err error, fallback int) {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  err.Error(),
			"fields": fieldErrs,
		})
		return
	}
	c.JSON(fallback, gin.H{"error": err.Error()})
}
