// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamereview_backend/internal/feature/auth/domain/entity"
	"gamereview_backend/internal/feature/auth/transport/cookie"
	"gamereview_backend/internal/feature/auth/transport/http/dto"
	"gamereview_backend/internal/feature/auth/transport/middleware"
	"gamereview_backend/internal/feature/auth/usecase"
	"gamereview_backend/internal/shared/response"
	"gamereview_backend/internal/shared/validation"
)

// AuthUsecase defines the account operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, name, email, password string, client usecase.ClientInfo) (*entity.User, *usecase.Credentials, error)
	Login(ctx context.Context, email, password string, client usecase.ClientInfo) (*entity.User, *usecase.Credentials, error)
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uint, update usecase.ProfileUpdate) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uint, current, next string) error
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandler handles the HTTP requests for account operations.
type AuthHandler struct {
	auth    AuthUsecase
	cookies cookie.Config
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase, cookies cookie.Config) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

// Register handles POST /api/auth/register.
// Every violated field rule is returned at once; on success both auth
// carriers are issued (session cookie + bearer token in the body).
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	// Tag violations fall through so every broken rule is reported below.
	if err := c.ShouldBindJSON(&req); err != nil && !validation.IsTagViolation(err) {
		slog.Warn("register: malformed request body", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validation.Register(req.Name, req.Email, req.Password); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	user, creds, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, clientInfo(c))
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			response.Error(c, http.StatusBadRequest, "Email already registered. Please use a different email.")
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusInternalServerError, "Server error. Please try again later.")
		return
	}

	h.setSessionCookie(c, creds.Session)
	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthRes{
		Success: true,
		Message: "User registered successfully.",
		User:    dto.NewUserView(user),
		Token:   creds.Token,
	})
}

// Login handles POST /api/auth/login.
// Unknown email and wrong password produce the identical response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil && !validation.IsTagViolation(err) {
		slog.Warn("login: malformed request body", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validation.Login(req.Email, req.Password); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	user, creds, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, clientInfo(c))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			response.Error(c, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, http.StatusInternalServerError, "Server error. Please try again later.")
		return
	}

	h.setSessionCookie(c, creds.Session)
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{
		Success: true,
		Message: "Login successful.",
		User:    dto.NewUserView(user),
		Token:   creds.Token,
	})
}

// GetProfile handles GET /api/auth/profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized. Please login to access this resource.")
		return
	}

	user, err := h.auth.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found.")
			return
		}
		slog.Error("get profile failed", "error", err, "user_id", userID)
		response.Error(c, http.StatusInternalServerError, "Server error. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, dto.ProfileRes{Success: true, User: dto.NewUserView(user)})
}

// UpdateProfile handles PUT /api/auth/profile. Only the supplied fields are
// touched; each is validated independently.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized. Please login to access this resource.")
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil && !validation.IsTagViolation(err) {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validation.ProfileUpdate(req.Name, req.Bio, req.FavoriteGenre); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), userID, usecase.ProfileUpdate{
		Name:          req.Name,
		Bio:           req.Bio,
		FavoriteGenre: req.FavoriteGenre,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found.")
			return
		}
		slog.Error("update profile failed", "error", err, "user_id", userID)
		response.Error(c, http.StatusInternalServerError, "Server error. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, dto.ProfileRes{
		Success: true,
		Message: "Profile updated successfully.",
		User:    dto.NewUserView(user),
	})
}

// ChangePassword handles PUT /api/auth/password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized. Please login to access this resource.")
		return
	}

	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil && !validation.IsTagViolation(err) {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validation.ChangePassword(req.CurrentPassword, req.NewPassword); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found.")
			return
		}
		slog.Error("change password failed", "error", err, "user_id", userID)
		response.Error(c, http.StatusInternalServerError, "Server error. Please try again later.")
		return
	}

	// The current cookie was revoked with the rest; clear it.
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, response.Envelope{Success: true, Message: "Password changed successfully."})
}

// Logout handles POST /api/auth/logout. Session destruction completes (or
// fails) before the response is written; bearer tokens are not revocable and
// the client is expected to discard its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := middleware.CurrentSessionID(c)
	if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
		slog.Error("logout failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "Error logging out. Please try again.")
		return
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, response.Envelope{Success: true, Message: "Logout successful."})
}

// clientInfo captures request metadata recorded on the session.
func clientInfo(c *gin.Context) usecase.ClientInfo {
	return usecase.ClientInfo{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
}

// setSessionCookie writes the httpOnly session cookie.
func (h *AuthHandler) setSessionCookie(c *gin.Context, s *entity.Session) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookies.Name,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.cookies.Domain,
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
	})
}

// clearSessionCookie expires the session cookie on the client.
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookies.Name,
		Value:    "",
		Path:     "/",
		Domain:   h.cookies.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
	})
}
