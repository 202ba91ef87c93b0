package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinemagico/customer-api/internal/config"
	"github.com/cinemagico/customer-api/internal/middleware"
	"github.com/cinemagico/customer-api/internal/queue"
	queue_publisher "github.com/cinemagico/customer-api/internal/service"
	"github.com/cinemagico/customer-api/internal/store"
	"github.com/cinemagico/customer-api/internal/utils"
	"github.com/cinemagico/customer-api/internal/validate"
)

// AuthHandler bundles dependencies for the account endpoints.  Every
// submitted form goes through the validation engine before any store
// access; a failed pass returns 422 with the collected messages in
// field-declaration order.
type AuthHandler struct {
	Cfg    config.Config
	Users  *store.UserStore
	Tokens *store.TokenStore
}

func NewAuthHandler(cfg config.Config, u *store.UserStore, t *store.TokenStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Tokens: t}
}

// ----- DTOs -----

type registerReq struct {
	FirstName       string `json:"nombre"`
	LastName        string `json:"apellido"`
	Email           string `json:"email"`
	Phone           string `json:"telefono"`
	BirthDate       string `json:"fecha_nacimiento"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Terms           bool   `json:"terminos"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type recoverReq struct {
	Email string `json:"email"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type userPart struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
}

type authResp struct {
	User    userPart  `json:"user"`
	Access  tokenPart `json:"access"`
	Refresh tokenPart `json:"refresh"`
}

// Register validates the registration form, creates the account and
// returns a token pair immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	form := validate.RegistrationForm()
	form.SetValue("nombre", req.FirstName)
	form.SetValue("apellido", req.LastName)
	form.SetValue("email", req.Email)
	form.SetValue("telefono", req.Phone)
	form.SetValue("fecha_nacimiento", req.BirthDate)
	form.SetValue("password", req.Password)
	form.SetValue("confirm_password", req.ConfirmPassword)
	form.SetValue("terminos", strconv.FormatBool(req.Terms))
	form.TouchAll()
	if !form.Valid() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":  "validation failed",
			"errors": form.CollectErrors(),
		})
	}

	uid, err := h.Users.Create(store.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Password:  req.Password,
	}, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	return h.issuePair(c, http.StatusCreated, uid)
}

// Login validates the login form, verifies the credentials and returns
// a fresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	form := validate.LoginForm()
	form.SetValue("email", req.Email)
	form.SetValue("password", req.Password)
	form.TouchAll()
	if !form.Valid() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":  "validation failed",
			"errors": form.CollectErrors(),
		})
	}

	u, err := h.Users.GetByEmail(req.Email)
	if err != nil || !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	return h.issuePair(c, http.StatusOK, u.ID)
}

// Refresh validates a refresh token by hash, revokes it and issues a
// new pair (token rotation).
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	userID, err := h.Tokens.ValidateRefresh(hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	_ = h.Tokens.RevokeByHash(hash)

	return h.issuePair(c, http.StatusOK, userID)
}

// Logout revokes the presented refresh token, ending that session.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))
	if _, err := h.Tokens.ValidateRefresh(hash); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	if err := h.Tokens.RevokeByHash(hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Recover accepts a password recovery request.  The response is 202
// regardless of whether the account exists, so the endpoint cannot be
// used to probe emails; the recovery event only goes out for real
// accounts.
func (h *AuthHandler) Recover(c echo.Context) error {
	var req recoverReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	form := validate.NewForm()
	form.AddField("email", validate.Required(), validate.Email(), validate.EmailPattern())
	form.SetValue("email", req.Email)
	if !form.Valid() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":  "validation failed",
			"errors": form.CollectErrors(),
		})
	}

	if _, err := h.Users.GetByEmail(req.Email); err == nil {
		_ = queue_publisher.PublishAccountRecovery(c.Request().Context(), queue.AccountRecoveryEvent{
			Email:       req.Email,
			RequestedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusAccepted, echo.Map{"message": "Instrucciones enviadas a tu email"})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	u, err := h.Users.GetByID(uid)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, userPart{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email})
}

// issuePair creates and stores a fresh access/refresh pair for the
// user and writes the auth response.
func (h *AuthHandler) issuePair(c echo.Context, status int, uid uint64) error {
	u, err := h.Users.GetByID(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(uid, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}
	return c.JSON(status, authResp{
		User:    userPart{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
	})
}
