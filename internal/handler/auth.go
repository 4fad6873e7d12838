package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/coworking-reservation/internal/config"
	"github.com/iliyamo/coworking-reservation/internal/domain"
	"github.com/iliyamo/coworking-reservation/internal/repository"
	"github.com/iliyamo/coworking-reservation/internal/utils"
)

var errInvalidCredentials = domain.NewError(
	"auth.invalid_credentials", "email or password is incorrect", domain.CategoryUnauthorized)

var errInvalidRefresh = domain.NewError(
	"auth.invalid_refresh", "refresh token is invalid, expired or revoked", domain.CategoryUnauthorized)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, t *repository.TokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Tokens: t}
}

// ----- DTOs -----

type registerReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"` // ADMIN | MEMBER
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
type authResp struct {
	User    userPart  `json:"user"`
	Access  tokenPart `json:"access"`
	Refresh tokenPart `json:"refresh"`
}

// Register: validate through the domain entity, persist and return a
// token pair immediately.  All field violations come back in one
// response.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role != "ADMIN" {
		role = "MEMBER"
	}

	res := domain.NewUser(uuid.New(), req.FirstName, req.LastName, req.Email, req.Password)
	if res.IsFailure() {
		return failJSON(c, res.Errors())
	}
	user := res.Value()

	ctx, cancel := reqCtx(c)
	defer cancel()

	// Early rejection; the unique index still decides races.
	unique, err := h.Users.IsEmailUnique(ctx, user.Credentials().Email().String())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "uniqueness check failed"})
	}
	if !unique {
		return failJSON(c, []domain.Error{domain.EmailTaken(user.Credentials().Email())})
	}

	hash, err := utils.HashPassword(user.Credentials().Password().String(), h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash failed"})
	}
	if err := h.Users.Create(ctx, user, hash, role); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return failJSON(c, []domain.Error{domain.EmailTaken(user.Credentials().Email())})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	pair, err := h.issueTokens(c, user.ID(), role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue tokens failed"})
	}
	pair.User = userPart{
		ID:    user.ID(),
		Name:  user.Name().String(),
		Email: user.Credentials().Email().String(),
		Role:  role,
	}
	return c.JSON(http.StatusCreated, pair)
}

// Login: verify credentials and return a new token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return failJSON(c, []domain.Error{errInvalidCredentials})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return failJSON(c, []domain.Error{errInvalidCredentials})
	}

	pair, err := h.issueTokens(c, u.ID, u.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue tokens failed"})
	}
	pair.User = userPart{ID: u.ID, Name: u.FirstName + " " + u.LastName, Email: u.Email, Role: u.Role}
	return c.JSON(http.StatusOK, pair)
}

// Refresh: validate by hash, revoke the old token and issue a new pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := reqCtx(c)
	defer cancel()

	userID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return failJSON(c, []domain.Error{errInvalidRefresh})
	}
	_ = h.Tokens.RevokeByHash(ctx, hash)

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return failJSON(c, []domain.Error{errInvalidRefresh})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}

	pair, err := h.issueTokens(c, u.ID, u.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue tokens failed"})
	}
	pair.User = userPart{ID: u.ID, Name: u.FirstName + " " + u.LastName, Email: u.Email, Role: u.Role}
	return c.JSON(http.StatusOK, pair)
}

// Logout: revoke a specific refresh token, or every session of the
// authenticated user when no token is given.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	_ = c.Bind(&req)
	raw := strings.TrimSpace(req.RefreshToken)

	ctx, cancel := reqCtx(c)
	defer cancel()

	if raw != "" {
		hash := utils.HashRefreshRaw(raw)
		if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
			return failJSON(c, []domain.Error{errInvalidRefresh})
		}
		if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
		}
		return c.NoContent(http.StatusNoContent)
	}

	uid, ok := h.bearerUserID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "provide refresh_token or a bearer token"})
	}
	if err := h.Tokens.RevokeAllForUser(ctx, uid); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// bearerUserID parses the Authorization header directly, so logout
// works outside the JWT middleware group.
func (h *AuthHandler) bearerUserID(c echo.Context) (uuid.UUID, bool) {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return uuid.Nil, false
	}
	tok, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(h.Cfg.JWTSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, false
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// issueTokens builds an access/refresh pair and stores the refresh
// hash.  The raw refresh value goes back to the client only.
func (h *AuthHandler) issueTokens(c echo.Context, userID uuid.UUID, role string) (authResp, error) {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, userID, role, h.Cfg.AccessTTLMin)
	if err != nil {
		return authResp{}, err
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return authResp{}, err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Tokens.StoreRefresh(ctx, userID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return authResp{}, err
	}
	return authResp{
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
	}, nil
}
