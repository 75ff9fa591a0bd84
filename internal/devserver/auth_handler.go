package devserver

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/intelligrievance/grievance-client/internal/core/domain"
)

const tokenTTL = 24 * time.Hour

type authHandler struct {
	store     *memoryStore
	jwtSecret string
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

type authResponse struct {
	User  userPayload `json:"user"`
	Token string      `json:"token,omitempty"`
}

// Register handles POST /auth/register. It creates the account only; no
// session is established and no token issued.
func (h *authHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email and password are required")
	}
	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be user or admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	acct := &account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := h.store.createAccount(acct); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: payload(acct)})
}

// Login handles POST /auth/login, exchanging credentials for {user, token}.
func (h *authHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	acct, ok := h.store.findAccount(req.Email)
	if !ok {
		return domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)) != nil {
		return domain.ErrInvalidCredentials
	}

	token, err := h.generateToken(acct)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{User: payload(acct), Token: token})
}

func (h *authHandler) generateToken(acct *account) (string, error) {
	claims := jwt.MapClaims{
		"sub":   acct.ID,
		"email": acct.Email,
		"role":  string(acct.Role),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}

func payload(acct *account) userPayload {
	return userPayload{ID: acct.ID, Name: acct.Name, Email: acct.Email, Role: acct.Role}
}
