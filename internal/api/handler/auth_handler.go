package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// AuthHandler is the session facade exposed to the storefront UI.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerRequest struct {
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"    validate:"required,min=6"`
	Confirm     string `json:"confirm"     validate:"required,eqfield=Password"`
}

type sessionResponse struct {
	Authenticated bool              `json:"authenticated"`
	Expired       bool              `json:"expired"`
	User          *domain.Principal `json:"user,omitempty"`
}

// Login authenticates against the upstream identity endpoint.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	user, err := h.sessions.Login(ctx, ports.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: h.sessions.IsLoggedIn(ctx),
		User:          user,
	})
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	user, err := h.sessions.Register(ctx, ports.Registration{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sessionResponse{
		Authenticated: h.sessions.IsLoggedIn(ctx),
		User:          user,
	})
}

// Logout clears the session and sends the client back to the sign-in page.
//
// @Summary      Logout
// @Tags         auth
// @Success      302
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/auth")
}

// Session reports the current authentication state.
//
// @Summary      Current session state
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: h.sessions.IsLoggedIn(ctx),
		Expired:       h.sessions.IsTokenExpired(ctx),
		User:          h.sessions.Principal(),
	})
}
