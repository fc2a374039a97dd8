package rest

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/acsess/dept-portal/config"
)

const authCookieName = "admin-token"

const loginPath = "/login"

// issueToken signs an HS256 token for the admin session.
func issueToken(auth config.AuthConfig, now time.Time) (string, error) {
	if auth.TokenSecret == "" {
		return "", errors.New("token secret is not configured")
	}

	ttl := time.Duration(auth.CookieTTLHoursOrDefault()) * time.Hour
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": auth.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	})

	return token.SignedString([]byte(auth.TokenSecret))
}

// verifyToken checks the signature and expiry of a session token.
// Presence of the cookie alone is never enough.
func verifyToken(auth config.AuthConfig, tokenString string) error {
	if auth.TokenSecret == "" {
		return errors.New("token secret is not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(auth.TokenSecret), nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}

	return nil
}

func credentialsMatch(auth config.AuthConfig, username, password string) bool {
	// fail closed when credentials are not configured
	if auth.Username == "" || auth.Password == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(auth.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(auth.Password), []byte(password)) == 1
	return userOK && passOK
}

// Login handles POST /api/v1/auth/login
// @Summary Admin login
// @Description Checks the configured credentials and sets the admin session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.Response
// @Failure 400,401 {object} rest.Response
// @Router /api/v1/auth/login [post]
func (h *AlertHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, http.StatusBadRequest, "invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return h.fail(c, http.StatusUnauthorized, "Username and password are required")
	}

	if !credentialsMatch(h.auth, req.Username, req.Password) {
		h.log.Warn("login rejected", "username", req.Username)
		return h.fail(c, http.StatusUnauthorized, "Invalid username or password")
	}

	now := time.Now()
	token, err := issueToken(h.auth, now)
	if err != nil {
		h.log.Error("failed to issue token", "error", err)
		return h.fail(c, http.StatusUnauthorized, "Invalid username or password")
	}

	ttl := time.Duration(h.auth.CookieTTLHoursOrDefault()) * time.Hour
	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(ttl),
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   h.auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return h.ok(c, http.StatusOK, nil)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Admin logout
// @Description Expires the admin session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} rest.Response
// @Router /api/v1/auth/logout [post]
func (h *AlertHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return h.ok(c, http.StatusOK, nil)
}

// requireAdmin gates admin surfaces. Page requests are redirected to the
// login page, API requests get a 401 envelope. The token is verified on
// every request, not just checked for presence.
func (h *AlertHandler) requireAdmin(redirect bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(authCookieName)
			if err != nil || verifyToken(h.auth, cookie.Value) != nil {
				if redirect {
					return c.Redirect(http.StatusFound, loginPath)
				}
				return h.fail(c, http.StatusUnauthorized, "Authentication required")
			}
			return next(c)
		}
	}
}
