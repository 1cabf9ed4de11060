package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockroom/config"
	"stockroom/internal/infra/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func newAuthMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()

	cfg := testConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc, cfg)
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func invoke(m *AuthMiddleware, authHeader string, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(next)(c)

	return rec, err
}

func TestAuthenticate_SetsPrincipal(t *testing.T) {
	m := newAuthMiddleware(t)

	token := signToken(t, jwt.MapClaims{
		"sub":  42,
		"role": "Manager",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	var gotID int64
	var gotRole string
	rec, err := invoke(m, "Bearer "+token, func(c echo.Context) error {
		gotID = c.Get(ContextUserID).(int64)
		gotRole = c.Get(ContextRole).(string)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotID)
	assert.Equal(t, "Manager", gotRole)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := newAuthMiddleware(t)

	rec, err := invoke(m, "", func(c echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m := newAuthMiddleware(t)

	rec, err := invoke(m, "Basic abc", func(c echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	m := newAuthMiddleware(t)

	token := signToken(t, jwt.MapClaims{
		"sub":  42,
		"role": "Manager",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	rec, err := invoke(m, "Bearer "+token, func(c echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	m := newAuthMiddleware(t)

	tests := []struct {
		name     string
		role     any
		allowed  []string
		wantCode int
	}{
		{name: "allowed role", role: "Admin", allowed: []string{"Manager", "Admin"}, wantCode: http.StatusOK},
		{name: "denied role", role: "Viewer", allowed: []string{"Manager", "Admin"}, wantCode: http.StatusForbidden},
		{name: "missing role", role: nil, allowed: []string{"Admin"}, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(ContextRole, tt.role)

			handler := m.RequireRole(tt.allowed...)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestSubjectID(t *testing.T) {
	tests := []struct {
		name   string
		sub    any
		wantID int64
		wantOK bool
	}{
		{name: "json number", sub: float64(42), wantID: 42, wantOK: true},
		{name: "numeric string", sub: "17", wantID: 17, wantOK: true},
		{name: "garbage string", sub: "abc", wantOK: false},
		{name: "missing", sub: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := jwt.MapClaims{}
			if tt.sub != nil {
				claims["sub"] = tt.sub
			}

			id, ok := subjectID(claims)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}
