package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/worldloom/worldloom/x/util"
)

var testConfig = util.Config{
	Worldloom: util.Worldloom{
		JwtSecret: "unit-test-secret",
		JwtIssuer: "worldloom.example.com",
		Admins:    []string{"user-admin"},
	},
}

func signToken(t *testing.T, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iss": "worldloom.example.com",
	})
	signed, err := token.SignedString([]byte(testConfig.Worldloom.JwtSecret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func runIdentified(t *testing.T, authHeader string, guards ...echo.MiddlewareFunc) (echo.Context, *httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	s := NewService(testConfig)
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	for i := len(guards) - 1; i >= 0; i-- {
		next = guards[i](next)
	}
	err := s.Identify(next)(c)

	return c, rec, err
}

func TestIdentifyValidToken(t *testing.T) {
	c, rec, err := runIdentified(t, "Bearer "+signToken(t, "user-alice"))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-alice", c.Get(RequesterIdCtxKey))
}

func TestIdentifyForgedToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-mallory",
		"iss": "worldloom.example.com",
	})
	signed, err := token.SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatal(err)
	}

	c, rec, err := runIdentified(t, "Bearer "+signed)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, c.Get(RequesterIdCtxKey))
}

func TestIdentifyWrongIssuer(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-alice",
		"iss": "elsewhere.example.com",
	})
	signed, err := token.SignedString([]byte(testConfig.Worldloom.JwtSecret))
	if err != nil {
		t.Fatal(err)
	}

	c, _, err := runIdentified(t, "Bearer "+signed)

	assert.NoError(t, err)
	assert.Nil(t, c.Get(RequesterIdCtxKey))
}

func TestRestrictKnownWithoutToken(t *testing.T) {
	_, rec, err := runIdentified(t, "", Restrict(ISKNOWN))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"No token, authorization denied"}`, rec.Body.String())
}

func TestRestrictKnownWithToken(t *testing.T) {
	_, rec, err := runIdentified(t, "Bearer "+signToken(t, "user-alice"), Restrict(ISKNOWN))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRestrictAdmin(t *testing.T) {
	_, rec, err := runIdentified(t, "Bearer "+signToken(t, "user-alice"), Restrict(ISADMIN))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, rec, err = runIdentified(t, "Bearer "+signToken(t, "user-admin"), Restrict(ISADMIN))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
