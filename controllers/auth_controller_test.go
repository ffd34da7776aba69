package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ja-cob-s/cantina/middlewares"
	"github.com/ja-cob-s/cantina/repository"
	"github.com/ja-cob-s/cantina/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := newTestDB(t)
	cfg := testConfig()
	svc := services.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.JWTTTL)
	ctrl := NewAuthController(svc, cfg)

	r := newTestRouter()
	a := r.Group("/auth")
	a.POST("/register", ctrl.Register)
	a.POST("/login", ctrl.Login)
	a.GET("/logout", ctrl.Logout)
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret, false), ctrl.Me)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const registerBody = `{"name":"Jacob","email":"jacob@example.com","password":"hunter22","confirm":"hunter22"}`

func TestRegisterThenLogin(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", `{"email":"jacob@example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, gjson.Get(w.Body.String(), "token").String())

	// session cookie set for browser clients
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, middlewares.SessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/register", registerBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterMismatchedConfirm(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/auth/register",
		`{"name":"Jacob","email":"jacob@example.com","password":"hunter22","confirm":"other22"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPasswordGenericError(t *testing.T) {
	r := newAuthRouter(t)
	doJSON(r, http.MethodPost, "/auth/register", registerBody)

	w := doJSON(r, http.MethodPost, "/auth/login", `{"email":"jacob@example.com","password":"nope-nope"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	wrongPass := gjson.Get(w.Body.String(), "error").String()

	w = doJSON(r, http.MethodPost, "/auth/login", `{"email":"ghost@example.com","password":"nope-nope"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	unknownUser := gjson.Get(w.Body.String(), "error").String()

	assert.Equal(t, wrongPass, unknownUser)
}

func TestMeWithCookieSession(t *testing.T) {
	r := newAuthRouter(t)
	doJSON(r, http.MethodPost, "/auth/register", registerBody)

	login := doJSON(r, http.MethodPost, "/auth/login", `{"email":"jacob@example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, login.Code)
	cookie := login.Result().Cookies()[0]

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jacob@example.com", gjson.Get(w.Body.String(), "data.email").String())
	// password hash never serialized
	assert.False(t, gjson.Get(w.Body.String(), "data.password").Exists())
}

func TestLogoutExpiresCookie(t *testing.T) {
	r := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, middlewares.SessionCookie, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
