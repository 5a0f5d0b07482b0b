package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"areacheck/config"
	"areacheck/internal/delivery/api/middleware"
	"areacheck/internal/delivery/api/response"
	"areacheck/internal/delivery/api/router"
	"areacheck/internal/delivery/api/router/handler"
	"areacheck/internal/domain/area"
	"areacheck/internal/domain/entity"
	"areacheck/internal/infra/auth"
	"areacheck/internal/infra/persistence/memory"
	"areacheck/internal/infra/pubsub"
	"areacheck/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	return newTestEchoWithConfig(t, nil)
}

func newTestEchoWithConfig(t *testing.T, configure func(*config.Config)) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "api-access-secret", Refresh: "api-refresh-secret"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	if configure != nil {
		configure(cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	users := memory.NewUserRepository()
	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     users,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	pointUsecase := impl.NewPointService(impl.PointServiceParams{
		UserRepo:   users,
		ResultRepo: memory.NewResultRepository(),
		Checker:    area.NewChecker(),
		Publisher:  pubsub.NewNoopPublisher(logger),
		Logger:     logger,
	})

	return newEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUsecase, logger),
		PointHandler:   handler.NewPointHandler(pointUsecase, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
	})
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string, mutate func(*http.Request)) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func signupAndLogin(t *testing.T, e *echo.Echo, username string) (access, refresh string) {
	t.Helper()

	creds := `{"username":"` + username + `","password":"s3cret"}`
	rec, _ := doRequest(t, e, http.MethodPost, "/api/auth/signup", creds, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env := doRequest(t, e, http.MethodPost, "/api/auth/login", creds, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tokens struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tokens))

	return tokens.AccessToken, tokens.RefreshToken
}

func bearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
}

func TestHealth(t *testing.T) {
	e := newTestEcho(t)

	rec, _ := doRequest(t, e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestSignup(t *testing.T) {
	e := newTestEcho(t)

	rec, env := doRequest(t, e, http.MethodPost, "/api/auth/signup", `{"username":"alice","password":"pw"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"User registered successfully"}`, string(env.Data))

	rec, env = doRequest(t, e, http.MethodPost, "/api/auth/signup", `{"username":"alice","password":"other"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "USERNAME_TAKEN", env.Error.Code)

	rec, env = doRequest(t, e, http.MethodPost, "/api/auth/signup", `{"username":"bob"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, _ = doRequest(t, e, http.MethodPost, "/api/auth/signup", `{"username":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignup_FormBody(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("username=carol&password=pw"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestSignup_PasswordByteLimit(t *testing.T) {
	e := newTestEcho(t)

	// 40 characters pass the character limit but are 80 bytes.
	tooLong := `{"username":"alice","password":"` + strings.Repeat("ж", 40) + `"}`
	rec, env := doRequest(t, e, http.MethodPost, "/api/auth/signup", tooLong, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	// Exactly 72 bytes round-trips through signup and login.
	atLimit := `{"username":"alice","password":"` + strings.Repeat("ж", 36) + `"}`
	rec, _ = doRequest(t, e, http.MethodPost, "/api/auth/signup", atLimit, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = doRequest(t, e, http.MethodPost, "/api/auth/login", atLimit, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestLogin_SetsCookies(t *testing.T) {
	e := newTestEcho(t)
	rec, _ := doRequest(t, e, http.MethodPost, "/api/auth/signup", `{"username":"alice","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, e, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tokens map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &tokens))

	access := cookieByName(rec, entity.AccessTokenCookie)
	require.NotNil(t, access)
	assert.Equal(t, tokens["accessToken"], access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, "/", access.Path)
	assert.Equal(t, http.SameSiteNoneMode, access.SameSite)
	assert.Equal(t, 15*60, access.MaxAge)

	refresh := cookieByName(rec, entity.RefreshTokenCookie)
	require.NotNil(t, refresh)
	assert.Equal(t, tokens["refreshToken"], refresh.Value)
	assert.Equal(t, 7*24*60*60, refresh.MaxAge)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	e := newTestEcho(t)
	signupAndLogin(t, e, "alice")

	for _, body := range []string{
		`{"username":"alice","password":"wrong"}`,
		`{"username":"nobody","password":"s3cret"}`,
	} {
		rec, env := doRequest(t, e, http.MethodPost, "/api/auth/login", body, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
		assert.Nil(t, cookieByName(rec, entity.AccessTokenCookie))
	}
}

func TestRefresh(t *testing.T) {
	e := newTestEcho(t)
	_, refreshToken := signupAndLogin(t, e, "alice")

	t.Run("from cookie", func(t *testing.T) {
		rec, env := doRequest(t, e, http.MethodPost, "/api/auth/refresh", "", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: entity.RefreshTokenCookie, Value: refreshToken})
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var out map[string]string
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.NotEmpty(t, out["accessToken"])

		access := cookieByName(rec, entity.AccessTokenCookie)
		require.NotNil(t, access)
		assert.Equal(t, out["accessToken"], access.Value)
		assert.Nil(t, cookieByName(rec, entity.RefreshTokenCookie))
	})

	t.Run("from body", func(t *testing.T) {
		rec, _ := doRequest(t, e, http.MethodPost, "/api/auth/refresh", `{"refreshToken":"`+refreshToken+`"}`, nil)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		rec, env := doRequest(t, e, http.MethodPost, "/api/auth/refresh", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
	})

	t.Run("unreadable body", func(t *testing.T) {
		rec, env := doRequest(t, e, http.MethodPost, "/api/auth/refresh", "", func(req *http.Request) {
			req.Body = io.NopCloser(strings.NewReader("refreshToken"))
			req.ContentLength = int64(len("refreshToken"))
			req.Header.Set(echo.HeaderContentType, "application/octet-stream")
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec, _ := doRequest(t, e, http.MethodPost, "/api/auth/refresh", `{"refreshToken":"not-a-jwt"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogout_ClearsCookies(t *testing.T) {
	e := newTestEcho(t)

	rec, env := doRequest(t, e, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Successfully logged out"}`, string(env.Data))

	headers := rec.Header().Values("Set-Cookie")
	require.Len(t, headers, 2)
	for _, header := range headers {
		assert.Contains(t, header, "Max-Age=0")
	}
	assert.True(t, strings.HasPrefix(headers[0], entity.AccessTokenCookie+"=;"))
	assert.True(t, strings.HasPrefix(headers[1], entity.RefreshTokenCookie+"=;"))
}

func TestPoints_SubmitAndHistory(t *testing.T) {
	e := newTestEcho(t)
	access, _ := signupAndLogin(t, e, "alice")

	submissions := []struct {
		body string
		want bool
	}{
		{body: `{"x":0,"y":0,"r":1}`, want: true},
		{body: `{"x":5,"y":0,"r":2,"result":true}`, want: false},
		{body: `{"x":1,"y":-1,"r":2}`, want: true},
	}
	for _, submission := range submissions {
		rec, env := doRequest(t, e, http.MethodPost, "/api/point/add", submission.body, bearer(access))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var out struct {
			Result bool `json:"result"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Equal(t, submission.want, out.Result, submission.body)
	}

	// The access cookie works as well as the header.
	rec, env := doRequest(t, e, http.MethodGet, "/api/point/get", "", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: entity.AccessTokenCookie, Value: access})
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var history []struct {
		X      int     `json:"x"`
		Y      float64 `json:"y"`
		R      int     `json:"r"`
		Result bool    `json:"result"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &history))
	require.Len(t, history, 3)
	assert.Equal(t, 0, history[0].X)
	assert.Equal(t, 5, history[1].X)
	assert.False(t, history[1].Result)
	assert.Equal(t, 1, history[2].X)
	assert.Equal(t, -1.0, history[2].Y)
	assert.True(t, history[2].Result)
}

func TestPoints_HistoryIsPerUser(t *testing.T) {
	e := newTestEcho(t)
	alice, _ := signupAndLogin(t, e, "alice")
	bob, _ := signupAndLogin(t, e, "bob")

	rec, _ := doRequest(t, e, http.MethodPost, "/api/point/add", `{"x":0,"y":0,"r":1}`, bearer(alice))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := doRequest(t, e, http.MethodGet, "/api/point/get", "", bearer(bob))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestPoints_Unauthorized(t *testing.T) {
	e := newTestEcho(t)
	_, refresh := signupAndLogin(t, e, "alice")

	testCases := []struct {
		name   string
		mutate func(*http.Request)
	}{
		{name: "no token"},
		{name: "garbage bearer", mutate: bearer("garbage")},
		{name: "refresh token as access token", mutate: bearer(refresh)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, env := doRequest(t, e, http.MethodGet, "/api/point/get", "", tc.mutate)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
		})
	}
}

func TestPoints_SubmitValidation(t *testing.T) {
	e := newTestEcho(t)
	access, _ := signupAndLogin(t, e, "alice")

	for _, body := range []string{
		`{"y":0,"r":1}`,
		`{"x":0,"r":1}`,
		`{"x":0,"y":0}`,
		`{"x":0.5,"y":0,"r":1}`,
		`{"x":"a","y":0,"r":1}`,
	} {
		rec, env := doRequest(t, e, http.MethodPost, "/api/point/add", body, bearer(access))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.NotNil(t, env.Error, body)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code, body)
	}
}

func TestCORS(t *testing.T) {
	const trusted = "https://app.example"

	t.Run("listed origins may send credentials", func(t *testing.T) {
		e := newTestEchoWithConfig(t, func(cfg *config.Config) {
			cfg.HTTP.AllowedOrigins = []string{trusted}
		})

		rec, _ := doRequest(t, e, http.MethodGet, "/health", "", func(req *http.Request) {
			req.Header.Set(echo.HeaderOrigin, trusted)
		})
		assert.Equal(t, trusted, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))

		rec, _ = doRequest(t, e, http.MethodGet, "/health", "", func(req *http.Request) {
			req.Header.Set(echo.HeaderOrigin, "https://evil.example")
		})
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	})

	t.Run("no list never allows credentials", func(t *testing.T) {
		e := newTestEcho(t)

		rec, _ := doRequest(t, e, http.MethodGet, "/health", "", func(req *http.Request) {
			req.Header.Set(echo.HeaderOrigin, "https://evil.example")
		})
		assert.NotEqual(t, "https://evil.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	})
}
