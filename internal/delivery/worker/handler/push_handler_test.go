package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"areacheck/config"
	"areacheck/internal/domain/constants"
	"areacheck/internal/domain/service"
	"areacheck/internal/errors"
	mockservice "areacheck/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, checker service.AreaChecker) *PushHandler {
	t.Helper()

	return NewPushHandler(PushHandlerParams{
		Config:  &config.Config{},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Checker: checker,
	})
}

func pushBody(t *testing.T, event *service.ResultRecordedEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	msg.Subscription = "projects/local/subscriptions/result-recorded-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_Audit(t *testing.T) {
	testCases := []struct {
		name     string
		recorded bool
		contains bool
		wantCode int
	}{
		{name: "hit confirmed", recorded: true, contains: true, wantCode: http.StatusNoContent},
		{name: "miss confirmed", recorded: false, contains: false, wantCode: http.StatusNoContent},
		{name: "mismatch is acknowledged", recorded: true, contains: false, wantCode: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checker := mockservice.NewMockAreaChecker(t)
			checker.EXPECT().Contains(1, -1.0, 2).Return(tc.contains).Once()

			rec := servePush(newTestHandler(t, checker), pushBody(t, &service.ResultRecordedEvent{
				ResultID: 7,
				UserID:   3,
				X:        1,
				Y:        -1,
				R:        2,
				Hit:      tc.recorded,
			}))

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestHandlePush_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "bad base64", body: `{"message":{"data":"%%%"}}`},
		{name: "bad event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checker := mockservice.NewMockAreaChecker(t)

			rec := servePush(newTestHandler(t, checker), tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_VerifiesGooglePushes(t *testing.T) {
	checker := mockservice.NewMockAreaChecker(t)
	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{
			PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
		},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Checker: checker,
	})
	require.True(t, h.verifyPushAuth)

	h.verify = func(*http.Request) error { return errors.New("bad token") }

	rec := servePush(h, pushBody(t, &service.ResultRecordedEvent{ResultID: 1}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_SkipsVerificationLocally(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvLocal

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.False(t, h.verifyPushAuth)
}

func TestExtractRequestID(t *testing.T) {
	h := newTestHandler(t, nil)
	ctx := httptest.NewRequest(http.MethodPost, "/push", nil).Context()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(ctx, &msg, &service.ResultRecordedEvent{RequestID: "from-event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(ctx, &msg, &service.ResultRecordedEvent{RequestID: "from-event"}))

	assert.NotEmpty(t, h.extractRequestID(ctx, &msg, &service.ResultRecordedEvent{}))
}

func TestVerifyPubSubToken_RejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set("Authorization", "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}
