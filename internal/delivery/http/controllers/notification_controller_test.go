package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wemetstudio/internal/domain"
)

func TestNotificationController_ShowGetDismiss(t *testing.T) {
	env := newTestEnv(t, nil)
	ctrl := NewNotificationController(testLogger, nil)
	s := env.sessions.Create("en")

	rr := httptest.NewRecorder()
	ctrl.ShowNotification(rr, withSession(jsonRequest(http.MethodPost, "/notification", `{"message":"Saved"}`), s))
	require.Equal(t, http.StatusOK, rr.Code)
	var n domain.Notification
	require.Nil(t, decodeEnvelope(t, rr, &n))
	assert.Equal(t, domain.Notification{Message: "Saved", Visible: true}, n)

	rr = httptest.NewRecorder()
	ctrl.GetNotification(rr, withSession(httptest.NewRequest(http.MethodGet, "/notification", nil), s))
	n = domain.Notification{}
	require.Nil(t, decodeEnvelope(t, rr, &n))
	assert.True(t, n.Visible)

	rr = httptest.NewRecorder()
	ctrl.DismissNotification(rr, withSession(httptest.NewRequest(http.MethodDelete, "/notification", nil), s))
	n = domain.Notification{}
	require.Nil(t, decodeEnvelope(t, rr, &n))
	assert.False(t, n.Visible)
	assert.False(t, s.Notifier.Current().Visible)
}

func TestNotificationController_ShowRequiresMessage(t *testing.T) {
	env := newTestEnv(t, nil)
	ctrl := NewNotificationController(testLogger, nil)
	s := env.sessions.Create("en")
	rr := httptest.NewRecorder()

	ctrl.ShowNotification(rr, withSession(jsonRequest(http.MethodPost, "/notification", `{"message":"  "}`), s))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	apiErr := decodeEnvelope(t, rr, nil)
	require.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Message, "message is required")
}

func TestNotificationController_Stream(t *testing.T) {
	env := newTestEnv(t, nil)
	ctrl := NewNotificationController(testLogger, nil)
	s := env.sessions.Create("en")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctrl.Stream(w, withSession(r, s))
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var first domain.Notification
	require.NoError(t, conn.ReadJSON(&first), "the current state is sent on connect")
	assert.False(t, first.Visible)

	p1, _ := env.catalog.Product("p1")
	s.Cart.AddToCart(p1)

	var got domain.Notification
	for !got.Visible {
		require.NoError(t, conn.ReadJSON(&got))
	}
	assert.Equal(t, "Added!", got.Message)
}

func TestNotificationController_StreamRejectsForeignOrigin(t *testing.T) {
	env := newTestEnv(t, nil)
	ctrl := NewNotificationController(testLogger, []string{"https://wemet.example"})
	s := env.sessions.Create("en")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctrl.Stream(w, withSession(r, s))
	}))
	defer srv.Close()

	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
