package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"wemetstudio/internal/delivery/http/helpers"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

// ShowNotificationRequest is the request body for POST /notification.
type ShowNotificationRequest struct {
	Message string `json:"message"`
}

// Validate implements Validator.
func (s ShowNotificationRequest) Validate() []string {
	if strings.TrimSpace(s.Message) == "" {
		return []string{"message is required"}
	}
	return nil
}

type NotificationController struct {
	Logger   *slog.Logger
	Upgrader websocket.Upgrader
}

// NewNotificationController accepts websocket handshakes from allowedOrigins.
// An empty list allows same-origin handshakes only; "*" allows any origin.
func NewNotificationController(logger *slog.Logger, allowedOrigins []string) *NotificationController {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimSuffix(strings.TrimSpace(o), "/")] = struct{}{}
	}
	c := &NotificationController{Logger: logger}
	c.Upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if len(allowed) > 0 {
		c.Upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			if _, wildcard := allowed["*"]; wildcard {
				return true
			}
			_, ok := allowed[origin]
			return ok
		}
	}
	return c
}

// GetNotification godoc
// @Summary Get the notification slot
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.Notification}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /notification [get]
func (c *NotificationController) GetNotification(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, s.Notifier.Current())
}

// ShowNotification godoc
// @Summary Show a notification
// @Description Replaces the current message and restarts the auto-dismiss timer.
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ShowNotificationRequest true "Message"
// @Success 200 {object} helpers.APIResponse{data=domain.Notification}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /notification [post]
func (c *NotificationController) ShowNotification(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	var req ShowNotificationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	s.Notifier.Show(req.Message)
	helpers.WriteJSONSuccess(w, http.StatusOK, s.Notifier.Current())
}

// DismissNotification godoc
// @Summary Hide the notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.Notification}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /notification [delete]
func (c *NotificationController) DismissNotification(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	s.Notifier.Dismiss()
	helpers.WriteJSONSuccess(w, http.StatusOK, s.Notifier.Current())
}

// Stream godoc
// @Summary Stream notification changes
// @Description Websocket. Sends the current notification on connect and every show or hide afterwards as JSON. The token may be passed as the token query parameter.
// @Tags notifications
// @Security BearerAuth
// @Param token query string false "Session token"
// @Success 101
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /notifications/ws [get]
func (c *NotificationController) Stream(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	conn, err := c.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.Logger.WarnContext(r.Context(), "websocket upgrade failed", "session_id", s.ID, "err", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	// The reader only handles control frames and notices the client leaving.
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	updates := s.Notifier.Subscribe(ctx)
	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()

	c.Logger.DebugContext(ctx, "notification stream opened", "session_id", s.ID)
	for {
		select {
		case <-ctx.Done():
			c.Logger.DebugContext(ctx, "notification stream closed", "session_id", s.ID)
			return
		case n, open := <-updates:
			if !open {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(n); err != nil {
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
