package echoweb

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const flashCookieName = "shule_flash"

const (
	flashSuccess = "success"
	flashError   = "error"
)

// flashMessage is a one-shot notification surviving a POST/redirect/GET hop.
type flashMessage struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func setFlash(ctx echo.Context, kind, text string) {
	b, err := json.Marshal(flashMessage{Kind: kind, Text: text})
	if err != nil {
		return
	}
	ctx.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// popFlash returns the pending flash, if any, and removes it.
func popFlash(ctx echo.Context) *flashMessage {
	cookie, err := ctx.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	ctx.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	b, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var msg flashMessage
	if err := json.Unmarshal(b, &msg); err != nil {
		return nil
	}
	return &msg
}
