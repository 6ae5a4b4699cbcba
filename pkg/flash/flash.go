// Package flash keeps one-shot messages in a cookie across a redirect.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const cookieName = "fazenda_flash"

// Category selects how a message is shown.
type Category string

const (
	Success Category = "success"
	Warning Category = "warning"
	Danger  Category = "danger"
)

type Message struct {
	Category Category `json:"c"`
	Text     string   `json:"t"`
}

// Set stores msg for the next request.
func Set(c echo.Context, cat Category, text string) {
	raw, err := json.Marshal(Message{Category: cat, Text: text})
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending message, if any, and clears it.
func Pop(c echo.Context) *Message {
	ck, err := c.Cookie(cookieName)
	if err != nil || ck.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	raw, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return nil
	}
	var m Message
	if err := json.Unmarshal(raw, &m); err != nil || m.Text == "" {
		return nil
	}
	return &m
}
