package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	// FlashCookieName identifies the browser's flash queue. It is separate
	// from the session cookie so anonymous visitors receive flashes too
	// (e.g. after a failed public lookup).
	FlashCookieName = "blog_flash"

	// flashPrefix namespaces flash keys in Valkey.
	flashPrefix = "flash:"

	// flashTTL bounds how long undelivered flashes survive.
	flashTTL = 10 * time.Minute
)

// Flash kinds shown as alert styles by the templates.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-time notification message displayed on the next
// rendered page and then discarded.
type Flash struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// AddFlash appends a one-shot message to the requester's flash queue in
// Valkey, creating the flash cookie if needed.
func (s *Store) AddFlash(ctx context.Context, w http.ResponseWriter, r *http.Request, typ, message string) error {
	id, err := s.flashID(w, r)
	if err != nil {
		return fmt.Errorf("flash id: %w", err)
	}

	payload, err := json.Marshal(Flash{Type: typ, Message: message})
	if err != nil {
		return fmt.Errorf("flash marshal: %w", err)
	}

	key := flashPrefix + id
	if err := s.client.RPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("flash push: %w", err)
	}
	s.client.Expire(ctx, key, flashTTL)
	return nil
}

// PopFlashes returns all pending flashes for the requester and removes
// them, so each message is delivered exactly once. Returns nil when the
// queue is empty or no flash cookie exists.
func (s *Store) PopFlashes(ctx context.Context, r *http.Request) []Flash {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	key := flashPrefix + cookie.Value
	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil || len(raw) == 0 {
		return nil
	}
	s.client.Del(ctx, key)

	flashes := make([]Flash, 0, len(raw))
	for _, item := range raw {
		var f Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes
}

// flashID returns the requester's flash queue ID, generating a new one
// and setting the cookie when absent.
func (s *Store) flashID(w http.ResponseWriter, r *http.Request) (string, error) {
	if cookie, err := r.Cookie(FlashCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	id, err := generateID()
	if err != nil {
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(flashTTL.Seconds()),
	})
	return id, nil
}
