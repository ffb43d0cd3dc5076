package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client connected to the test Valkey.
// Skips the test if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests to isolate from dev data.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "flash:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func sessionCookieFrom(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSessionCreateAndGet(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client, false)

	w := httptest.NewRecorder()
	ctx := context.Background()

	data := &Data{
		UserID:  uuid.New(),
		Name:    "Test User",
		Email:   "test@session.local",
		IsAdmin: true,
	}

	sessionID, err := store.Create(ctx, w, data)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sessionID == "" {
		t.Error("expected non-empty session ID")
	}

	cookie := sessionCookieFrom(w, CookieName)
	if cookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if cookie.Value != sessionID {
		t.Errorf("cookie value: got %q, want session ID %q", cookie.Value, sessionID)
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}

	// Round-trip through Get.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	got, err := store.Get(ctx, req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("expected session data, got nil")
	}
	if got.UserID != data.UserID {
		t.Errorf("UserID: got %v, want %v", got.UserID, data.UserID)
	}
	if !got.IsAdmin {
		t.Error("IsAdmin flag lost in round-trip")
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set on Create")
	}
}

func TestSessionGetWithoutCookie(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got, err := store.Get(context.Background(), req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil session without cookie, got %+v", got)
	}
}

func TestSessionGetUnknownID(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "does-not-exist"})

	got, err := store.Get(context.Background(), req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown session ID, got %+v", got)
	}
}

func TestSessionDestroy(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client, false)
	ctx := context.Background()

	w := httptest.NewRecorder()
	sessionID, err := store.Create(ctx, w, &Data{UserID: uuid.New(), IsAdmin: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: sessionID})

	w2 := httptest.NewRecorder()
	if err := store.Destroy(ctx, w2, req); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	// The session must be gone.
	got, err := store.Get(ctx, req)
	if err != nil {
		t.Fatalf("Get after Destroy: %v", err)
	}
	if got != nil {
		t.Error("expected nil session after Destroy")
	}

	// The cookie must be expired.
	cookie := sessionCookieFrom(w2, CookieName)
	if cookie == nil {
		t.Fatal("expected expired session cookie")
	}
	if cookie.MaxAge != -1 {
		t.Errorf("cookie MaxAge: got %d, want -1", cookie.MaxAge)
	}
}

func TestSecureCookieFlag(t *testing.T) {
	client := testValkeyClient(t)
	store := NewStore(client, true)

	w := httptest.NewRecorder()
	if _, err := store.Create(context.Background(), w, &Data{UserID: uuid.New()}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	cookie := sessionCookieFrom(w, CookieName)
	if cookie == nil {
		t.Fatal("expected session cookie")
	}
	if !cookie.Secure {
		t.Error("expected Secure cookie when store is configured secure")
	}
}
