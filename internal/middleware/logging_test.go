package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriterCapturesStatus(t *testing.T) {
	t.Run("explicit WriteHeader", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

		rw.WriteHeader(http.StatusNotFound)
		if rw.statusCode != http.StatusNotFound {
			t.Errorf("statusCode: got %d, want %d", rw.statusCode, http.StatusNotFound)
		}

		// A second WriteHeader must not overwrite the recorded status.
		rw.WriteHeader(http.StatusTeapot)
		if rw.statusCode != http.StatusNotFound {
			t.Errorf("statusCode after second call: got %d, want %d", rw.statusCode, http.StatusNotFound)
		}
	})

	t.Run("implicit 200 on Write", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr}

		rw.Write([]byte("hello"))
		if rw.statusCode != http.StatusOK {
			t.Errorf("statusCode: got %d, want %d", rw.statusCode, http.StatusOK)
		}
	})
}

func TestLoggerPassesThrough(t *testing.T) {
	inner, called := okHandler()
	handler := Logger(inner)

	req := httptest.NewRequest(http.MethodGet, "/categorias", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if !*called {
		t.Error("next handler should have been called")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
}
