package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireOwner(t *testing.T) {
	var seen string
	handler := RequireOwner(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetOwnerID(r.Context())
	}))

	t.Run("missing header rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/turn", nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("blank header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/turn", nil)
		req.Header.Set(OwnerHeader, "   ")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("owner reaches the handler context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/turn", nil)
		req.Header.Set(OwnerHeader, "u1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if seen != "u1" {
			t.Errorf("owner in context = %q, want u1", seen)
		}
	})
}
