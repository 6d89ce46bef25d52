package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	j := NewJWT("test-secret")

	token, err := j.Sign("user-42")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	userID, err := j.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("user id = %q, want user-42", userID)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, _ := NewJWT("secret-a").Sign("user-42")

	if _, err := NewJWT("secret-b").Verify(token); err == nil {
		t.Fatal("expected verification failure with a different secret")
	}
}

func TestVerifyGarbage(t *testing.T) {
	if _, err := NewJWT("secret").Verify("not-a-token"); err == nil {
		t.Fatal("expected verification failure")
	}
}

func TestContextRoundTrip(t *testing.T) {
	ctx := WithUser(context.Background(), "user-1")
	if got := UserID(ctx); got != "user-1" {
		t.Errorf("user id = %q, want user-1", got)
	}
	if got := UserID(context.Background()); got != "" {
		t.Errorf("empty context should yield \"\", got %q", got)
	}
}

func TestRequireAuth(t *testing.T) {
	j := NewJWT("test-secret")
	token, _ := j.Sign("user-7")

	var seen string
	handler := RequireAuth(j)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserID(r.Context())
	}))

	// Bearer header
	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen != "user-7" {
		t.Errorf("handler saw user %q, want user-7", seen)
	}

	// Query parameter fallback
	seen = ""
	req = httptest.NewRequest("GET", "/api/me?token="+token, nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || seen != "user-7" {
		t.Errorf("query token: status = %d, user = %q", rec.Code, seen)
	}
}

func TestRequireAuthRejects(t *testing.T) {
	j := NewJWT("test-secret")

	handler := RequireAuth(j)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a valid token")
	}))

	for _, header := range []string{"", "Bearer bogus", "Basic abc"} {
		req := httptest.NewRequest("GET", "/api/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}
