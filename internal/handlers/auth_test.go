package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecotrack/internal/service"
)

func TestAuthHandlers_SignUp(t *testing.T) {
	auth := &mockAuth{signUpID: 3}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", bytes.NewBufferString(`{"username":"sam","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("sign-up status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["id"] != 3 {
		t.Errorf("id: want 3, got %d", resp["id"])
	}
	if auth.lastSignUpUsername != "sam" {
		t.Errorf("username passed to SignUp: %q", auth.lastSignUpUsername)
	}
}

func TestAuthHandlers_SignUp_MissingFields(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", bytes.NewBufferString(`{"username":"sam"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 for missing password, got %d", w.Code)
	}
}

func TestAuthHandlers_SignIn(t *testing.T) {
	t.Run("returns token", func(t *testing.T) {
		auth := &mockAuth{genTokenToken: "jwt-token"}
		s := &service.Service{Authorization: auth}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", bytes.NewBufferString(`{"username":"sam","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("sign-in status=%d, body=%s", w.Code, w.Body.String())
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["token"] != "jwt-token" {
			t.Errorf("token: got %q", resp["token"])
		}
	})

	t.Run("bad credentials are a 401", func(t *testing.T) {
		auth := &mockAuth{genTokenErr: service.ErrInvalidPassword}
		s := &service.Service{Authorization: auth}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", bytes.NewBufferString(`{"username":"sam","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("want 401, got %d", w.Code)
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != "invalid credentials" {
			t.Errorf("error body: %q", resp["error"])
		}
	})
}

func TestUserIdMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", parseErr: errors.New("bad signature"), wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseID: 7, parseErr: tc.parseErr}
			s := &service.Service{
				Authorization: auth,
				Profile:       &mockProfile{},
			}
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("status: want %d, got %d, body=%s", tc.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}
