package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskmanager/internal/models"
	"taskmanager/internal/service"
)

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	t.Run("success returns plain-text body", func(t *testing.T) {
		auth := &mockAuth{signUpID: 42}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/register", `{"username":"alice","password":"pw"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if w.Body.String() != "User Created" {
			t.Fatalf("expected body %q, got %q", "User Created", w.Body.String())
		}
		if auth.lastSignUpUsername != "alice" || auth.lastSignUpPassword != "pw" {
			t.Fatalf("unexpected SignUp call: %q/%q", auth.lastSignUpUsername, auth.lastSignUpPassword)
		}
	})

	t.Run("duplicate username yields 409", func(t *testing.T) {
		auth := &mockAuth{signUpErr: models.ErrUsernameTaken}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/register", `{"username":"alice","password":"pw"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d (body=%s)", w.Code, w.Body.String())
		}
		var out struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.Error != models.ErrUsernameTaken.Error() {
			t.Fatalf("unexpected error body: %q", out.Error)
		}
	})

	t.Run("missing fields yield 400", func(t *testing.T) {
		auth := &mockAuth{}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/register", `{"username":"alice"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("storage failure yields 500 with generic body", func(t *testing.T) {
		auth := &mockAuth{signUpErr: errors.New("disk is full: /var/lib/task_manager.db")}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/register", `{"username":"alice","password":"pw"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("task_manager.db")) {
			t.Fatalf("storage error detail leaked to client: %s", w.Body.String())
		}
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("success returns token as bare JSON string", func(t *testing.T) {
		auth := &mockAuth{genTokenToken: "tok123"}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/login", `{"username":"alice","password":"pw"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var token string
		if err := json.Unmarshal(w.Body.Bytes(), &token); err != nil {
			t.Fatalf("body is not a JSON string: %s", w.Body.String())
		}
		if token != "tok123" {
			t.Fatalf("expected token tok123, got %q", token)
		}
	})

	t.Run("unknown username and wrong password are indistinguishable", func(t *testing.T) {
		for name, genErr := range map[string]error{
			"unknown username": service.ErrUserNotFound,
			"wrong password":   service.ErrInvalidPassword,
		} {
			auth := &mockAuth{genTokenErr: genErr}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := postJSON(r, "/login", `{"username":"x","password":"y"}`)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("%s: expected 401, got %d", name, w.Code)
			}
			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != errInvalidCredentials {
				t.Fatalf("%s: expected uniform body %q, got %q", name, errInvalidCredentials, out.Error)
			}
		}
	})

	t.Run("storage failure yields 500", func(t *testing.T) {
		auth := &mockAuth{genTokenErr: errors.New("db locked")}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/login", `{"username":"x","password":"y"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("invalid body yields 400", func(t *testing.T) {
		auth := &mockAuth{}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/login", `{"username":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad body, got %d", w.Code)
		}
	})
}
