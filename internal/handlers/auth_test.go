package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/models"
	"taskboard/internal/service"
)

func postJSON(r http.Handler, path, body string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return m
}

func TestSignUp_Success(t *testing.T) {
	auth := &mockAuth{signUpID: "user-1"}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/user/signup", `{"username":"alice","email":"alice@x.com","password":"secret1"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastSignUpUsername != "alice" || auth.lastSignUpEmail != "alice@x.com" {
		t.Fatalf("service received %q / %q", auth.lastSignUpUsername, auth.lastSignUpEmail)
	}
}

func TestSignUp_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"short username", `{"username":"ab","email":"a@x.com","password":"secret1"}`},
		{"bad email", `{"username":"alice","email":"not-an-email","password":"secret1"}`},
		{"short password", `{"username":"alice","email":"a@x.com","password":"12345"}`},
		{"empty body", `{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := postJSON(r, "/user/signup", tc.body, nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			// the service must never be reached on validation failure
			if auth.lastSignUpUsername != "" {
				t.Fatalf("SignUp called with %q despite invalid input", auth.lastSignUpUsername)
			}
			m := decodeBody(t, w)
			if m["message"] != msgInvalidInput {
				t.Fatalf("expected %q message, got %v", msgInvalidInput, m["message"])
			}
			if _, ok := m["error"]; !ok {
				t.Fatalf("expected field-level error detail, body=%s", w.Body.String())
			}
		})
	}
}

func TestSignUp_Conflict(t *testing.T) {
	for _, sentinel := range []error{service.ErrUsernameTaken, service.ErrEmailTaken} {
		auth := &mockAuth{signUpErr: sentinel}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/user/signup", `{"username":"alice","email":"alice@x.com","password":"secret1"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("%v: expected 409, got %d", sentinel, w.Code)
		}
	}
}

func TestSignIn_SuccessReturnsToken(t *testing.T) {
	auth := &mockAuth{genToken: "tok123"}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/user/signin", `{"email":"alice@x.com","password":"secret1"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	m := decodeBody(t, w)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}
	if m["message"] == nil {
		t.Fatalf("expected message in body, got %s", w.Body.String())
	}
}

func TestSignIn_Failures(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
	}{
		{"unknown email", `{"email":"ghost@x.com","password":"secret1"}`, service.ErrUserNotFound, http.StatusNotFound},
		{"wrong password", `{"email":"alice@x.com","password":"wrong12"}`, service.ErrInvalidPassword, http.StatusUnauthorized},
		{"invalid email shape", `{"email":"nope","password":"secret1"}`, nil, http.StatusBadRequest},
		{"missing password", `{"email":"alice@x.com"}`, nil, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{genTokenErr: tc.svcErr}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := postJSON(r, "/user/signin", tc.body, nil)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}
			m := decodeBody(t, w)
			if _, ok := m["token"]; ok {
				t.Fatalf("no token must be issued on failure, body=%s", w.Body.String())
			}
		})
	}
}

func TestUserInfo_ReturnsProfileWithoutHash(t *testing.T) {
	auth := &mockAuth{
		parseID: "user-7",
		infoUser: &models.User{
			ID:           "user-7",
			Username:     "alice",
			Email:        "alice@x.com",
			PasswordHash: "$2a$10$secret",
		},
	}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/info", nil)
	req.Header = authHeader("sometoken")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastInfoID != "user-7" {
		t.Fatalf("expected lookup of parsed user id, got %q", auth.lastInfoID)
	}
	m := decodeBody(t, w)
	user, ok := m["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user object, body=%s", w.Body.String())
	}
	if user["username"] != "alice" || user["email"] != "alice@x.com" {
		t.Fatalf("unexpected profile: %v", user)
	}
	if _, ok := user["passwordHash"]; ok {
		t.Fatalf("password hash leaked in response: %v", user)
	}
}

func TestUserInfo_UnknownUser(t *testing.T) {
	auth := &mockAuth{parseID: "user-7", infoErr: service.ErrUserNotFound}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/info", nil)
	req.Header = authHeader("sometoken")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
