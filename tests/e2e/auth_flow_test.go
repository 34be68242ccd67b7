package e2e

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestAuthFlow_RegisterLoginMe(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	suffix := time.Now().Format("150405.000000")
	email := "flow-" + suffix + "@example.com"

	var registered struct {
		AccessToken string `json:"accessToken"`
		User        struct {
			ID       string `json:"id"`
			Email    string `json:"email"`
			Username string `json:"username"`
		} `json:"user"`
	}
	status := c.do(http.MethodPost, "/auth/register", map[string]string{
		"email":    strings.ToUpper(email),
		"username": "flowuser-" + suffix,
		"password": "password123",
	}, &registered)
	if status != http.StatusCreated {
		t.Fatalf("register: expected status 201, got %d", status)
	}
	if registered.User.Email != email {
		t.Errorf("expected email normalized to %q, got %q", email, registered.User.Email)
	}

	// Duplicate registration conflicts.
	var dup map[string]string
	status = c.do(http.MethodPost, "/auth/register", map[string]string{
		"email":    email,
		"username": "other-" + suffix,
		"password": "password123",
	}, &dup)
	if status != http.StatusConflict {
		t.Errorf("duplicate register: expected status 409, got %d", status)
	}

	var login struct {
		AccessToken string `json:"accessToken"`
	}
	status = c.do(http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, &login)
	if status != http.StatusOK {
		t.Fatalf("login: expected status 200, got %d", status)
	}
	if login.AccessToken == "" {
		t.Fatal("login: expected non-empty access token")
	}

	c.token = login.AccessToken

	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	status = c.do(http.MethodGet, "/auth/me", nil, &me)
	if status != http.StatusOK {
		t.Fatalf("me: expected status 200, got %d", status)
	}
	if me.ID != registered.User.ID {
		t.Errorf("expected user ID %s, got %s", registered.User.ID, me.ID)
	}
}

func TestAuthFlow_WrongPassword(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)
	c.register()

	var me struct {
		Email string `json:"email"`
	}
	if status := c.do(http.MethodGet, "/auth/me", nil, &me); status != http.StatusOK {
		t.Fatalf("me: expected status 200, got %d", status)
	}

	var errResp map[string]string
	status := c.do(http.MethodPost, "/auth/login", map[string]string{
		"email":    me.Email,
		"password": "wrong-password",
	}, &errResp)
	if status != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", status)
	}
}

func TestAuth_ProtectedRouteWithoutToken(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	var errResp map[string]string
	if status := c.do(http.MethodGet, "/todos", nil, &errResp); status != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", status)
	}
}
