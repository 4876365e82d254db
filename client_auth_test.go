package goConsole

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrEthical07/goConsole/session"
)

var testSigningKey = []byte("console-unit-test-key")

func mintToken(t *testing.T, sub, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func newTestClient(t *testing.T, handler http.Handler, customize ...func(*Builder)) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := defaultConfig()
	cfg.API.BaseURL = srv.URL

	builder := New().WithConfig(cfg).WithMetricsEnabled(true)
	for _, fn := range customize {
		fn(builder)
	}

	client, err := builder.Build()
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func adminProfile() map[string]any {
	return map[string]any{
		"id":        int64(7),
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
	}
}

func TestSignUpStoresAdminSession(t *testing.T) {
	tok := mintToken(t, "7", "admin", time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("signup method = %s", r.Method)
		}
		var body SignUpInput
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode signup body: %v", err)
		}
		if body.Email != "ada@example.com" {
			t.Errorf("signup email = %q", body.Email)
		}
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"access_token": tok,
			"admin":        adminProfile(),
		})
	})

	client := newTestClient(t, mux)
	result, err := client.SignUp(context.Background(), SignUpInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret1",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if result.Identity.Role != RoleAdmin {
		t.Fatalf("signup role = %q, want admin", result.Identity.Role)
	}
	if result.Token != tok {
		t.Fatal("signup result token mismatch")
	}

	identity, ok := client.CurrentIdentity()
	if !ok || identity.ID != 7 || identity.Role != RoleAdmin {
		t.Fatalf("current identity = %+v ok=%v", identity, ok)
	}
	if got := client.Metrics().Value(MetricSignupSuccess); got != 1 {
		t.Fatalf("signup success metric = %d", got)
	}
}

func TestSignUpForcesAdminRole(t *testing.T) {
	tok := mintToken(t, "7", "admin", time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		profile := adminProfile()
		profile["role"] = "user" // server noise must not demote the session
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"access_token": tok,
			"admin":        profile,
		})
	})

	client := newTestClient(t, mux)
	result, err := client.SignUp(context.Background(), SignUpInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if result.Identity.Role != RoleAdmin {
		t.Fatalf("role = %q, want admin", result.Identity.Role)
	}
}

func TestSignUpValidationRejectsBeforeNetwork(t *testing.T) {
	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("server must not be called for invalid input")
	})
	client := newTestClient(t, handler)

	cases := []SignUpInput{
		{FirstName: "", LastName: "L", Email: "a@b.co", Password: "secret1"},
		{FirstName: "A", LastName: "", Email: "a@b.co", Password: "secret1"},
		{FirstName: "A", LastName: "L", Email: "not-an-email", Password: "secret1"},
		{FirstName: "A", LastName: "L", Email: "a@b.co", Password: "short"},
		{FirstName: strings.Repeat("x", 51), LastName: "L", Email: "a@b.co", Password: "secret1"},
	}
	for i, input := range cases {
		if _, err := client.SignUp(context.Background(), input); !errors.Is(err, ErrSignupInvalid) {
			t.Fatalf("case %d: expected ErrSignupInvalid, got %v", i, err)
		}
	}

	if _, ok := client.CurrentIdentity(); ok {
		t.Fatal("failed signup must not create a session")
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, map[string]any{
			"message":    "Email already exists",
			"statusCode": http.StatusConflict,
			"error":      "Conflict",
		})
	})

	client := newTestClient(t, mux)
	_, err := client.SignUp(context.Background(), SignUpInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "secret1",
	})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Email already exists" {
		t.Fatalf("server message lost: %v", err)
	}
}

func TestLogInAdminVariant(t *testing.T) {
	tok := mintToken(t, "7", "admin", time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token": tok,
			"admin":        adminProfile(),
		})
	})

	client := newTestClient(t, mux)
	result, err := client.LogIn(context.Background(), "ada@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Identity.Role != RoleAdmin || result.Identity.ID != 7 {
		t.Fatalf("identity = %+v", result.Identity)
	}
	if !client.IsAuthenticated(context.Background()) {
		t.Fatal("fresh login reported unauthenticated")
	}
}

func TestLogInUserVariant(t *testing.T) {
	tok := mintToken(t, "11", "user", time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token": tok,
			"user": map[string]any{
				"id": int64(11), "firstName": "Lin", "lastName": "Chen", "email": "lin@example.com",
			},
		})
	})

	client := newTestClient(t, mux)
	result, err := client.LogIn(context.Background(), "lin@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Identity.Role != RoleUser || result.Identity.ID != 11 {
		t.Fatalf("identity = %+v", result.Identity)
	}
}

func TestLogInTokenOnlyFetchesProfile(t *testing.T) {
	tok := mintToken(t, "11", "user", time.Now().Add(time.Hour))

	var profileCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"access_token": tok})
	})
	mux.HandleFunc("/user/11", func(w http.ResponseWriter, r *http.Request) {
		profileCalls.Add(1)
		if got := r.Header.Get("Authorization"); got != "Bearer "+tok {
			t.Errorf("profile fetch auth header = %q", got)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": int64(11), "firstName": "Lin", "lastName": "Chen", "email": "lin@example.com",
		})
	})

	client := newTestClient(t, mux)
	result, err := client.LogIn(context.Background(), "lin@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Identity.Role != RoleUser || result.Identity.Email != "lin@example.com" {
		t.Fatalf("identity = %+v", result.Identity)
	}
	if profileCalls.Load() != 1 {
		t.Fatalf("profile fetched %d times", profileCalls.Load())
	}
}

func TestLogInInvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{
			"message":    "Invalid credentials",
			"statusCode": http.StatusUnauthorized,
		})
	})

	client := newTestClient(t, mux)
	_, err := client.LogIn(context.Background(), "ada@example.com", "wrongpw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, ok := client.CurrentIdentity(); ok {
		t.Fatal("failed login must not create a session")
	}
	if got := client.Metrics().Value(MetricLoginFailure); got != 1 {
		t.Fatalf("login failure metric = %d", got)
	}
}

func TestLogInTokenOnlyRejectsUnknownRole(t *testing.T) {
	tok := mintToken(t, "11", "superuser", time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"access_token": tok})
	})

	client := newTestClient(t, mux)
	_, err := client.LogIn(context.Background(), "lin@example.com", "secret1")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, ok := client.CurrentIdentity(); ok {
		t.Fatal("unusable token must not create a session")
	}
}

func TestLogOutBestEffort(t *testing.T) {
	tok := mintToken(t, "7", "admin", time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"access_token": tok, "admin": adminProfile()})
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]any{"message": "boom"})
	})

	client := newTestClient(t, mux)
	if _, err := client.LogIn(context.Background(), "ada@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := client.LogOut(context.Background()); err != nil {
		t.Fatalf("logout must swallow server failure, got %v", err)
	}
	if _, ok := client.CurrentIdentity(); ok {
		t.Fatal("session survived logout")
	}
	if got := client.Metrics().Value(MetricLogoutServerFailed); got != 1 {
		t.Fatalf("logout server failed metric = %d", got)
	}
	if got := client.Metrics().Value(MetricLogout); got != 1 {
		t.Fatalf("logout metric = %d", got)
	}

	// Logging out again is idempotent.
	if err := client.LogOut(context.Background()); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if got := client.Metrics().Value(MetricLogout); got != 1 {
		t.Fatalf("logout metric after second logout = %d", got)
	}
}

func TestLogOutUsesRoleEndpoint(t *testing.T) {
	tok := mintToken(t, "11", "user", time.Now().Add(time.Hour))

	var path atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token": tok,
			"user": map[string]any{
				"id": int64(11), "firstName": "Lin", "lastName": "Chen", "email": "lin@example.com",
			},
		})
	})
	mux.HandleFunc("/auth/user/logout", func(w http.ResponseWriter, r *http.Request) {
		path.Store(r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	client := newTestClient(t, mux)
	if _, err := client.LogIn(context.Background(), "lin@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := client.LogOut(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if got, _ := path.Load().(string); got != "/auth/user/logout" {
		t.Fatalf("logout path = %q", got)
	}
}

func TestLogOutAnonymousIsNoop(t *testing.T) {
	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("anonymous logout must not call the server")
	})
	client := newTestClient(t, handler)

	if err := client.LogOut(context.Background()); err != nil {
		t.Fatalf("anonymous logout: %v", err)
	}
}

func TestIsAuthenticatedExpiredTokenClearsSession(t *testing.T) {
	tok := mintToken(t, "7", "admin", time.Now().Add(-time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"access_token": tok, "admin": adminProfile()})
	})

	client := newTestClient(t, mux)
	if _, err := client.LogIn(context.Background(), "ada@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if client.IsAuthenticated(context.Background()) {
		t.Fatal("expired token reported authenticated")
	}
	if _, ok := client.CurrentIdentity(); ok {
		t.Fatal("expired session not cleared")
	}
	if got := client.Metrics().Value(MetricSessionExpired); got != 1 {
		t.Fatalf("session expired metric = %d", got)
	}
	// Repeat reads stay anonymous without firing the side effects again.
	if client.IsAuthenticated(context.Background()) {
		t.Fatal("cleared session reported authenticated")
	}
	if got := client.Metrics().Value(MetricSessionExpired); got != 1 {
		t.Fatalf("session expired metric after recheck = %d", got)
	}
}

func TestUnauthorizedInvalidatesOnce(t *testing.T) {
	tok := mintToken(t, "7", "admin", time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"access_token": tok, "admin": adminProfile()})
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"message": "Unauthorized"})
	})

	var hookFired atomic.Int64
	client := newTestClient(t, mux, func(b *Builder) {
		b.WithSessionInvalidHook(func() { hookFired.Add(1) })
	})
	if _, err := client.LogIn(context.Background(), "ada@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	const parallel = 8
	var wg sync.WaitGroup
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.ListUsers(context.Background()); !errors.Is(err, ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		}()
	}
	wg.Wait()

	if got := hookFired.Load(); got != 1 {
		t.Fatalf("invalid hook fired %d times, want 1", got)
	}
	if got := client.Metrics().Value(MetricSessionInvalidated); got != 1 {
		t.Fatalf("session invalidated metric = %d, want 1", got)
	}
	if _, ok := client.CurrentIdentity(); ok {
		t.Fatal("session survived 401")
	}
}

func TestRestoreSessionAcrossClients(t *testing.T) {
	tok := mintToken(t, "7", "admin", time.Now().Add(time.Hour))
	shared := session.NewMemoryStorage()

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"access_token": tok, "admin": adminProfile()})
	})

	first := newTestClient(t, mux, func(b *Builder) { b.WithStorage(shared) })
	if _, err := first.LogIn(context.Background(), "ada@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	second := newTestClient(t, mux, func(b *Builder) { b.WithStorage(shared) })
	if err := second.RestoreSession(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}

	identity, ok := second.CurrentIdentity()
	if !ok || identity.ID != 7 || identity.Role != RoleAdmin {
		t.Fatalf("restored identity = %+v ok=%v", identity, ok)
	}
	if got := second.Metrics().Value(MetricSessionRestored); got != 1 {
		t.Fatalf("session restored metric = %d", got)
	}
}

func TestAuthorizeViewRoleGate(t *testing.T) {
	tok := mintToken(t, "11", "user", time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token": tok,
			"user": map[string]any{
				"id": int64(11), "firstName": "Lin", "lastName": "Chen", "email": "lin@example.com",
			},
		})
	})

	client := newTestClient(t, mux)

	if err := client.AuthorizeView(context.Background()); !errors.Is(err, ErrAnonymous) {
		t.Fatalf("anonymous authorize = %v, want ErrAnonymous", err)
	}

	if _, err := client.LogIn(context.Background(), "lin@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := client.AuthorizeView(context.Background()); err != nil {
		t.Fatalf("authenticated-only authorize: %v", err)
	}
	if err := client.AuthorizeView(context.Background(), RoleUser); err != nil {
		t.Fatalf("matching role authorize: %v", err)
	}
	if err := client.AuthorizeView(context.Background(), RoleAdmin); !errors.Is(err, ErrRoleDenied) {
		t.Fatalf("mismatched role authorize = %v, want ErrRoleDenied", err)
	}

	if got := client.Metrics().Value(MetricGuardDeniedRole); got != 1 {
		t.Fatalf("guard denied role metric = %d", got)
	}
	if got := client.Metrics().Value(MetricGuardDeniedAnonymous); got != 1 {
		t.Fatalf("guard denied anonymous metric = %d", got)
	}
}

func TestSignupThenLogoutThenLoginSameAccount(t *testing.T) {
	tok := mintToken(t, "7", "admin", time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, map[string]any{"access_token": tok, "admin": adminProfile()})
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"access_token": tok, "admin": adminProfile()})
	})

	client := newTestClient(t, mux)
	ctx := context.Background()

	created, err := client.SignUp(ctx, SignUpInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if err := client.LogOut(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	back, err := client.LogIn(ctx, "ada@example.com", "secret1")
	if err != nil {
		t.Fatalf("login after logout: %v", err)
	}
	if back.Identity.ID != created.Identity.ID || back.Identity.Role != RoleAdmin {
		t.Fatalf("relogin identity = %+v, signup identity = %+v", back.Identity, created.Identity)
	}
}
