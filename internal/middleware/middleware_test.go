package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/property-booking/internal/auth"
)

func newAuthRouter(tokens *auth.JWT) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(tokens))
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewJWT("secret", time.Hour)
	valid, err := tokens.Issue("user-42")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name   string
		header string
		status int
		body   string
		code   string
	}{
		{name: "valid", header: "Bearer " + valid, status: http.StatusOK, body: "user-42"},
		{name: "lowercase scheme", header: "bearer " + valid, status: http.StatusOK, body: "user-42"},
		{name: "missing", header: "", status: http.StatusUnauthorized, code: "missing_authorization_header"},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized, code: "invalid_authorization_header"},
		{name: "bad token", header: "Bearer nope", status: http.StatusUnauthorized, code: "invalid_token"},
	}

	r := newAuthRouter(tokens)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			if tc.body != "" && rec.Body.String() != tc.body {
				t.Fatalf("expected body %q, got %q", tc.body, rec.Body.String())
			}
			if tc.code != "" && !strings.Contains(rec.Body.String(), `"error_code":"`+tc.code+`"`) {
				t.Fatalf("expected error_code %q, got %s", tc.code, rec.Body.String())
			}
		})
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		allowed []string
		method  string
		origin  string
		status  int
		echoed  bool
	}{
		{name: "preflight any origin", method: http.MethodOptions, origin: "https://app.example.com", status: http.StatusNoContent, echoed: true},
		{name: "listed origin", allowed: []string{"https://app.example.com/"}, method: http.MethodGet, origin: "https://app.example.com", status: http.StatusOK, echoed: true},
		{name: "unlisted origin", allowed: []string{"https://app.example.com"}, method: http.MethodGet, origin: "https://evil.example.com", status: http.StatusOK},
		{name: "unlisted preflight", allowed: []string{"https://app.example.com"}, method: http.MethodOptions, origin: "https://evil.example.com", status: http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORSMiddleware(tc.allowed))
			r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tc.method, "/x", nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			got := rec.Header().Get("Access-Control-Allow-Origin")
			if tc.echoed && got != tc.origin {
				t.Fatalf("origin not echoed, got %q", got)
			}
			if !tc.echoed && got != "" {
				t.Fatalf("origin must not be echoed, got %q", got)
			}
		})
	}
}
