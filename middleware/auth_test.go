package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func authRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/sync", OriginAuth(origins), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestOriginAuthAllowsListedOrigin(t *testing.T) {
	r := authRouter([]string{"https://catalog.example.com"})

	req := httptest.NewRequest("POST", "/sync", nil)
	req.Header.Set("Origin", "https://catalog.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for allow-listed origin, got %d", w.Code)
	}
}

func TestOriginAuthWildcard(t *testing.T) {
	r := authRouter([]string{"https://*.preview.example.com"})

	req := httptest.NewRequest("POST", "/sync", nil)
	req.Header.Set("Origin", "https://pr-42.preview.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for wildcard origin match, got %d", w.Code)
	}
}

func TestOriginAuthAcceptsBearerShape(t *testing.T) {
	r := authRouter(nil)

	// The token is not verified at this layer; any bearer-shaped header
	// passes. That is the contract, not an oversight.
	req := httptest.NewRequest("POST", "/sync", nil)
	req.Header.Set("Authorization", "Bearer anything-at-all")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for bearer-shaped header, got %d", w.Code)
	}
}

func TestOriginAuthRejectsOtherwise(t *testing.T) {
	r := authRouter([]string{"https://catalog.example.com"})

	cases := []func(*http.Request){
		func(r *http.Request) {},
		func(r *http.Request) { r.Header.Set("Origin", "https://evil.example.com") },
		func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcjpwYXNz") },
		func(r *http.Request) { r.Header.Set("Authorization", "Bearer ") },
	}

	for i, decorate := range cases {
		req := httptest.NewRequest("POST", "/sync", nil)
		decorate(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("case %d: expected 401, got %d", i, w.Code)
		}
	}
}
