package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func newGateContext(user *domain.User) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(userContextKey, user)
	}
	return c
}

func TestRequireAuth(t *testing.T) {
	if err := RequireAuth(okHandler)(newGateContext(nil)); err == nil {
		t.Fatalf("expected error for anonymous request")
	} else if httpErr, ok := err.(*echo.HTTPError); !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}

	if err := RequireAuth(okHandler)(newGateContext(&domain.User{ID: "u1"})); err != nil {
		t.Fatalf("expected authenticated request to pass, got %v", err)
	}
}

func TestRequireAdmin(t *testing.T) {
	admin := &domain.User{ID: "u1", Capabilities: []domain.Capability{domain.CapabilityAdmin}}
	if err := RequireAdmin(okHandler)(newGateContext(admin)); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}

	if err := RequireAdmin(okHandler)(newGateContext(&domain.User{ID: "u2"})); err == nil {
		t.Fatalf("expected error for non-admin")
	} else if httpErr, ok := err.(*echo.HTTPError); !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}

	if err := RequireAdmin(okHandler)(newGateContext(nil)); err == nil {
		t.Fatalf("expected error for anonymous request")
	} else if httpErr, ok := err.(*echo.HTTPError); !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before the admin check, got %v", err)
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	self := &domain.User{ID: "u1", Email: "self@a.com"}
	admin := &domain.User{ID: "u9", Email: "admin@a.com", Capabilities: []domain.Capability{domain.CapabilityAdmin}}

	cases := []struct {
		name     string
		user     *domain.User
		param    string
		wantCode int // 0 means the request must pass
	}{
		{"own id", self, "u1", 0},
		{"own email", self, "self@a.com", 0},
		{"admin on someone else", admin, "u1", 0},
		{"other user", self, "u2", http.StatusForbidden},
		{"anonymous", nil, "u1", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newGateContext(tc.user)
			c.SetParamNames("uid")
			c.SetParamValues(tc.param)

			err := RequireSelfOrAdmin("uid")(okHandler)(c)
			if tc.wantCode == 0 {
				if err != nil {
					t.Fatalf("expected pass, got %v", err)
				}
				return
			}
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != tc.wantCode {
				t.Fatalf("expected %d, got %v", tc.wantCode, err)
			}
		})
	}
}
