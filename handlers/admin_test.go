package handlers

import (
	"net/http"
	"testing"

	"requesto/middleware"
	"requesto/models"
	"requesto/services/user"

	"github.com/gin-gonic/gin"
)

func newAdminRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	users := &user.DefaultUserService{Repo: repo}
	h := NewAdminHandler(users, nil)

	router := gin.New()
	admin := router.Group("/api/admin")
	admin.Use(middleware.Authenticate(repo), middleware.RequireRoles(models.RoleAdmin))
	admin.PATCH("/users/:userId/role", h.UpdateRole)
	admin.PATCH("/users/:userId/ban", h.ToggleBan)
	return router
}

func TestAdminRoutesAuthentication(t *testing.T) {
	repo := newFakeUserRepo(
		&models.User{ID: "admin-1", Email: "admin@x.com", Role: models.RoleAdmin},
		&models.User{ID: "u1", Email: "u1@x.com", Role: models.RoleUser},
		&models.User{ID: "banned-1", Email: "ban@x.com", Role: models.RoleAdmin, Banned: true},
	)
	router := newAdminRouter(repo)

	tests := []struct {
		name       string
		header     map[string]string
		wantStatus int
	}{
		{"missing header", nil, http.StatusUnauthorized},
		{"unknown account", map[string]string{"X-User-ID": "ghost"}, http.StatusUnauthorized},
		{"banned account", map[string]string{"X-User-ID": "banned-1"}, http.StatusForbidden},
		{"insufficient role", map[string]string{"X-User-ID": "u1"}, http.StatusForbidden},
		{"admin passes", map[string]string{"X-User-ID": "admin-1"}, http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPatch, "/api/admin/users/u1/role", `{"role":"provider"}`, tc.header)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d: %s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestAdminCannotActOnSelf(t *testing.T) {
	repo := newFakeUserRepo(
		&models.User{ID: "admin-1", Email: "admin@x.com", Role: models.RoleAdmin},
	)
	router := newAdminRouter(repo)
	headers := map[string]string{"X-User-ID": "admin-1"}

	t.Run("own role", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, "/api/admin/users/admin-1/role", `{"role":"user"}`, headers)
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403: %s", w.Code, w.Body.String())
		}
		if repo.users["admin-1"].Role != models.RoleAdmin {
			t.Error("self role change was applied")
		}
	})

	t.Run("own ban", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, "/api/admin/users/admin-1/ban", "", headers)
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403: %s", w.Code, w.Body.String())
		}
		if repo.users["admin-1"].Banned {
			t.Error("self ban was applied")
		}
	})
}

func TestAdminUpdateRoleValidation(t *testing.T) {
	repo := newFakeUserRepo(
		&models.User{ID: "admin-1", Email: "admin@x.com", Role: models.RoleAdmin},
		&models.User{ID: "u1", Email: "u1@x.com", Role: models.RoleUser},
	)
	router := newAdminRouter(repo)
	headers := map[string]string{"X-User-ID": "admin-1"}

	t.Run("invalid role", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, "/api/admin/users/u1/role", `{"role":"superuser"}`, headers)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, "/api/admin/users/ghost/role", `{"role":"provider"}`, headers)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404: %s", w.Code, w.Body.String())
		}
	})

	t.Run("promote", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, "/api/admin/users/u1/role", `{"role":"provider"}`, headers)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if repo.users["u1"].Role != models.RoleProvider {
			t.Errorf("stored role = %q, want provider", repo.users["u1"].Role)
		}
	})
}
