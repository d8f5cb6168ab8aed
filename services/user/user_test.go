package user

import (
	"errors"
	"testing"

	"requesto/models"
	"requesto/services/identity"
)

type fakeUserRepo struct {
	users   map[string]*models.User
	claimed bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) SetRole(id, role string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u.Role = role
	copy := *u
	return &copy, nil
}

func (r *fakeUserRepo) SetBanned(id string, banned bool) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u.Banned = banned
	copy := *u
	return &copy, nil
}

func (r *fakeUserRepo) ClaimAdminBootstrap(string) (bool, error) {
	if r.claimed {
		return false, nil
	}
	r.claimed = true
	return true, nil
}

func TestLoginOrCreateBootstrapAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	first, err := svc.LoginOrCreate(identity.Profile{Email: "first@example.com", Name: "First"})
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	if first.Role != models.RoleAdmin {
		t.Errorf("first account role = %q, want admin", first.Role)
	}

	second, err := svc.LoginOrCreate(identity.Profile{Email: "second@example.com", Name: "Second"})
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if second.Role != models.RoleUser {
		t.Errorf("second account role = %q, want user", second.Role)
	}

	admins := 0
	for _, u := range repo.users {
		if u.Role == models.RoleAdmin {
			admins++
		}
	}
	if admins != 1 {
		t.Errorf("found %d admins after serialized first logins, want exactly 1", admins)
	}
}

func TestLoginOrCreateKeepsStoredRecord(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["u1"] = &models.User{ID: "u1", Email: "a@example.com", Name: "Stored Name", Role: models.RoleProvider}
	svc := &DefaultUserService{Repo: repo}

	got, err := svc.LoginOrCreate(identity.Profile{Email: "a@example.com", Name: "Fresh Name"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	// Role and display fields are decided at first login, never refreshed.
	if got.Role != models.RoleProvider || got.Name != "Stored Name" {
		t.Errorf("stored record was refreshed from provider payload: %+v", got)
	}
	if len(repo.users) != 1 {
		t.Errorf("login created a duplicate account; have %d", len(repo.users))
	}
}

func TestLoginOrCreateRejectsBannedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["u1"] = &models.User{ID: "u1", Email: "banned@example.com", Role: models.RoleUser, Banned: true}
	svc := &DefaultUserService{Repo: repo}

	got, err := svc.LoginOrCreate(identity.Profile{Email: "banned@example.com"})
	var bannedErr AccountBannedError
	if !errors.As(err, &bannedErr) {
		t.Fatalf("got err %v, want AccountBannedError", err)
	}
	if got != nil {
		t.Errorf("banned login returned a user object: %+v", got)
	}
}

func TestSetUserRole(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["admin"] = &models.User{ID: "admin", Role: models.RoleAdmin}
	repo.users["target"] = &models.User{ID: "target", Role: models.RoleUser}
	svc := &DefaultUserService{Repo: repo}

	t.Run("promote", func(t *testing.T) {
		got, err := svc.SetUserRole("admin", "target", models.RoleProvider)
		if err != nil {
			t.Fatalf("SetUserRole failed: %v", err)
		}
		if got.Role != models.RoleProvider {
			t.Errorf("role = %q, want provider", got.Role)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := svc.SetUserRole("admin", "target", "superuser")
		var invalid InvalidRoleError
		if !errors.As(err, &invalid) {
			t.Errorf("got err %v, want InvalidRoleError", err)
		}
	})

	t.Run("self action forbidden", func(t *testing.T) {
		_, err := svc.SetUserRole("admin", "admin", models.RoleUser)
		var self ForbiddenSelfActionError
		if !errors.As(err, &self) {
			t.Errorf("got err %v, want ForbiddenSelfActionError", err)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := svc.SetUserRole("admin", "ghost", models.RoleUser)
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("got err %v, want ErrUserNotFound", err)
		}
	})
}

func TestToggleUserBan(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["admin"] = &models.User{ID: "admin", Role: models.RoleAdmin}
	repo.users["target"] = &models.User{ID: "target", Role: models.RoleUser}
	svc := &DefaultUserService{Repo: repo}

	banned, err := svc.ToggleUserBan("admin", "target")
	if err != nil {
		t.Fatalf("ToggleUserBan failed: %v", err)
	}
	if !banned.Banned {
		t.Error("first toggle should ban the account")
	}

	unbanned, err := svc.ToggleUserBan("admin", "target")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if unbanned.Banned {
		t.Error("second toggle should lift the ban")
	}

	if _, err := svc.ToggleUserBan("admin", "admin"); err == nil {
		t.Error("self ban toggle must be rejected")
	}
}
