package professional

import (
	"errors"
	"testing"

	"requesto/models"
)

type fakeProfessionalRepo struct {
	pros map[string]*models.Professional
}

func newFakeProfessionalRepo() *fakeProfessionalRepo {
	return &fakeProfessionalRepo{pros: map[string]*models.Professional{}}
}

func (r *fakeProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	if p, ok := r.pros[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProfessionalRepo) GetByLinkedUser(userID string) (*models.Professional, error) {
	for _, p := range r.pros {
		if p.LinkedUserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProfessionalRepo) GetByEmail(email string) (*models.Professional, error) {
	for _, p := range r.pros {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProfessionalRepo) GetAll() ([]models.Professional, error) {
	var out []models.Professional
	for _, p := range r.pros {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProfessionalRepo) Create(p *models.Professional) error {
	cp := *p
	r.pros[p.ID] = &cp
	return nil
}

func (r *fakeProfessionalRepo) Update(p *models.Professional) error {
	if _, ok := r.pros[p.ID]; !ok {
		return errors.New("professional not found")
	}
	cp := *p
	r.pros[p.ID] = &cp
	return nil
}

type fakeUserDir struct {
	users map[string]models.User
}

func (d *fakeUserDir) GetByID(id string) (*models.User, error) {
	if u, ok := d.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}
func (d *fakeUserDir) GetByEmail(string) (*models.User, error)      { return nil, nil }
func (d *fakeUserDir) GetAll() ([]models.User, error)               { return nil, nil }
func (d *fakeUserDir) Create(*models.User) error                    { return nil }
func (d *fakeUserDir) SetRole(string, string) (*models.User, error) { return nil, nil }
func (d *fakeUserDir) SetBanned(string, bool) (*models.User, error) { return nil, nil }
func (d *fakeUserDir) ClaimAdminBootstrap(string) (bool, error)     { return false, nil }

func newTestService(users map[string]models.User) (*DefaultProfessionalService, *fakeProfessionalRepo) {
	repo := newFakeProfessionalRepo()
	return &DefaultProfessionalService{
		Repo:  repo,
		Users: &fakeUserDir{users: users},
	}, repo
}

func TestCreateOwnProfileIsIdempotent(t *testing.T) {
	svc, repo := newTestService(map[string]models.User{
		"u1": {ID: "u1", Email: "pro@example.com", Name: "Pro", Role: models.RoleProvider},
	})

	first, err := svc.CreateOwnProfile("u1")
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := svc.CreateOwnProfile("u1")
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	if len(repo.pros) != 1 {
		t.Fatalf("have %d professionals after two creates, want 1", len(repo.pros))
	}
	if first.ID != second.ID {
		t.Errorf("second create returned a different profile: %q vs %q", first.ID, second.ID)
	}
	if first.LinkedUserID != "u1" {
		t.Errorf("linkedUserId = %q, want u1", first.LinkedUserID)
	}
}

func TestCreateOwnProfileDefaults(t *testing.T) {
	svc, _ := newTestService(map[string]models.User{
		"u1": {ID: "u1", Email: "pro@example.com", Name: "Pro", Role: models.RoleProvider},
	})

	pro, err := svc.CreateOwnProfile("u1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !pro.Available || pro.Rating != 5 || pro.ReviewCount != 0 || pro.Verified {
		t.Errorf("unexpected defaults: %+v", pro)
	}
	if len(pro.Services) != 3 {
		t.Fatalf("have %d default services, want 3", len(pro.Services))
	}
	for _, s := range pro.Services {
		if s.Price != nil {
			t.Errorf("default service %s has price %v, want nil", s.Type, *s.Price)
		}
	}
	if len(pro.Languages) != 1 || pro.Languages[0] != "English" {
		t.Errorf("languages = %v, want [English]", pro.Languages)
	}
	if len(pro.Specialties) != 0 {
		t.Errorf("specialties = %v, want empty", pro.Specialties)
	}
}

func TestCreateOwnProfileLinksExistingByEmail(t *testing.T) {
	svc, repo := newTestService(map[string]models.User{
		"u1": {ID: "u1", Email: "seeded@example.com", Name: "Owner", Picture: "pic", Role: models.RoleProvider},
	})
	repo.pros["seed-1"] = &models.Professional{
		ID:    "seed-1",
		Email: "seeded@example.com",
		Title: "Seeded Consultant",
	}

	pro, err := svc.CreateOwnProfile("u1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if pro.ID != "seed-1" {
		t.Fatalf("claimed profile id = %q, want seed-1", pro.ID)
	}
	if pro.LinkedUserID != "u1" {
		t.Errorf("linkedUserId = %q, want u1", pro.LinkedUserID)
	}
	// Missing display fields are back-filled from the account.
	if pro.Name != "Owner" || pro.Photo != "pic" {
		t.Errorf("back-fill missing: %+v", pro)
	}
	if stored := repo.pros["seed-1"]; stored.LinkedUserID != "u1" {
		t.Error("link was not persisted")
	}
}

func TestGetOwnProfile(t *testing.T) {
	svc, repo := newTestService(map[string]models.User{
		"u1": {ID: "u1", Email: "pro@example.com", Role: models.RoleProvider},
	})

	t.Run("unknown user", func(t *testing.T) {
		if _, err := svc.GetOwnProfile("ghost"); !errors.Is(err, ErrOwnerNotFound) {
			t.Errorf("got %v, want ErrOwnerNotFound", err)
		}
	})

	t.Run("no profile yet", func(t *testing.T) {
		if _, err := svc.GetOwnProfile("u1"); !errors.Is(err, ErrNoProfileYet) {
			t.Errorf("got %v, want ErrNoProfileYet", err)
		}
	})

	t.Run("resolves and persists email match", func(t *testing.T) {
		repo.pros["p1"] = &models.Professional{ID: "p1", Email: "pro@example.com"}
		pro, err := svc.GetOwnProfile("u1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if pro.ID != "p1" || pro.LinkedUserID != "u1" {
			t.Errorf("resolved %+v, want p1 linked to u1", pro)
		}
		if repo.pros["p1"].LinkedUserID != "u1" {
			t.Error("email match was not back-filled into storage")
		}
	})
}

func TestUpdateOwnProfilePartialPatch(t *testing.T) {
	svc, repo := newTestService(map[string]models.User{
		"u1": {ID: "u1", Email: "pro@example.com", Role: models.RoleProvider},
	})
	priceVal := 900.0
	repo.pros["p1"] = &models.Professional{
		ID:           "p1",
		LinkedUserID: "u1",
		Email:        "pro@example.com",
		Name:         "Keep Name",
		Title:        "Keep Title",
		Bio:          "old bio",
		Available:    true,
		Services:     []models.ServicePricing{{Type: models.ServiceCall, Label: "Call", Price: &priceVal, Duration: "45 min"}},
		Specialties:  []string{"Tax"},
		Languages:    []string{"English", "Hindi"},
	}

	bio := "x"
	pro, err := svc.UpdateOwnProfile("u1", models.ProfilePatch{Bio: &bio})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if pro.Bio != "x" {
		t.Errorf("bio = %q, want %q", pro.Bio, "x")
	}
	if pro.Name != "Keep Name" || pro.Title != "Keep Title" || !pro.Available {
		t.Errorf("untouched scalar fields changed: %+v", pro)
	}
	if len(pro.Services) != 1 || len(pro.Specialties) != 1 || len(pro.Languages) != 2 {
		t.Errorf("untouched array fields changed: %+v", pro)
	}
}

func TestUpdateOwnProfileReplacesArraysWholesale(t *testing.T) {
	svc, repo := newTestService(map[string]models.User{
		"u1": {ID: "u1", Email: "pro@example.com", Role: models.RoleProvider},
	})
	repo.pros["p1"] = &models.Professional{
		ID:           "p1",
		LinkedUserID: "u1",
		Specialties:  []string{"Tax", "Retirement"},
	}

	specialties := []string{"Contracts"}
	pro, err := svc.UpdateOwnProfile("u1", models.ProfilePatch{Specialties: &specialties})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(pro.Specialties) != 1 || pro.Specialties[0] != "Contracts" {
		t.Errorf("specialties = %v, want [Contracts]", pro.Specialties)
	}
}

func TestUpdateOwnProfileWithoutProfile(t *testing.T) {
	svc, _ := newTestService(map[string]models.User{
		"u1": {ID: "u1", Email: "pro@example.com", Role: models.RoleProvider},
	})
	bio := "x"
	if _, err := svc.UpdateOwnProfile("u1", models.ProfilePatch{Bio: &bio}); !errors.Is(err, ErrNoProfileYet) {
		t.Errorf("got %v, want ErrNoProfileYet", err)
	}
}

func TestAdminCreate(t *testing.T) {
	svc, _ := newTestService(nil)

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.AdminCreate(models.AdminProfessionalInput{Name: "", Title: "X"})
		var v ValidationError
		if !errors.As(err, &v) {
			t.Errorf("got %v, want ValidationError", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := svc.AdminCreate(models.AdminProfessionalInput{Name: "A", Title: ""})
		var v ValidationError
		if !errors.As(err, &v) {
			t.Errorf("got %v, want ValidationError", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		pro, err := svc.AdminCreate(models.AdminProfessionalInput{Name: "A", Title: "B"})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if !pro.Verified || pro.Rating != 5.0 || pro.ReviewCount != 0 {
			t.Errorf("admin defaults wrong: %+v", pro)
		}
		if !pro.Available || pro.AvailabilityText != "Available" {
			t.Errorf("availability defaults wrong: %+v", pro)
		}
		if len(pro.Languages) != 1 || pro.Languages[0] != "English" {
			t.Errorf("languages = %v, want [English]", pro.Languages)
		}
		if pro.Services == nil || pro.Specialties == nil {
			t.Error("array fields must default to empty, not nil")
		}
		if pro.ID == "" {
			t.Error("professional id must be generated")
		}
	})
}
