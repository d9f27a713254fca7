package directory_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"hospital-portal/internal/api"
	"hospital-portal/internal/directory"
	"hospital-portal/internal/mockstore"
	"hospital-portal/internal/model"
)

func setup(t *testing.T) (*directory.Service, *api.Client, *mockstore.Store) {
	t.Helper()
	store := mockstore.New(nil)
	ts := httptest.NewServer(store.Router())
	t.Cleanup(ts.Close)
	client := api.NewClient(ts.URL, nil)
	return directory.NewService(client), client, store
}

func TestRegister(t *testing.T) {
	svc, _, _ := setup(t)

	u, err := svc.Register(context.Background(), "Pat", "pat@test.com", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != model.RolePatient {
		t.Fatalf("registration must create a patient, got %s", u.Role)
	}
	if u.ID == "" {
		t.Fatal("no id assigned")
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc, client, _ := setup(t)

	tests := []struct {
		name, userName, email, password string
	}{
		{"empty name", "", "a@b.com", "pw"},
		{"empty email", "A", "", "pw"},
		{"empty password", "A", "a@b.com", ""},
		{"whitespace only", "  ", "a@b.com", "pw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			var ve *model.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}

	users, err := client.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("invalid registrations must not create users: %+v", users)
	}
}

func TestRegisterDuplicateEmailDoesNotCreate(t *testing.T) {
	svc, client, store := setup(t)
	store.Seed(model.User{Name: "Pat", Email: "pat@test.com", Password: "pw", Role: model.RolePatient})

	_, err := svc.Register(context.Background(), "Imposter", "PAT@test.com", "other")
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	users, err := client.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("duplicate registration must not call create: %+v", users)
	}
}

func TestAddDoctor(t *testing.T) {
	svc, _, _ := setup(t)

	d, err := svc.AddDoctor(context.Background(), "Dr. Gray", "g@test.com", "pw", "Cardiologist")
	if err != nil {
		t.Fatalf("add doctor: %v", err)
	}
	if d.Role != model.RoleDoctor || d.Trait != "Cardiologist" {
		t.Fatalf("unexpected doctor: %+v", d)
	}

	if _, err := svc.AddDoctor(context.Background(), "Dr. X", "x@test.com", "pw", ""); err == nil {
		t.Fatal("trait is required for doctors")
	}
}

func TestRemoveDoctor(t *testing.T) {
	svc, _, store := setup(t)
	doc := store.Seed(model.User{Name: "Dr. Gray", Email: "g@test.com", Role: model.RoleDoctor})

	if err := svc.RemoveDoctor(context.Background(), doc.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	doctors, err := svc.Doctors(context.Background())
	if err != nil {
		t.Fatalf("doctors: %v", err)
	}
	if len(doctors) != 0 {
		t.Fatalf("doctor still listed: %+v", doctors)
	}
}

func TestProjections(t *testing.T) {
	svc, _, store := setup(t)
	store.Seed(model.User{Name: "Admin", Email: "a@test.com", Role: model.RoleAdmin})
	store.Seed(model.User{Name: "Dr. Gray", Email: "g@test.com", Role: model.RoleDoctor})
	store.Seed(model.User{Name: "Pat", Email: "p@test.com", Role: model.RolePatient})

	doctors, err := svc.Doctors(context.Background())
	if err != nil {
		t.Fatalf("doctors: %v", err)
	}
	patients, err := svc.Patients(context.Background())
	if err != nil {
		t.Fatalf("patients: %v", err)
	}
	if len(doctors) != 1 || doctors[0].Name != "Dr. Gray" {
		t.Fatalf("unexpected doctors: %+v", doctors)
	}
	if len(patients) != 1 || patients[0].Name != "Pat" {
		t.Fatalf("unexpected patients: %+v", patients)
	}
}
