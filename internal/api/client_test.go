package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-portal/internal/api"
	"hospital-portal/internal/mockstore"
	"hospital-portal/internal/model"
)

func newTestClient(t *testing.T) (*api.Client, *mockstore.Store) {
	t.Helper()
	store := mockstore.New(nil)
	ts := httptest.NewServer(store.Router())
	t.Cleanup(ts.Close)
	return api.NewClient(ts.URL, nil), store
}

func TestUserCRUD(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	created, err := c.CreateUser(ctx, model.User{
		Name: "Ada", Email: "ada@test.com", Password: "pw", Role: model.RolePatient,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.ID == "" {
		t.Fatal("store did not assign an id")
	}

	users, err := c.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 || users[0].Email != "ada@test.com" {
		t.Fatalf("unexpected users: %+v", users)
	}

	created.Name = "Ada L."
	updated, err := c.UpdateUser(ctx, created.ID, *created)
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.Name != "Ada L." || updated.ID != created.ID {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if err := c.DeleteUser(ctx, created.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	users, err = c.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty collection, got %+v", users)
	}
}

func TestFindUserByEmail(t *testing.T) {
	c, store := newTestClient(t)
	store.Seed(model.User{Name: "Ada", Email: "ada@test.com", Password: "pw", Role: model.RolePatient})

	u, err := c.FindUserByEmail(context.Background(), "ada@test.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if u.Name != "Ada" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := c.FindUserByEmail(context.Background(), "nobody@test.com"); err != api.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListDoctorsExcludesOtherRoles(t *testing.T) {
	c, store := newTestClient(t)
	store.Seed(model.User{Name: "Admin", Email: "a@test.com", Role: model.RoleAdmin})
	store.Seed(model.User{Name: "Dr. Gray", Email: "g@test.com", Role: model.RoleDoctor, Trait: "Cardiologist"})
	store.Seed(model.User{Name: "Pat", Email: "p@test.com", Role: model.RolePatient})

	doctors, err := c.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("list doctors: %v", err)
	}
	if len(doctors) != 1 || doctors[0].Name != "Dr. Gray" {
		t.Fatalf("unexpected doctors: %+v", doctors)
	}

	patients, err := c.ListPatients(context.Background())
	if err != nil {
		t.Fatalf("list patients: %v", err)
	}
	if len(patients) != 1 || patients[0].Name != "Pat" {
		t.Fatalf("unexpected patients: %+v", patients)
	}
}

func TestAppointmentRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	at := time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)
	created, err := c.CreateAppointment(ctx, model.Appointment{
		PatientID: "p1", DoctorID: "d1", Datetime: at, Status: model.StatusPending,
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	appts, err := c.ListAppointments(ctx)
	if err != nil {
		t.Fatalf("list appointments: %v", err)
	}
	var found *model.Appointment
	for i := range appts {
		if appts[i].ID == created.ID {
			found = &appts[i]
		}
	}
	if found == nil {
		t.Fatalf("created appointment not listed: %+v", appts)
	}
	if found.PatientID != "p1" || found.DoctorID != "d1" || found.Status != model.StatusPending {
		t.Fatalf("round trip mismatch: %+v", found)
	}
	if !found.Datetime.Equal(at) {
		t.Fatalf("datetime mismatch: got %v want %v", found.Datetime, at)
	}
}

func TestTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := api.NewClient(ts.URL, nil)
	_, err := c.ListUsers(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !api.IsTransport(err) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
}

func TestTransportErrorOnNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing listening anymore

	c := api.NewClient(ts.URL, nil)
	if _, err := c.ListAppointments(context.Background()); !api.IsTransport(err) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}
