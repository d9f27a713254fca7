// Package directory covers account management: patient self-registration and
// the admin's doctor roster. Doctors and patients are projections over the one
// user collection, never separate stores.
package directory

import (
	"context"
	"strings"

	"hospital-portal/internal/api"
	"hospital-portal/internal/model"
)

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Register creates a patient account. The email uniqueness check is a
// client-side pre-scan of the full user list — not atomic, but it is the only
// enforcement the store offers. On a duplicate, create is never called.
func (s *Service) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, model.Validationf("all fields are required")
	}

	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return nil, model.Validationf("email already registered")
		}
	}

	return s.client.CreateUser(ctx, model.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     model.RolePatient,
	})
}

// AddDoctor creates a doctor account with its specialization trait.
func (s *Service) AddDoctor(ctx context.Context, name, email, password, trait string) (*model.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" ||
		strings.TrimSpace(password) == "" || strings.TrimSpace(trait) == "" {
		return nil, model.Validationf("all doctor fields including trait are required")
	}
	return s.client.CreateUser(ctx, model.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     model.RoleDoctor,
		Trait:    trait,
	})
}

// RemoveDoctor deletes the doctor record. Appointments referencing it are
// left dangling; the views render those as "Unknown".
func (s *Service) RemoveDoctor(ctx context.Context, id string) error {
	return s.client.DeleteUser(ctx, id)
}

func (s *Service) Doctors(ctx context.Context) ([]model.User, error) {
	return s.client.ListDoctors(ctx)
}

func (s *Service) Patients(ctx context.Context) ([]model.User, error) {
	return s.client.ListPatients(ctx)
}
