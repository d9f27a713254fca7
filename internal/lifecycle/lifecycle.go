// Package lifecycle implements the appointment state machine and its read
// models. Status moves pending -> cancelled only; "confirmed" exists in the
// data model and is rendered distinctly, but nothing here sets it.
//
// Cancellation is deliberately asymmetric: staff (doctor, admin) cancel
// softly and keep the record, patients cancel by deleting it outright.
package lifecycle

import (
	"context"
	"time"

	"hospital-portal/internal/api"
	"hospital-portal/internal/model"
)

const unknownLabel = "Unknown"

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Book creates a pending appointment for the patient.
func (s *Service) Book(ctx context.Context, patientID, doctorID string, at time.Time) (*model.Appointment, error) {
	if doctorID == "" || at.IsZero() {
		return nil, model.Validationf("please select both doctor and date/time")
	}
	return s.client.CreateAppointment(ctx, model.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Datetime:  at,
		Status:    model.StatusPending,
	})
}

// CancelByStaff soft-cancels: the record is written back unchanged except for
// status. Cancelling an already-cancelled appointment is a no-op, which is
// all the protection a client gets against a concurrent cancel — the store
// itself is last-write-wins.
func (s *Service) CancelByStaff(ctx context.Context, id string) (*model.Appointment, error) {
	appt, err := s.client.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status == model.StatusCancelled {
		return appt, nil
	}
	appt.Status = model.StatusCancelled
	return s.client.UpdateAppointment(ctx, id, *appt)
}

// CancelByPatient hard-deletes the record; the booking leaves no history.
func (s *Service) CancelByPatient(ctx context.Context, id string) error {
	return s.client.DeleteAppointment(ctx, id)
}

// View is an appointment joined with the display data of both parties.
// Dangling references resolve to "Unknown" labels.
type View struct {
	model.Appointment
	PatientName string
	DoctorName  string
	DoctorTrait string
}

// All returns every appointment with resolved names: the admin read model.
// One users fetch, one appointments fetch, joined in memory.
func (s *Service) All(ctx context.Context) ([]View, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	appts, err := s.client.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(users))
	traits := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
		traits[u.ID] = u.Trait
	}

	views := make([]View, 0, len(appts))
	for _, a := range appts {
		v := View{
			Appointment: a,
			PatientName: unknownLabel + " Patient",
			DoctorName:  unknownLabel + " Doctor",
			DoctorTrait: traits[a.DoctorID],
		}
		if n, ok := names[a.PatientID]; ok {
			v.PatientName = n
		}
		if n, ok := names[a.DoctorID]; ok {
			v.DoctorName = n
		}
		views = append(views, v)
	}
	return views, nil
}

// ForDoctor returns the doctor's open appointments with patient names
// resolved. Cancelled ones are hidden from this view.
func (s *Service) ForDoctor(ctx context.Context, doctorID string) ([]View, error) {
	appts, err := s.client.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := s.client.ListPatients(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(patients))
	for _, p := range patients {
		names[p.ID] = p.Name
	}

	var views []View
	for _, a := range appts {
		if a.DoctorID != doctorID || a.Status == model.StatusCancelled {
			continue
		}
		v := View{Appointment: a, PatientName: unknownLabel}
		if n, ok := names[a.PatientID]; ok {
			v.PatientName = n
		}
		views = append(views, v)
	}
	return views, nil
}

// ForPatient returns the patient's appointments, cancelled included, with
// doctor name and trait resolved.
func (s *Service) ForPatient(ctx context.Context, patientID string) ([]View, error) {
	doctors, err := s.client.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}
	appts, err := s.client.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.User, len(doctors))
	for _, d := range doctors {
		byID[d.ID] = d
	}

	var views []View
	for _, a := range appts {
		if a.PatientID != patientID {
			continue
		}
		v := View{Appointment: a, DoctorName: unknownLabel}
		if d, ok := byID[a.DoctorID]; ok {
			v.DoctorName = d.Name
			v.DoctorTrait = d.Trait
		}
		views = append(views, v)
	}
	return views, nil
}
