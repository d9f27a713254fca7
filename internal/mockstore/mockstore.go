// Package mockstore is a small stand-in for the hosted resource store the
// portal talks to in production. Two JSON collections, server-assigned ids,
// no validation and no referential integrity — exactly the contract the
// portal is written against.
package mockstore

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"hospital-portal/internal/model"
	"hospital-portal/pkg/logging"
)

type Store struct {
	mu sync.Mutex

	users     map[string]model.User
	userOrder []string

	appointments map[string]model.Appointment
	apptOrder    []string

	logger *logging.Logger
}

func New(logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		users:        make(map[string]model.User),
		appointments: make(map[string]model.Appointment),
		logger:       logger,
	}
}

// Seed inserts a record directly, for bootstrap data and tests.
func (s *Store) Seed(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	return u
}

func (s *Store) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.listUsers)
		r.Post("/", s.createUser)
		r.Get("/{id}", s.getUser)
		r.Put("/{id}", s.updateUser)
		r.Delete("/{id}", s.deleteUser)
	})
	r.Route("/appointments", func(r chi.Router) {
		r.Get("/", s.listAppointments)
		r.Post("/", s.createAppointment)
		r.Get("/{id}", s.getAppointment)
		r.Put("/{id}", s.updateAppointment)
		r.Delete("/{id}", s.deleteAppointment)
	})

	return r
}

// ---- users ----

func (s *Store) listUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]model.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id])
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Store) createUser(w http.ResponseWriter, r *http.Request) {
	var u model.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	u.ID = uuid.New().String()

	s.mu.Lock()
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	s.mu.Unlock()

	s.logger.Info("user created", "id", u.ID, "role", u.Role)
	writeJSON(w, http.StatusCreated, u)
}

func (s *Store) getUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	u, ok := s.users[id]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Store) updateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var u model.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, ok := s.users[id]
	if ok {
		u.ID = id
		s.users[id] = u
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Store) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	u, ok := s.users[id]
	if ok {
		delete(s.users, id)
		s.userOrder = remove(s.userOrder, id)
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// ---- appointments ----

func (s *Store) listAppointments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]model.Appointment, 0, len(s.apptOrder))
	for _, id := range s.apptOrder {
		out = append(out, s.appointments[id])
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Store) createAppointment(w http.ResponseWriter, r *http.Request) {
	var a model.Appointment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	a.ID = uuid.New().String()

	s.mu.Lock()
	s.appointments[a.ID] = a
	s.apptOrder = append(s.apptOrder, a.ID)
	s.mu.Unlock()

	s.logger.Info("appointment created", "id", a.ID, "status", a.Status)
	writeJSON(w, http.StatusCreated, a)
}

func (s *Store) getAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	a, ok := s.appointments[id]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Store) updateAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var a model.Appointment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, ok := s.appointments[id]
	if ok {
		a.ID = id
		s.appointments[id] = a
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Store) deleteAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	a, ok := s.appointments[id]
	if ok {
		delete(s.appointments, id)
		s.apptOrder = remove(s.apptOrder, id)
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func remove(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
