package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hospital-portal/internal/lifecycle"
	"hospital-portal/internal/middleware"
	"hospital-portal/internal/model"
)

// datetimeLocal is the format posted by <input type="datetime-local">.
const datetimeLocal = "2006-01-02T15:04"

type patientPage struct {
	User         *model.User
	Doctors      []model.User
	Appointments []lifecycle.View
	Error        string
	Success      string
}

func (h *Handler) patientDashboard(w http.ResponseWriter, r *http.Request) {
	h.renderPatient(w, r, "", r.URL.Query().Get("msg"))
}

func (h *Handler) renderPatient(w http.ResponseWriter, r *http.Request, errMsg, okMsg string) {
	u := middleware.UserFrom(r.Context())
	page := patientPage{User: u, Error: errMsg, Success: okMsg}

	doctors, err := h.directory.Doctors(r.Context())
	if err == nil {
		page.Doctors = doctors
		page.Appointments, err = h.lifecycle.ForPatient(r.Context(), u.ID)
	}
	if err != nil {
		h.logger.Warn("patient load", "err", err)
		page.Error = "Failed to load appointments"
		h.metrics.ObservePageLoad("patient", "error")
	} else {
		h.metrics.ObservePageLoad("patient", "ok")
	}
	h.render(w, "patient.html", page)
}

func (h *Handler) book(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFrom(r.Context())

	var at time.Time
	if raw := r.FormValue("datetime"); raw != "" {
		parsed, err := time.ParseInLocation(datetimeLocal, raw, time.Local)
		if err != nil {
			h.renderPatient(w, r, "Please select both doctor and date/time.", "")
			return
		}
		at = parsed
	}

	_, err := h.lifecycle.Book(r.Context(), u.ID, r.FormValue("doctorId"), at)
	h.metrics.ObserveStoreCall("book", err)
	if err != nil {
		h.renderPatient(w, r, userMessage(err, "Failed to book appointment."), "")
		return
	}
	http.Redirect(w, r, "/patient?msg=Appointment+booked+successfully.", http.StatusSeeOther)
}

func (h *Handler) patientCancel(w http.ResponseWriter, r *http.Request) {
	err := h.lifecycle.CancelByPatient(r.Context(), chi.URLParam(r, "id"))
	h.metrics.ObserveStoreCall("cancel_patient", err)
	if err != nil {
		h.renderPatient(w, r, "Failed to cancel appointment.", "")
		return
	}
	http.Redirect(w, r, "/patient", http.StatusSeeOther)
}
