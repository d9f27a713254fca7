package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hospital-portal/internal/lifecycle"
	"hospital-portal/internal/middleware"
	"hospital-portal/internal/model"
)

type doctorPage struct {
	User         *model.User
	Appointments []lifecycle.View
	Error        string
	Success      string
}

func (h *Handler) doctorDashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDoctor(w, r, "", r.URL.Query().Get("msg"))
}

func (h *Handler) renderDoctor(w http.ResponseWriter, r *http.Request, errMsg, okMsg string) {
	u := middleware.UserFrom(r.Context())
	page := doctorPage{User: u, Error: errMsg, Success: okMsg}

	views, err := h.lifecycle.ForDoctor(r.Context(), u.ID)
	if err != nil {
		h.logger.Warn("doctor load", "err", err)
		page.Error = "Failed to load data"
		h.metrics.ObservePageLoad("doctor", "error")
	} else {
		page.Appointments = views
		h.metrics.ObservePageLoad("doctor", "ok")
	}
	h.render(w, "doctor.html", page)
}

func (h *Handler) doctorCancel(w http.ResponseWriter, r *http.Request) {
	_, err := h.lifecycle.CancelByStaff(r.Context(), chi.URLParam(r, "id"))
	h.metrics.ObserveStoreCall("cancel_staff", err)
	if err != nil {
		h.renderDoctor(w, r, "Failed to cancel appointment", "")
		return
	}
	http.Redirect(w, r, "/doctor?msg=Appointment+cancelled", http.StatusSeeOther)
}
