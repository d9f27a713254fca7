package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hospital-portal/internal/lifecycle"
	"hospital-portal/internal/middleware"
	"hospital-portal/internal/model"
)

type adminPage struct {
	User         *model.User
	Doctors      []model.User
	Appointments []lifecycle.View
	Error        string
	Success      string
}

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	h.renderAdmin(w, r, "", r.URL.Query().Get("msg"))
}

func (h *Handler) renderAdmin(w http.ResponseWriter, r *http.Request, errMsg, okMsg string) {
	page := adminPage{
		User:    middleware.UserFrom(r.Context()),
		Error:   errMsg,
		Success: okMsg,
	}

	doctors, err := h.directory.Doctors(r.Context())
	if err == nil {
		page.Doctors = doctors
		page.Appointments, err = h.lifecycle.All(r.Context())
	}
	if err != nil {
		h.logger.Warn("admin load", "err", err)
		page.Error = "Failed to load data"
		h.metrics.ObservePageLoad("admin", "error")
	} else {
		h.metrics.ObservePageLoad("admin", "ok")
	}
	h.render(w, "admin.html", page)
}

func (h *Handler) addDoctor(w http.ResponseWriter, r *http.Request) {
	_, err := h.directory.AddDoctor(r.Context(),
		r.FormValue("name"),
		r.FormValue("email"),
		r.FormValue("password"),
		r.FormValue("trait"),
	)
	h.metrics.ObserveStoreCall("add_doctor", err)
	if err != nil {
		h.renderAdmin(w, r, userMessage(err, "Failed to add doctor"), "")
		return
	}
	http.Redirect(w, r, "/admin?msg=Doctor+added+successfully", http.StatusSeeOther)
}

func (h *Handler) deleteDoctor(w http.ResponseWriter, r *http.Request) {
	err := h.directory.RemoveDoctor(r.Context(), chi.URLParam(r, "id"))
	h.metrics.ObserveStoreCall("delete_doctor", err)
	if err != nil {
		h.renderAdmin(w, r, "Failed to delete doctor", "")
		return
	}
	http.Redirect(w, r, "/admin?msg=Doctor+deleted+successfully", http.StatusSeeOther)
}

func (h *Handler) adminCancel(w http.ResponseWriter, r *http.Request) {
	_, err := h.lifecycle.CancelByStaff(r.Context(), chi.URLParam(r, "id"))
	h.metrics.ObserveStoreCall("cancel_staff", err)
	if err != nil {
		h.renderAdmin(w, r, "Failed to cancel appointment", "")
		return
	}
	http.Redirect(w, r, "/admin?msg=Appointment+cancelled", http.StatusSeeOther)
}
