package handler

import (
	"net/http"
)

type authPage struct {
	Error   string
	Success string
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	// A restored session skips straight to its dashboard.
	if u := h.sessions.Current(); u != nil && u.Role.Valid() {
		http.Redirect(w, r, u.Role.DashboardPath(), http.StatusSeeOther)
		return
	}
	h.render(w, "home.html", nil)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", authPage{Success: r.URL.Query().Get("msg")})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	u, err := h.sessions.Login(r.Context(), email, password)
	if err != nil {
		h.metrics.ObserveStoreCall("login", err)
		h.render(w, "login.html", authPage{Error: userMessage(err, "Login failed. Try again later.")})
		return
	}
	h.metrics.ObserveStoreCall("login", nil)
	h.logger.Info("login", "user", u.ID, "role", u.Role)
	http.Redirect(w, r, u.Role.DashboardPath(), http.StatusSeeOther)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", authPage{})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")

	_, err := h.directory.Register(r.Context(), name, email, password)
	if err != nil {
		h.metrics.ObserveStoreCall("register", err)
		h.render(w, "register.html", authPage{Error: userMessage(err, "Registration failed. Try again later.")})
		return
	}
	h.metrics.ObserveStoreCall("register", nil)
	http.Redirect(w, r, "/login?msg=Registration+successful.+Please+log+in.", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
