// Package guard decides whether the current session may see a role-gated
// view. Unauthorized access never hard-fails: no session goes to the login
// page, a mismatched role goes sideways to its own dashboard.
package guard

import "hospital-portal/internal/model"

const LoginPath = "/login"

type Decision struct {
	Allowed  bool
	Redirect string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirect(target string) Decision {
	return Decision{Redirect: target}
}

// Authorize gates a view requiring the given role. It must run before any
// data is fetched for the view.
func Authorize(required model.Role, current *model.User) Decision {
	if current == nil {
		return redirect(LoginPath)
	}
	if current.Role != required {
		if current.Role.Valid() {
			return redirect(current.Role.DashboardPath())
		}
		return redirect(LoginPath)
	}
	return allow()
}
