// Package session tracks who is looking at the page and whether edit mode is on.
//
// A Session lives in a signed cookie. Every request starts from the cookie's
// session (or the anonymous one) and handlers change it only through
// ToggleAdminMode and SignOut before writing it back.
package session

import "time"

// Session is the admin state of one visitor.
type Session struct {
	ID        string
	Username  string
	SignedIn  bool
	IsAdmin   bool
	EditMode  bool
	ExpiresAt time.Time
}

// Anonymous returns the signed-out session every visitor starts with.
func Anonymous() Session {
	return Session{}
}

// ToggleAdminMode flips edit mode. It does nothing unless the session
// belongs to a signed-in admin.
func (s *Session) ToggleAdminMode() {
	if !s.SignedIn || !s.IsAdmin {
		return
	}
	s.EditMode = !s.EditMode
}

// SignOut clears the session. Calling it on a signed-out session is a no-op.
func (s *Session) SignOut() {
	*s = Anonymous()
}

// CanEdit reports whether edit affordances should be shown.
func (s Session) CanEdit() bool {
	return s.SignedIn && s.IsAdmin && s.EditMode
}
