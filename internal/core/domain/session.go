package domain

import "errors"

var ErrNoToken = errors.New("login response carried no token")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is the client-held record of an authenticated identity.
// Created on successful login, overwritten on re-login, erased on logout.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// User is the identity attached to a session.
type User struct {
	Nombre string `json:"nombre,omitempty"`
	Correo string `json:"correo,omitempty"`
	Role   Role   `json:"role"`
}

// Authenticated reports whether the session holds a token. A nil session
// is anonymous.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
