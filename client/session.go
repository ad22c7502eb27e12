package client

import (
	"context"
	"errors"
	"net/http"
)

// IdentityKind is the kind of actor currently using the client.
type IdentityKind string

const (
	IdentityAnonymous IdentityKind = "anonimo"
	IdentityCustomer  IdentityKind = "cliente"
	IdentityWaiter    IdentityKind = "garcom"
	IdentityManager   IdentityKind = "gerente"
)

// Identity is the session-scoped record of who is using the client.
type Identity struct {
	Kind IdentityKind
	Name string
}

// Session holds at most one active identity for the duration of the
// running client. It is not persisted anywhere.
type Session struct {
	api      *Client
	identity Identity
}

// NewSession returns an anonymous session that logs staff in through api.
func NewSession(api *Client) *Session {
	return &Session{
		api:      api,
		identity: Identity{Kind: IdentityAnonymous},
	}
}

// Current returns the active identity.
func (s *Session) Current() Identity {
	return s.identity
}

// LoginCustomer sets a customer identity. It always succeeds; an empty
// name falls back to a default, matching what the login screen does.
func (s *Session) LoginCustomer(name string) Identity {
	if name == "" {
		name = "Cliente Anônimo"
	}
	s.identity = Identity{Kind: IdentityCustomer, Name: name}
	return s.identity
}

// LoginStaff authenticates a waiter or manager against the backend using
// the shared staff password. On rejection it returns ErrInvalidCredentials
// and the session stays as it was.
func (s *Session) LoginStaff(ctx context.Context, kind IdentityKind, name, password string) (Identity, error) {
	if kind != IdentityWaiter && kind != IdentityManager {
		return s.identity, errors.New("staff login requires a waiter or manager kind")
	}

	result, err := s.api.Login(ctx, name, password, string(kind))
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return s.identity, ErrInvalidCredentials
		}
		return s.identity, err
	}

	s.identity = Identity{Kind: IdentityKind(result.Kind), Name: result.Name}
	return s.identity, nil
}

// Logout clears the identity unconditionally.
func (s *Session) Logout() {
	s.identity = Identity{Kind: IdentityAnonymous}
}

// IsCustomer reports whether a customer is logged in.
func (s *Session) IsCustomer() bool { return s.identity.Kind == IdentityCustomer }

// IsWaiter reports whether a waiter is logged in.
func (s *Session) IsWaiter() bool { return s.identity.Kind == IdentityWaiter }

// IsManager reports whether a manager is logged in.
func (s *Session) IsManager() bool { return s.identity.Kind == IdentityManager }
