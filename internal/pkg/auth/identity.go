package auth

import "github.com/google/uuid"

// Identity is the caller identity resolved once per request. Every operation
// that tolerates anonymous callers takes an Identity instead of reading
// ambient request state, so its auth requirement is an explicit check.
type Identity struct {
	userId        uuid.UUID
	authenticated bool
}

func Anonymous() Identity {
	return Identity{}
}

func Authenticated(userId uuid.UUID) Identity {
	return Identity{userId: userId, authenticated: true}
}

func (i Identity) IsAuthenticated() bool {
	return i.authenticated
}

// UserId returns the caller's user id. The boolean is false for anonymous
// callers; the id is only meaningful when it is true.
func (i Identity) UserId() (uuid.UUID, bool) {
	return i.userId, i.authenticated
}
