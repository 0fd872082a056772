package entity

// Actor is the user on whose behalf an operation runs.
// The zero value is an anonymous actor.
type Actor struct {
	UserID uint
	Roles  []string
}

// Anonymous returns an actor with no identity
func Anonymous() Actor {
	return Actor{}
}

func (a Actor) IsAnonymous() bool {
	return a.UserID == 0
}

func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// UserIDPtr returns nil for anonymous actors, for nullable foreign keys
func (a Actor) UserIDPtr() *uint {
	if a.IsAnonymous() {
		return nil
	}
	id := a.UserID
	return &id
}
