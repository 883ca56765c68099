package authorization

// Actor is the authorization context of a single request: who is acting and
// with which role. It is always passed explicitly, never read from globals.
type Actor struct {
	UserID uint
	Role   UserRole
}

// Anonymous is the actor for unauthenticated requests.
func Anonymous() Actor {
	return Actor{Role: RoleUser}
}

func NewActor(userID uint, role UserRole) Actor {
	if !role.IsValid() {
		role = RoleUser
	}
	return Actor{UserID: userID, Role: role}
}

func (a Actor) IsAuthenticated() bool {
	return a.UserID != 0
}

// Owns reports whether the actor is the owner of a resource.
func (a Actor) Owns(ownerID uint) bool {
	return a.IsAuthenticated() && a.UserID == ownerID
}
