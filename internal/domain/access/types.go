package access

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is who a verified token says the caller is.
type Identity struct {
	UserID  uint
	IsAdmin bool
}

func (i Identity) Role() Role {
	if i.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Account is the user account an action is aimed at.
type Account struct {
	UserID  uint
	IsAdmin bool
}

type Action string

const (
	ActionModify Action = "modify"
	ActionDelete Action = "delete"
)
