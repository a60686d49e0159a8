package access

import "fmt"

// Decision is the outcome of an account policy check. Reason is set when denied.
type Decision struct {
	Allowed bool
	Reason  string
}

// DecideAccount applies the account protection policy: admins may modify or delete any
// account, their own included; everyone else may act only on their own account, and
// never on an admin account.
func DecideAccount(actor Identity, target Account, action Action) Decision {
	switch {
	case actor.IsAdmin:
		return Decision{Allowed: true}
	case target.IsAdmin:
		return Decision{Reason: fmt.Sprintf("only an admin may %s an admin account", action)}
	case actor.UserID != target.UserID:
		return Decision{Reason: fmt.Sprintf("cannot %s another user's account", action)}
	}
	return Decision{Allowed: true}
}

// CanGrantAdmin reports whether actor may change anyone's admin flag.
func CanGrantAdmin(actor Identity) bool {
	return actor.IsAdmin
}
