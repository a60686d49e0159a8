package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideAccount(t *testing.T) {
	user := Identity{UserID: 1}
	admin := Identity{UserID: 2, IsAdmin: true}

	tests := []struct {
		name    string
		actor   Identity
		target  Account
		action  Action
		allowed bool
	}{
		{"user modifies self", user, Account{UserID: 1}, ActionModify, true},
		{"user deletes self", user, Account{UserID: 1}, ActionDelete, true},
		{"user deletes someone else", user, Account{UserID: 3}, ActionDelete, false},
		{"user deletes an admin", user, Account{UserID: 2, IsAdmin: true}, ActionDelete, false},
		{"stale token on a promoted account", user, Account{UserID: 1, IsAdmin: true}, ActionModify, false},
		{"admin deletes self", admin, Account{UserID: 2, IsAdmin: true}, ActionDelete, true},
		{"admin deletes another admin", admin, Account{UserID: 4, IsAdmin: true}, ActionDelete, true},
		{"admin modifies a user", admin, Account{UserID: 1}, ActionModify, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DecideAccount(tt.actor, tt.target, tt.action)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}

func TestCapabilities(t *testing.T) {
	assert.Equal(t, []string{CapLibrary, CapReview}, CapabilitiesFor(Identity{UserID: 1}))
	assert.Contains(t, CapabilitiesFor(Identity{UserID: 1, IsAdmin: true}), CapManageUsers)
	assert.True(t, CanGrantAdmin(Identity{IsAdmin: true}))
	assert.False(t, CanGrantAdmin(Identity{}))
}
