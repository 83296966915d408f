/*
Package chat contains the core shared state for the polling chat relay.

This file defines the UserRegistry, the set of currently connected usernames.
*/
package chat

import (
	"sort"

	"github.com/samber/lo"

	"pollchat/internal/pkg/errs"
)

// UserRegistry tracks the set of currently connected usernames. Usernames are
// case-sensitive and unique while registered. The registry performs no locking
// of its own; the Coordinator serializes all access.
type UserRegistry struct {
	online map[string]struct{}
}

// NewUserRegistry returns an empty registry.
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{online: make(map[string]struct{})}
}

// Register inserts the username, failing if it is already registered.
func (u *UserRegistry) Register(username string) *errs.CustomError {
	if _, taken := u.online[username]; taken {
		return errs.NewError(errs.ErrUsernameTaken)
	}

	u.online[username] = struct{}{}
	return nil
}

// Remove deletes the username and reports whether it was registered.
// Cascading room cleanup is the RoomManager's job (see RemoveEverywhere);
// the Coordinator runs both inside one critical section.
func (u *UserRegistry) Remove(username string) bool {
	if _, ok := u.online[username]; !ok {
		return false
	}

	delete(u.online, username)
	return true
}

// IsOnline reports whether the username is currently registered.
func (u *UserRegistry) IsOnline(username string) bool {
	_, ok := u.online[username]
	return ok
}

// ListOnline returns every registered username. The result is sorted for
// stable responses; clients are promised no particular order.
func (u *UserRegistry) ListOnline() []string {
	names := lo.Keys(u.online)
	sort.Strings(names)
	return names
}
