package domain

import "fmt"

// MemberStatus classifies a user's current relationship to the group
type MemberStatus string

const (
	StatusNotMember     MemberStatus = "not_member"
	StatusMember        MemberStatus = "member"
	StatusAdministrator MemberStatus = "administrator"
	StatusCreator       MemberStatus = "creator"
	StatusUnknown       MemberStatus = "unknown"
)

// Joined reports whether the status counts as already belonging to the group
func (s MemberStatus) Joined() bool {
	switch s {
	case StatusMember, StatusAdministrator, StatusCreator:
		return true
	}
	return false
}

// GroupMigratedError is returned by invite creation when the target group
// was converted to a supergroup and now lives under a new chat id
type GroupMigratedError struct {
	NewChatID int64
}

func (e *GroupMigratedError) Error() string {
	return fmt.Sprintf("group migrated to chat id %d", e.NewChatID)
}
