package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Complete(t *testing.T) {
	tests := []struct {
		name     string
		session  Session
		expected bool
	}{
		{
			name: "all fields set",
			session: Session{
				Name:  "Ananya Sharma",
				Role:  "Writer",
				City:  "Mumbai",
				Phone: "9876543210",
				Email: "ananya@example.com",
			},
			expected: true,
		},
		{
			name: "missing email",
			session: Session{
				Name:  "Ananya Sharma",
				Role:  "Writer",
				City:  "Mumbai",
				Phone: "9876543210",
			},
			expected: false,
		},
		{
			name:     "empty session",
			session:  Session{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.session.Complete())
		})
	}
}

func TestIntakeRecord_Row(t *testing.T) {
	session := Session{
		Name:  "Ananya Sharma",
		Role:  "Writer",
		City:  "Mumbai",
		Phone: "9876543210",
		Email: "ananya@example.com",
	}

	row := session.Record().Row()

	// Column order is fixed: name, role, city, phone, email
	assert.Equal(t, []interface{}{
		"Ananya Sharma", "Writer", "Mumbai", "9876543210", "ananya@example.com",
	}, row)
}

func TestMemberStatus_Joined(t *testing.T) {
	tests := []struct {
		status   MemberStatus
		expected bool
	}{
		{StatusMember, true},
		{StatusAdministrator, true},
		{StatusCreator, true},
		{StatusNotMember, false},
		{StatusUnknown, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.Joined())
		})
	}
}

func TestGroupMigratedError(t *testing.T) {
	err := &GroupMigratedError{NewChatID: -100999}
	assert.Contains(t, err.Error(), "-100999")
}
