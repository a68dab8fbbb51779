package domain

import "time"

// Step identifies the current stage of the intake conversation
type Step string

const (
	StepWelcome       Step = "welcome"
	StepName          Step = "name"
	StepRole          Step = "role"
	StepCity          Step = "city"
	StepPhone         Step = "phone"
	StepEmail         Step = "email"
	StepInviteMessage Step = "invite_message"
	StepShowJoin      Step = "show_join"
)

// Session tracks one chat's progress through the intake flow
type Session struct {
	ChatID    int64
	Step      Step
	Name      string
	Role      string
	City      string
	Phone     string
	Email     string
	UpdatedAt time.Time
}

// Complete reports whether all five intake fields have been collected
func (s *Session) Complete() bool {
	return s.Name != "" && s.Role != "" && s.City != "" && s.Phone != "" && s.Email != ""
}

// Record builds the intake record from the collected fields
func (s *Session) Record() IntakeRecord {
	return IntakeRecord{
		Name:  s.Name,
		Role:  s.Role,
		City:  s.City,
		Phone: s.Phone,
		Email: s.Email,
	}
}

// IntakeRecord is one completed submission, written once to the sheet
type IntakeRecord struct {
	Name  string
	Role  string
	City  string
	Phone string
	Email string
}

// Row returns the record values in the fixed sheet column order
func (r IntakeRecord) Row() []interface{} {
	return []interface{}{r.Name, r.Role, r.City, r.Phone, r.Email}
}
