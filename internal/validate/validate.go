package validate

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

var (
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Name accepts full names of at least 3 characters
func Name(input string) error {
	if utf8.RuneCountInString(input) < 3 {
		return fmt.Errorf("name must be at least 3 characters")
	}
	return nil
}

// Role accepts creative roles of at least 3 characters
func Role(input string) error {
	if utf8.RuneCountInString(input) < 3 {
		return fmt.Errorf("role must be at least 3 characters")
	}
	return nil
}

// City accepts city names of at least 2 characters
func City(input string) error {
	if utf8.RuneCountInString(input) < 2 {
		return fmt.Errorf("city must be at least 2 characters")
	}
	return nil
}

// Phone accepts exactly 10 decimal digits, no separators or country code
func Phone(input string) error {
	if !phoneRe.MatchString(input) {
		return fmt.Errorf("phone must be exactly 10 digits")
	}
	return nil
}

// Email performs a minimal shape check, not full RFC validation
func Email(input string) error {
	if !emailRe.MatchString(input) {
		return fmt.Errorf("email has invalid format")
	}
	return nil
}
