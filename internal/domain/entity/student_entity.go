package entity

import "time"

// DateLayout is the storage and wire format of a date of birth.
const DateLayout = "2006-01-02"

// Student is the aggregate root for the account domain.
// Username doubles as the storage key of the student's partition.
// Password is kept verbatim and compared byte for byte on login.
type Student struct {
	Username    string
	Phone       string
	DateOfBirth time.Time
	Email       string
	Password    string
}
