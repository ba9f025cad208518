package entity

import "time"

// Organization representa la empresa compradora a la que pertenecen los usuarios.
type Organization struct {
	ID            string
	Name          string
	GSTNumber     string
	PANNumber     string
	Address       string
	ContactPerson string
	ContactEmail  string
	ContactPhone  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
