package entity

import "time"

// Company empresa cliente del portal. Document es CNPJ o CPF.
type Company struct {
	ID                int64
	Name              string
	Document          string
	Email             string
	Address           string
	StateRegistration string
	ContactNumber     string
	CreatedAt         time.Time
}
