package dto

import (
	"time"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name              string `json:"name"`
	Document          string `json:"document"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	StateRegistration string `json:"stateRegistration"`
	ContactNumber     string `json:"contactNumber"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name              *string `json:"name"`
	Document          *string `json:"document"`
	Email             *string `json:"email"`
	Address           *string `json:"address"`
	StateRegistration *string `json:"stateRegistration"`
	ContactNumber     *string `json:"contactNumber"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Document          string    `json:"document"`
	Email             string    `json:"email"`
	Address           *string   `json:"address"`
	StateRegistration *string   `json:"stateRegistration"`
	ContactNumber     *string   `json:"contactNumber"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewCompanyResponse mapea la entidad.
func NewCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:                c.ID,
		Name:              c.Name,
		Document:          c.Document,
		Email:             c.Email,
		Address:           optString(c.Address),
		StateRegistration: optString(c.StateRegistration),
		ContactNumber:     optString(c.ContactNumber),
		CreatedAt:         c.CreatedAt,
	}
}

// CNPJLookupResponse datos públicos de un CNPJ para precargar el formulario de empresa.
type CNPJLookupResponse struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Whatsapp          string `json:"whatsapp"`
	Address           string `json:"address"`
	CNPJ              string `json:"cnpj"`
	StateRegistration string `json:"stateRegistration"`
}
