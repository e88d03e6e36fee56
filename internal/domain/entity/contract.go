package entity

import "time"

// Tipos de contrato.
const (
	ContractTypeService        = "service"
	ContractTypeEquipmentLease = "equipment_lease"
)

// Contract contrato de una empresa. Duration es texto libre ("12 meses").
type Contract struct {
	ID        int64
	CompanyID int64
	Type      string
	Duration  string
	FileURL   string
	CreatedAt time.Time
}

// ValidContractType informa si el tipo es conocido.
func ValidContractType(t string) bool {
	return t == ContractTypeService || t == ContractTypeEquipmentLease
}
