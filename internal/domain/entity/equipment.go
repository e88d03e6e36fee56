package entity

import "time"

// Estados de equipo.
const (
	EquipmentStatusActive      = "active"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusInactive    = "inactive"
)

// Equipment equipo instalado en una empresa.
type Equipment struct {
	ID              int64
	CompanyID       int64
	Name            string
	Model           string
	SerialNumber    string
	Status          string
	LastMaintenance *time.Time
	NextMaintenance *time.Time
	CreatedAt       time.Time
}

// ValidEquipmentStatus informa si el estado es conocido.
func ValidEquipmentStatus(s string) bool {
	switch s {
	case EquipmentStatusActive, EquipmentStatusMaintenance, EquipmentStatusInactive:
		return true
	}
	return false
}

// EquipmentModel catálogo de modelos de equipo.
type EquipmentModel struct {
	ID          int64
	Brand       string
	Name        string
	Description string
	CreatedAt   time.Time
}
