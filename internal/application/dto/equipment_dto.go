package dto

import (
	"time"

	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// CreateEquipmentRequest alta de equipo. Fechas en YYYY-MM-DD; Status por defecto active.
type CreateEquipmentRequest struct {
	CompanyID       int64  `json:"companyId"`
	Name            string `json:"name"`
	Model           string `json:"model"`
	SerialNumber    string `json:"serialNumber"`
	Status          string `json:"status"`
	LastMaintenance string `json:"lastMaintenance"`
	NextMaintenance string `json:"nextMaintenance"`
}

// UpdateEquipmentRequest actualización parcial. Una fecha vacía ("") borra el valor.
type UpdateEquipmentRequest struct {
	Name            *string `json:"name"`
	Model           *string `json:"model"`
	SerialNumber    *string `json:"serialNumber"`
	Status          *string `json:"status"`
	LastMaintenance *string `json:"lastMaintenance"`
	NextMaintenance *string `json:"nextMaintenance"`
}

// EquipmentResponse salida de un equipo.
type EquipmentResponse struct {
	ID              int64     `json:"id"`
	CompanyID       int64     `json:"companyId"`
	Name            string    `json:"name"`
	Model           *string   `json:"model"`
	SerialNumber    *string   `json:"serialNumber"`
	Status          string    `json:"status"`
	LastMaintenance *string   `json:"lastMaintenance"`
	NextMaintenance *string   `json:"nextMaintenance"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewEquipmentResponse mapea la entidad.
func NewEquipmentResponse(e *entity.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:              e.ID,
		CompanyID:       e.CompanyID,
		Name:            e.Name,
		Model:           optString(e.Model),
		SerialNumber:    optString(e.SerialNumber),
		Status:          e.Status,
		LastMaintenance: optDate(e.LastMaintenance),
		NextMaintenance: optDate(e.NextMaintenance),
		CreatedAt:       e.CreatedAt,
	}
}

// CreateEquipmentModelRequest alta de modelo de equipo.
type CreateEquipmentModelRequest struct {
	Brand       string `json:"brand"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EquipmentModelResponse salida de un modelo de equipo.
type EquipmentModelResponse struct {
	ID          int64     `json:"id"`
	Brand       *string   `json:"brand"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewEquipmentModelResponse mapea la entidad.
func NewEquipmentModelResponse(m *entity.EquipmentModel) EquipmentModelResponse {
	return EquipmentModelResponse{
		ID:          m.ID,
		Brand:       optString(m.Brand),
		Name:        m.Name,
		Description: optString(m.Description),
		CreatedAt:   m.CreatedAt,
	}
}
