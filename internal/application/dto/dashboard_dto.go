package dto

// DashboardSummary resumen del panel. Montos como string con 2 decimales.
type DashboardSummary struct {
	TotalAmount     string           `json:"totalAmount"`
	PaidAmount      string           `json:"paidAmount"`
	PendingAmount   string           `json:"pendingAmount"`
	OverdueAmount   string           `json:"overdueAmount"`
	OverdueCount    int              `json:"overdueCount"`
	ChargeCount     int              `json:"chargeCount"`
	ActiveCompanies int              `json:"activeCompanies"`
	RevenueByMonth  []MonthlyRevenue `json:"revenueByMonth"`
}

// MonthlyRevenue montos de un mes de vencimiento (YYYY-MM).
type MonthlyRevenue struct {
	Month string `json:"month"`
	Total string `json:"total"`
	Paid  string `json:"paid"`
}

// UploadResponse referencia pública del archivo subido.
type UploadResponse struct {
	URL string `json:"url"`
}
