package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/billing-portal/internal/application/analytics"
	"github.com/jhoicas/billing-portal/internal/application/auth"
	"github.com/jhoicas/billing-portal/internal/application/billing"
	"github.com/jhoicas/billing-portal/internal/application/usecase"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Sessions    *auth.SessionService
	Cookie      CookieConfig
	CompanyUC   *usecase.CompanyUseCase
	ChargeUC    *billing.ChargeUseCase
	StatementUC *billing.StatementUseCase
	InvoiceUC   *billing.InvoiceUseCase
	ContractUC  *usecase.ContractUseCase
	EquipmentUC *usecase.EquipmentUseCase
	UploadUC    *usecase.UploadUseCase
	DashboardUC *appanalytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authn := AuthMiddleware(deps.Sessions, deps.Cookie.Name)
	ready := RequirePasswordChanged()
	admin := RequireRole(entity.RoleAdmin)

	// Sesión
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/user", authn, authHandler.Me)
	api.Post("/change-password", authn, authHandler.ChangePassword)
	api.Post("/register", authn, ready, admin, authHandler.Register)

	// Companies
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Get("/cnpj/:cnpj", authn, ready, admin, companyHandler.LookupCNPJ)
	companies := api.Group("/companies", authn, ready)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", admin, companyHandler.Create)
	companies.Patch("/:id", admin, companyHandler.Update)
	companies.Delete("/:id", admin, companyHandler.Delete)

	// Charges
	chargeHandler := NewChargeHandler(deps.ChargeUC, deps.StatementUC)
	charges := api.Group("/charges", authn, ready)
	charges.Get("/", chargeHandler.List)
	charges.Get("/:id", chargeHandler.GetByID)
	charges.Get("/:id/statement", chargeHandler.Statement)
	charges.Post("/", admin, chargeHandler.Create)
	charges.Patch("/:id/pay", admin, chargeHandler.Pay)
	charges.Patch("/:id", admin, chargeHandler.Update)
	charges.Delete("/:id", admin, chargeHandler.Delete)

	// Invoices
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices := api.Group("/invoices", authn, ready)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", admin, invoiceHandler.Create)
	invoices.Delete("/:id", admin, invoiceHandler.Delete)

	// Contracts
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts := api.Group("/contracts", authn, ready)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Post("/", admin, contractHandler.Create)
	contracts.Delete("/:id", admin, contractHandler.Delete)

	// Equipment + catálogo de modelos
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	equipment := api.Group("/equipment", authn, ready)
	equipment.Get("/", equipmentHandler.List)
	equipment.Post("/", admin, equipmentHandler.Create)
	equipment.Patch("/:id", admin, equipmentHandler.Update)
	equipment.Delete("/:id", admin, equipmentHandler.Delete)

	models := api.Group("/equipment-models", authn, ready)
	models.Get("/", equipmentHandler.ListModels)
	models.Post("/", admin, equipmentHandler.CreateModel)
	models.Delete("/:id", admin, equipmentHandler.DeleteModel)

	// Upload
	uploadHandler := NewUploadHandler(deps.UploadUC)
	api.Post("/upload", authn, ready, uploadHandler.Upload)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", authn, ready, dashboardHandler.GetSummary)
}
