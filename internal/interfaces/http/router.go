package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/remitospro/remitos-api/internal/application/auth"
	"github.com/remitospro/remitos-api/internal/application/company"
	"github.com/remitospro/remitos-api/internal/application/usecase"
	"github.com/remitospro/remitos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	DuplicateUC *company.DuplicateUseCase
	UserUC      *usecase.UserUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	ClientUC    *usecase.ClientUseCase
	EstadoUC    *usecase.EstadoUseCase
	RemitoUC    *usecase.RemitoUseCase
	RemitoPDFUC *usecase.RemitoPDFUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/set-password", authHandler.SetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies: gestión cross-tenant, solo superadmin. El chequeo de rol
	// vive acá y no se repite en los handlers.
	companies := protected.Group("/companies", RequireRole(entity.RoleSuperAdmin))
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.DuplicateUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Post("/:id/duplicate", companyHandler.Duplicate)

	// Users: gestión de usuarios de la propia empresa (admin o superadmin)
	users := protected.Group("/users", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Categories (protegido, cualquier rol autenticado)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Estados de remito: la configuración la manejan admin y superadmin,
	// la lectura es para todos.
	estados := protected.Group("/estados")
	estadoHandler := NewEstadoHandler(deps.EstadoUC)
	estados.Get("/", estadoHandler.List)
	estados.Get("/:id", estadoHandler.GetByID)
	estadosAdmin := estados.Group("/", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin))
	estadosAdmin.Post("/", estadoHandler.Create)
	estadosAdmin.Put("/:id", estadoHandler.Update)
	estadosAdmin.Delete("/:id", estadoHandler.Delete)

	// Remitos (protegido)
	remitos := protected.Group("/remitos")
	remitoHandler := NewRemitoHandler(deps.RemitoUC, deps.RemitoPDFUC)
	remitos.Post("/", remitoHandler.Create)
	remitos.Get("/", remitoHandler.List)
	remitos.Get("/:id", remitoHandler.GetByID)
	remitos.Get("/:id/pdf", remitoHandler.DownloadPDF)
	remitos.Put("/:id", remitoHandler.Update)
	remitos.Delete("/:id", remitoHandler.Delete)
}
