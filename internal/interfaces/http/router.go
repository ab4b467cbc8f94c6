package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/analytics"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/auth"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/inventory"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/usecase"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	UserUC      *usecase.UserUseCase
	MovementUC  *inventory.MovementUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Jerarquía de permisos: el administrador accede a todo; el empleado
// registra entradas y consulta movimientos; el cajero registra salidas.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	userHandler := NewUserHandler(deps.UserUC)
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)

	// Rutas públicas: catálogo de venta, registro y login.
	app.Get("/catalogo", productHandler.Catalog)
	app.Post("/registro", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token).
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Accesibles para cualquier usuario autenticado.
	protected.Get("/logout", authHandler.Logout)
	protected.Get("/productos", productHandler.List)

	// Gestión de productos (solo administrador).
	adminOnly := RequireRole(entity.RoleAdministrador)
	protected.Post("/agregar_producto", adminOnly, productHandler.Create)
	protected.Post("/editar_producto/:id", adminOnly, productHandler.Update)
	protected.Post("/eliminar_producto/:id", adminOnly, productHandler.Delete)

	// Gestión de categorías (solo administrador).
	protected.Get("/categorias", adminOnly, categoryHandler.List)
	protected.Post("/agregar_categoria", adminOnly, categoryHandler.Create)
	protected.Post("/editar_categoria/:id", adminOnly, categoryHandler.Update)
	protected.Post("/eliminar_categoria/:id", adminOnly, categoryHandler.Delete)

	// Movimientos de inventario: el empleado registra entradas, el
	// cajero registra salidas, el administrador hace ambas.
	protected.Post("/entrada_producto/:id",
		RequireRole(entity.RoleAdministrador, entity.RoleEmpleado),
		inventoryHandler.Entry)
	protected.Post("/salida_producto/:id",
		RequireRole(entity.RoleAdministrador, entity.RoleCajero),
		inventoryHandler.Exit)
	protected.Get("/movimientos",
		RequireRole(entity.RoleAdministrador, entity.RoleEmpleado),
		inventoryHandler.History)

	// Dashboard y gestión de usuarios (solo administrador).
	protected.Get("/dashboard", adminOnly, dashboardHandler.Summary)
	protected.Get("/dashboard/reporte.pdf", adminOnly, dashboardHandler.Report)
	protected.Get("/usuarios", adminOnly, userHandler.List)
	protected.Post("/cambiar_rol/:id", adminOnly, userHandler.ChangeRole)
	protected.Post("/eliminar_usuario/:id", adminOnly, userHandler.Delete)
}
