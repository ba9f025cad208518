package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Procurement-api/internal/application/analytics"
	"github.com/jhoicas/Procurement-api/internal/application/auth"
	appbom "github.com/jhoicas/Procurement-api/internal/application/bom"
	"github.com/jhoicas/Procurement-api/internal/application/purchasing"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	OrganizationUC *usecase.OrganizationUseCase
	UserUC         *usecase.UserUseCase
	VendorUC       *usecase.VendorUseCase
	ProductUC      *usecase.ProductUseCase
	BOMUC          *appbom.UseCase
	RfxUC          *usecase.RfxUseCase
	AuctionUC      *usecase.AuctionUseCase
	OrderUC        *purchasing.OrderUseCase
	ApprovalUC     *usecase.ApprovalUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	JWTSecret      string
	LoginURL       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.LoginURL)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/login", authHandler.LoginInfo)

	// Rutas protegidas: Bearer Token con sesión abierta
	var sessions SessionValidator
	if deps.AuthUC != nil {
		sessions = deps.AuthUC
	}
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, sessions))
	protected.Get("/logout", authHandler.Logout)
	protected.Get("/auth/user", authHandler.CurrentUser)

	adminOnly := RequireRole(entity.RoleBuyerAdmin)
	buyers := RequireRole(entity.RoleBuyerAdmin, entity.RoleBuyerUser, entity.RoleSourcingManager)
	sourcing := RequireRole(entity.RoleBuyerAdmin, entity.RoleSourcingManager)
	// pujas y respuestas: el proveedor en persona o sourcing cargándolas por él
	bidders := RequireRole(entity.RoleBuyerAdmin, entity.RoleSourcingManager, entity.RoleVendor)

	organizations := protected.Group("/organizations")
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	organizations.Get("/", orgHandler.List)
	organizations.Get("/:id", orgHandler.GetByID)
	organizations.Post("/", adminOnly, orgHandler.Create)
	organizations.Put("/:id", adminOnly, orgHandler.Update)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", adminOnly, userHandler.Upsert)
	users.Put("/:id", adminOnly, userHandler.Update)

	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Post("/", vendorHandler.Create)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Patch("/:id/status", sourcing, vendorHandler.ChangeStatus)
	vendors.Delete("/:id", adminOnly, vendorHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", buyers, productHandler.Create)
	products.Put("/:id", buyers, productHandler.Update)
	products.Delete("/:id", buyers, productHandler.Delete)

	boms := protected.Group("/boms", buyers)
	bomHandler := NewBOMHandler(deps.BOMUC)
	boms.Post("/", bomHandler.Create)
	boms.Get("/", bomHandler.List)
	boms.Get("/:id", bomHandler.GetByID)
	boms.Put("/:id", bomHandler.Update)
	boms.Delete("/:id", bomHandler.Delete)
	boms.Post("/:id/items", bomHandler.AddItem)
	boms.Get("/:id/items", bomHandler.ListItems)
	boms.Delete("/:id/items/:itemId", bomHandler.DeleteItem)

	rfx := protected.Group("/rfx")
	rfxHandler := NewRfxHandler(deps.RfxUC)
	rfx.Get("/", rfxHandler.List)
	rfx.Get("/:id", rfxHandler.GetByID)
	rfx.Post("/", sourcing, rfxHandler.Create)
	rfx.Put("/:id", sourcing, rfxHandler.Update)
	rfx.Patch("/:id/status", sourcing, rfxHandler.ChangeStatus)
	rfx.Delete("/:id", sourcing, rfxHandler.Delete)
	rfx.Post("/:id/invitations", sourcing, rfxHandler.Invite)
	rfx.Get("/:id/invitations", rfxHandler.ListInvitations)
	rfx.Patch("/:id/invitations/:vendorId", rfxHandler.UpdateInvitation)
	rfx.Post("/:id/responses", bidders, rfxHandler.SubmitResponse)
	rfx.Get("/:id/responses", sourcing, rfxHandler.ListResponses)

	auctions := protected.Group("/auctions")
	auctionHandler := NewAuctionHandler(deps.AuctionUC)
	auctions.Get("/", auctionHandler.List)
	auctions.Get("/:id", auctionHandler.GetByID)
	auctions.Post("/", sourcing, auctionHandler.Create)
	auctions.Patch("/:id/status", sourcing, auctionHandler.ChangeStatus)
	auctions.Delete("/:id", sourcing, auctionHandler.Delete)
	auctions.Post("/:id/participants", sourcing, auctionHandler.RegisterParticipant)
	auctions.Get("/:id/participants", auctionHandler.ListParticipants)
	auctions.Post("/:id/bids", bidders, auctionHandler.PlaceBid)
	auctions.Get("/:id/bids", auctionHandler.ListBids)
	auctions.Post("/:id/award", sourcing, auctionHandler.Award)

	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/pdf", orderHandler.PDF)
	orders.Get("/:id/cxml", orderHandler.CXML)
	orders.Post("/", buyers, orderHandler.Create)
	orders.Patch("/:id/status", buyers, orderHandler.ChangeStatus)
	orders.Delete("/:id", buyers, orderHandler.Delete)

	approvals := protected.Group("/approvals")
	approvalHandler := NewApprovalHandler(deps.ApprovalUC)
	approvals.Get("/", approvalHandler.List)
	approvals.Get("/:id", approvalHandler.GetByID)
	approvals.Post("/", buyers, approvalHandler.Request)
	approvals.Post("/:id/decision", approvalHandler.Decide)

	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Post("/", buyers, notificationHandler.Create)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
}
