// Package routes declares the HTTP surface of LeadHub.
package routes

import (
	"github.com/shashiranjanraj/leadhub/app/controllers"
	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/pkg/middleware"
	"github.com/shashiranjanraj/leadhub/pkg/rbac"
	"github.com/shashiranjanraj/leadhub/pkg/router"
	"github.com/shashiranjanraj/leadhub/pkg/workerpool"
)

// RegisterAPI wires repositories, services and controllers onto the router.
// pool is the shared worker pool used for fan-out queries; it lives for the
// whole process.
func RegisterAPI(r *router.Router, pool *workerpool.Pool) {
	leadRepo := repositories.NewLeadRepository()
	orderRepo := repositories.NewOrderRepository()
	userRepo := repositories.NewUserRepository()
	wishRepo := repositories.NewWishlistRepository()
	statsRepo := repositories.NewStatsRepository()

	leadSvc := services.NewLeadService(leadRepo)
	orderSvc := services.NewOrderService(orderRepo)
	cartSvc := services.NewCartService(leadRepo)

	auth := controllers.NewAuthController(services.NewAuthService(userRepo))
	lead := controllers.NewLeadController(leadSvc)
	cart := controllers.NewCartController(cartSvc)
	order := controllers.NewOrderController(
		orderSvc,
		services.NewCheckoutService(leadRepo, orderRepo),
		cartSvc,
		services.NewExportService(orderRepo),
	)
	wishlist := controllers.NewWishlistController(services.NewWishlistService(wishRepo, leadRepo))
	profile := controllers.NewProfileController(services.NewUserService(userRepo))
	admin := controllers.NewAdminController(
		leadSvc,
		orderSvc,
		services.NewUserService(userRepo),
		services.NewImportService(leadRepo),
		services.NewStatsService(leadRepo, orderRepo, statsRepo, pool),
	)

	api := r.Group("/api")

	// Public.
	api.Post("/auth/register", "auth.register", auth.Register)
	api.Post("/auth/login", "auth.login", auth.Login)
	api.Post("/auth/refresh", "auth.refresh", auth.Refresh)
	api.Get("/leads", "leads.catalog", lead.Catalog)
	api.Get("/leads/{id}", "leads.show", lead.Show)
	api.Get("/industries", "leads.industries", lead.Industries)

	// Authenticated customers.
	user := api.Group("", middleware.Auth)
	user.Get("/auth/me", "auth.me", auth.Me)
	user.Get("/profile", "profile.show", profile.Show)
	user.Put("/profile", "profile.update", profile.Update)

	user.Get("/cart", "cart.show", cart.Show)
	user.Post("/cart/{id}", "cart.add", cart.Add)
	user.Delete("/cart/{id}", "cart.remove", cart.Remove)
	user.Delete("/cart", "cart.clear", cart.Clear)
	user.Post("/checkout", "checkout", order.Checkout)

	user.Get("/orders", "orders.mine", order.Mine)
	user.Get("/orders/{id}", "orders.show", order.Show)
	user.Get("/orders/export", "orders.export", order.Export)

	user.Get("/wishlist", "wishlist.list", wishlist.List)
	user.Post("/wishlist/{id}", "wishlist.add", wishlist.Add)
	user.Delete("/wishlist/{id}", "wishlist.remove", wishlist.Remove)

	// Admin only.
	adm := api.Group("/admin", middleware.Auth, rbac.HasRole(models.RoleAdmin))
	adm.Get("/leads", "admin.leads", admin.Leads)
	adm.Post("/leads", "admin.leads.create", admin.CreateLead)
	adm.Put("/leads/{id}", "admin.leads.update", admin.UpdateLead)
	adm.Delete("/leads/{id}", "admin.leads.delete", admin.DeleteLead)

	adm.Post("/leads/import", "admin.leads.import", admin.Import)
	adm.Post("/leads/import/async", "admin.leads.import.async", admin.ImportAsync)
	adm.Post("/leads/import/url", "admin.leads.import.url", admin.ImportFromURL)
	adm.Get("/leads/import/{jobId}", "admin.leads.import.status", admin.ImportStatus)

	adm.Get("/orders", "admin.orders", admin.Orders)
	adm.Post("/orders/{id}/approve", "admin.orders.approve", admin.ApproveOrder)

	adm.Get("/stats", "admin.stats", admin.Stats)
	adm.Get("/users", "admin.users", admin.Users)
}
