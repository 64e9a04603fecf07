// Package routes declares every HTTP route of the admin API and the
// middleware stack around them.
package routes

import (
	"time"

	"github.com/shashiranjanraj/kashvi-admin/app/controllers"
	"github.com/shashiranjanraj/kashvi-admin/pkg/metrics"
	"github.com/shashiranjanraj/kashvi-admin/pkg/middleware"
	"github.com/shashiranjanraj/kashvi-admin/pkg/reqid"
	"github.com/shashiranjanraj/kashvi-admin/pkg/router"
	"github.com/shashiranjanraj/kashvi-admin/pkg/ws"
)

// Controllers bundles everything Register needs to mount the API.
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Category   *controllers.CategoryController
	Idol       *controllers.IdolController
	Order      *controllers.OrderController
	CustomForm *controllers.CustomFormController
	Charges    *controllers.ChargesController
	Dashboard  *controllers.DashboardController
	GraphQL    *controllers.GraphQLController
	OrderHub   *ws.Hub
}

// Register mounts all routes. Paths match what the storefront console
// already calls, so changing them is a breaking change for deployed UIs.
func Register(r *router.Router, c Controllers) {
	r.Use(
		reqid.Middleware(),
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(middleware.DefaultCORSOptions()),
		metrics.Middleware(nil),
		middleware.RateLimit(300, time.Minute),
	)

	r.HandleFunc("/metrics", metrics.Handler().ServeHTTP)

	api := r.Group("/api")

	// Signup wizard and address book. Public: these run before the caller
	// has an account.
	signup := api.Group("/users/signup")
	signup.Post("/send_otp", "signup.send_otp", c.Auth.SendOTP)
	signup.Post("/verify_otp", "signup.verify_otp", c.Auth.VerifyOTP)
	signup.Post("/validate", "signup.validate", c.Auth.ValidateStep)
	signup.Post("/admin", "signup.admin", c.Auth.Signup)
	signup.Post("/admin/authenticate", "signup.authenticate", c.Auth.Login)
	signup.Post("/add_address/{userId}", "signup.add_address", c.User.AddAddress, middleware.Auth)
	signup.Get("/address/{userId}", "signup.address", c.User.Addresses, middleware.Auth)

	// Everything below requires an authenticated admin.
	users := api.Group("/users/login", middleware.Auth)
	users.Get("/userlist", "users.list", c.User.List)
	users.Get("/userlist/{id}", "users.get", c.User.Get)
	users.Delete("/delete/{id}", "users.delete", c.User.Delete)

	products := api.Group("/products", middleware.Auth)
	products.Get("/", "products.list", c.Idol.List)
	products.Post("/add", "products.add", c.Idol.Add)
	products.Put("/update/{id}", "products.update", c.Idol.Update)
	products.Delete("/delete/{id}", "products.delete", c.Idol.Delete)

	products.Get("/category/fetch", "categories.fetch", c.Category.Fetch)
	products.Post("/category/add", "categories.add", c.Category.Add)
	products.Put("/category/update/{id}", "categories.update", c.Category.Update)
	products.Delete("/category/delete/{id}", "categories.delete", c.Category.Delete)

	products.Get("/orders/allorders", "orders.list", c.Order.List)
	products.Get("/orders/get/user_orders/{id}", "orders.by_user", c.Order.UserOrders)
	products.Put("/orders/update/{id}", "orders.update_status", c.Order.UpdateStatus)
	products.Put("/orders/cancel_order/{id}", "orders.cancel", c.Order.Cancel)
	products.Get("/orders/fetch/status", "orders.statuses", c.Order.Statuses)

	// Static segments (category, orders) take precedence over the pattern.
	products.Get("/{id}", "products.get", c.Idol.Get)

	custom := api.Group("/custom-idol", middleware.Auth)
	custom.Get("/fetch-list", "customforms.list", c.CustomForm.List)
	custom.Get("/fetch-list/{id}", "customforms.get", c.CustomForm.Get)
	custom.Put("/update/status/{id}", "customforms.update_status", c.CustomForm.UpdateStatus)

	charges := api.Group("/charges", middleware.Auth)
	charges.Get("/fetch", "charges.fetch", c.Charges.Fetch)
	charges.Post("/add", "charges.add", c.Charges.Add)

	dashboard := api.Group("/dashboard", middleware.Auth)
	dashboard.Get("/fetch", "dashboard.fetch", c.Dashboard.Fetch)

	api.Post("/graphql", "graphql", c.GraphQL.Query, middleware.Auth)

	if c.OrderHub != nil {
		api.Get("/orders/live", "orders.live", c.OrderHub.ServeHTTP, middleware.Auth)
	}
}
