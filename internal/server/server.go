// Package server wires the application together: configuration, database,
// cache, storage, audit trail, services, routes and the HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shashiranjanraj/kashvi-admin/app/controllers"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/app/routes"
	"github.com/shashiranjanraj/kashvi-admin/app/services"
	"github.com/shashiranjanraj/kashvi-admin/config"
	"github.com/shashiranjanraj/kashvi-admin/pkg/audit"
	"github.com/shashiranjanraj/kashvi-admin/pkg/cache"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/migration"
	"github.com/shashiranjanraj/kashvi-admin/pkg/router"
	"github.com/shashiranjanraj/kashvi-admin/pkg/schedule"
	"github.com/shashiranjanraj/kashvi-admin/pkg/storage"
	"github.com/shashiranjanraj/kashvi-admin/pkg/ws"
)

// App holds the wired application. Construction does not touch the network
// or the database, so App can be built in tests against any backends.
type App struct {
	Router    *router.Router
	Hub       *ws.Hub
	Dashboard *services.DashboardService
}

// BuildApp constructs repositories, services, controllers and routes.
// disk may be nil (thumbnail uploads then fail gracefully); otps selects
// where signup codes live.
func BuildApp(disk storage.Disk, otps services.OTPStore) (*App, error) {
	userRepo := repositories.NewUserRepository()
	categoryRepo := repositories.NewCategoryRepository()
	idolRepo := repositories.NewIdolRepository()
	orderRepo := repositories.NewOrderRepository()
	formRepo := repositories.NewCustomFormRepository()
	chargesRepo := repositories.NewChargesRepository()

	hub := ws.NewHub()

	authSvc := services.NewAuthService(userRepo, otps)
	userSvc := services.NewUserService(userRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	idolSvc := services.NewIdolService(idolRepo, categoryRepo, disk)
	orderSvc := services.NewOrderService(orderRepo, hub)
	formSvc := services.NewCustomFormService(formRepo)
	chargesSvc := services.NewChargesService(chargesRepo)
	dashboardSvc := services.NewDashboardService(orderRepo, idolRepo, userRepo)

	graphqlCtl, err := controllers.NewGraphQLController(dashboardSvc, idolSvc, categorySvc, orderSvc)
	if err != nil {
		return nil, err
	}

	r := router.New()
	routes.Register(r, routes.Controllers{
		Auth:       controllers.NewAuthController(authSvc),
		User:       controllers.NewUserController(userSvc),
		Category:   controllers.NewCategoryController(categorySvc),
		Idol:       controllers.NewIdolController(idolSvc),
		Order:      controllers.NewOrderController(orderSvc),
		CustomForm: controllers.NewCustomFormController(formSvc),
		Charges:    controllers.NewChargesController(chargesSvc),
		Dashboard:  controllers.NewDashboardController(dashboardSvc),
		GraphQL:    graphqlCtl,
		OrderHub:   hub,
	})

	return &App{Router: r, Hub: hub, Dashboard: dashboardSvc}, nil
}

// Run boots every backend, starts the HTTP server and blocks until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := database.Connect(); err != nil {
		return err
	}
	if err := migration.New(database.DB).Run(); err != nil {
		return err
	}

	// Redis and MongoDB are optional backends: without them OTPs fall back
	// to memory, the dashboard cache is cold and auditing is off.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}
	if err := audit.Connect(); err != nil {
		logger.Warn("mongodb unavailable, status audit disabled", "error", err)
	}
	defer audit.Close()

	if err := storage.Connect(ctx); err != nil {
		return err
	}
	disk, err := storage.Default()
	if err != nil {
		return err
	}

	var otps services.OTPStore = services.NewRedisOTPStore()
	if cache.RDB == nil {
		otps = services.NewMemoryOTPStore()
	}

	app, err := BuildApp(disk, otps)
	if err != nil {
		return err
	}

	// Keep the dashboard cache warm for the polling console.
	schedule.Every(1).Minutes().Immediately().Run(func(jobCtx context.Context) {
		if _, err := app.Dashboard.Refresh(jobCtx); err != nil {
			logger.Warn("dashboard refresh failed", "error", err)
		}
	})
	schedule.Start(ctx)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           app.Router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
