package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/auth"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/banners"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/cart"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/categories"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/config"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/customers"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/dbproxy"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/logger"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/mail"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/orders"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/products"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/settings"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})

	local, err := store.NewLocal(cfg.LocalStoreDir, log)
	if err != nil {
		log.WithError(err).Fatal("local store init failed")
	}
	defer local.Close()

	// Direct client: the pgx pool by default, the generic database/sql
	// wrapper when DATABASE_CLIENT=sql.
	var direct *store.Direct
	if cfg.DatabaseURL != "" {
		var client store.Client
		switch cfg.DatabaseClient {
		case "sql":
			client, err = store.NewSQLClient("postgres", cfg.DatabaseURL)
		default:
			client, err = store.NewPgxClient(context.Background(), cfg.DatabaseURL)
		}
		if err != nil {
			log.WithError(err).Fatal("database connection failed")
		}
		defer client.Close()
		direct = store.NewDirect(client)
	}

	remote := store.NewRemote(cfg.ProxyBaseURL, local, log)

	var directExec store.Executor
	if direct != nil {
		directExec = direct
	}
	router, err := store.NewRouter(store.Mode(cfg.StorageMode), directExec, remote)
	if err != nil {
		log.WithError(err).Fatal("storage router init failed")
	}

	mailer := mail.NewMailer(mail.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	})

	carts := cart.NewStore()

	prodSvc := products.NewService(router, log)
	prodHandler := products.NewHandler(prodSvc)
	catSvc := categories.NewService(router, log)
	catHandler := categories.NewHandler(catSvc)
	orderSvc := orders.NewService(router, mailer, log)
	orderHandler := orders.NewHandler(orderSvc, carts)
	custSvc := customers.NewService(router, log)
	custHandler := customers.NewHandler(custSvc)
	bannerSvc := banners.NewService(router, log)
	bannerHandler := banners.NewHandler(bannerSvc)
	cartHandler := cart.NewHandler(carts)
	proxyHandler := dbproxy.NewHandler(direct, log)
	settingsHandler := settings.NewHandler(local, log)

	r := gin.Default()
	api := r.Group("/api")

	// Query proxy for browser-context clients.
	api.POST("/db", proxyHandler.Exec)

	// Public storefront.
	api.GET("/products", prodHandler.ListPublic)
	api.GET("/products/:id", prodHandler.GetPublic)
	api.GET("/categories", catHandler.ListPublic)
	api.GET("/categories/:slug", catHandler.GetBySlug)
	api.GET("/banners", bannerHandler.ListPublic)

	api.GET("/cart", cartHandler.Get)
	api.POST("/cart/items", cartHandler.AddItem)
	api.PATCH("/cart/items", cartHandler.UpdateQty)
	api.DELETE("/cart/items", cartHandler.RemoveItem)

	api.POST("/checkout", orderHandler.Checkout)

	api.POST("/admin/login", auth.LoginHandler(cfg.AdminUser, cfg.AdminPass, cfg.AdminToken))

	admin := api.Group("/admin")
	admin.Use(auth.RequireToken(cfg.AdminToken))
	{
		admin.GET("/products", prodHandler.AdminList)
		admin.POST("/products", prodHandler.AdminCreate)
		admin.PATCH("/products/:id", prodHandler.AdminUpdate)
		admin.DELETE("/products/:id", prodHandler.AdminDelete)
		admin.POST("/products/bulk-delete", prodHandler.AdminBulkDelete)
		admin.POST("/products/bulk-status", prodHandler.AdminBulkStatus)
		admin.GET("/products/export", prodHandler.AdminExport)
		admin.POST("/products/import", prodHandler.AdminImport)

		admin.GET("/categories", catHandler.AdminList)
		admin.POST("/categories", catHandler.AdminCreate)
		admin.PATCH("/categories/:id", catHandler.AdminUpdate)
		admin.DELETE("/categories/:id", catHandler.AdminDelete)

		admin.GET("/orders", orderHandler.AdminList)
		admin.GET("/orders/:id", orderHandler.AdminGet)
		admin.PATCH("/orders/:id/status", orderHandler.AdminUpdateStatus)
		admin.PATCH("/orders/:id/payment-status", orderHandler.AdminUpdatePaymentStatus)
		admin.POST("/orders/bulk-status", orderHandler.AdminBulkStatus)

		admin.GET("/customers", custHandler.AdminList)
		admin.POST("/customers", custHandler.AdminCreate)
		admin.GET("/customers/:id", custHandler.AdminGet)
		admin.PATCH("/customers/:id", custHandler.AdminUpdate)
		admin.DELETE("/customers/:id", custHandler.AdminDelete)

		admin.GET("/banners", bannerHandler.AdminList)
		admin.POST("/banners", bannerHandler.AdminCreate)
		admin.PATCH("/banners/:id", bannerHandler.AdminUpdate)
		admin.DELETE("/banners/:id", bannerHandler.AdminDelete)
		admin.POST("/banners/:id/move", bannerHandler.AdminMove)

		admin.POST("/settings/reset-local", settingsHandler.Reset)
	}

	log.WithField("addr", cfg.HTTPAddr).Info("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
