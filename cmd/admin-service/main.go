package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clayhaus/backoffice/internal/authz"
	"github.com/clayhaus/backoffice/internal/cachex"
	"github.com/clayhaus/backoffice/internal/config"
	"github.com/clayhaus/backoffice/internal/httpx"
	"github.com/clayhaus/backoffice/internal/order"
	"github.com/clayhaus/backoffice/internal/registration"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	db, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[admin] postgres: %v", err)
	}
	defer db.Close()

	rdb := cachex.NewClient(cfg.RedisAddr)
	defer rdb.Close()

	gate := authz.NewTokenAuthorizer(cfg.AdminTokenHash)
	views := cachex.NewInvalidator(rdb)

	orderSvc := order.NewService(order.NewPGRepo(db), gate, views)
	regSvc := registration.NewService(registration.NewPGRepo(db), gate, views)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.AdminToken())

	r.GET("/healthz", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/orders/:id", getOrderHandler(orderSvc))
	r.PUT("/orders/:id/status", setOrderStatusHandler(orderSvc))
	r.PUT("/orders/:id/discount", setOrderDiscountHandler(orderSvc))
	r.PUT("/orders/:id/items/:item_id/discount", setItemDiscountHandler(orderSvc))
	r.PUT("/orders/:id/items/:item_id/quantity", setItemQuantityHandler(orderSvc))

	r.GET("/registrations/:id", getRegistrationHandler(regSvc))
	r.PUT("/registrations/:id/status", setRegistrationStatusHandler(regSvc))
	r.PUT("/registrations/:id/discount", setRegistrationDiscountHandler(regSvc))
	r.PUT("/registrations/:id/details", setRegistrationDetailsHandler(regSvc))

	srv := &http.Server{Addr: cfg.AdminSvcAddr, Handler: r}
	go func() {
		log.Printf("admin-service listening on %s", cfg.AdminSvcAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[admin] listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[admin] shutdown: %v", err)
	}
}
