package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clayhaus/backoffice/internal/fault"
	"github.com/clayhaus/backoffice/internal/lifecycle"
	"github.com/clayhaus/backoffice/internal/order"
	"github.com/clayhaus/backoffice/internal/registration"
)

// All mutations answer with the same shape: {"success":true} or
// {"success":false,"error":...,"kind":...}. The admin UI shows the
// error string verbatim; kind is for machine handling.
func respondOK(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func respondErr(c *gin.Context, err error) {
	kind := fault.KindOf(err)
	msg := err.Error()
	code := http.StatusInternalServerError
	switch kind {
	case fault.NotFound:
		code = http.StatusNotFound
	case fault.Validation:
		code = http.StatusBadRequest
	case fault.Capacity:
		code = http.StatusConflict
	case fault.Unauthorized:
		code = http.StatusForbidden
	default:
		log.Printf("[admin] internal error: %v", err)
		msg = "internal error"
	}
	c.JSON(code, gin.H{"success": false, "error": msg, "kind": string(kind)})
}

func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, items, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		respondOK(c, gin.H{"order": o, "items": items})
	}
}

func setOrderStatusHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondErr(c, fault.New(fault.Validation, "status is required"))
			return
		}
		if err := svc.SetStatus(c.Request.Context(), c.Param("id"), lifecycle.Status(req.Status)); err != nil {
			respondErr(c, err)
			return
		}
		respondOK(c, nil)
	}
}

func setOrderDiscountHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			TotalDiscountCents *int64 `json:"total_discount_cents" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondErr(c, fault.New(fault.Validation, "total_discount_cents is required"))
			return
		}
		if err := svc.SetDiscount(c.Request.Context(), c.Param("id"), *req.TotalDiscountCents); err != nil {
			respondErr(c, err)
			return
		}
		respondOK(c, nil)
	}
}

func setItemDiscountHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			DiscountCents *int64 `json:"discount_cents" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondErr(c, fault.New(fault.Validation, "discount_cents is required"))
			return
		}
		if err := svc.SetItemDiscount(c.Request.Context(), c.Param("id"), c.Param("item_id"), *req.DiscountCents); err != nil {
			respondErr(c, err)
			return
		}
		respondOK(c, nil)
	}
}

func setItemQuantityHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Quantity *int `json:"quantity" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondErr(c, fault.New(fault.Validation, "quantity must be a positive integer"))
			return
		}
		if err := svc.SetItemQuantity(c.Request.Context(), c.Param("id"), c.Param("item_id"), *req.Quantity); err != nil {
			respondErr(c, err)
			return
		}
		respondOK(c, nil)
	}
}

func getRegistrationHandler(svc *registration.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		reg, ev, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		respondOK(c, gin.H{"registration": reg, "event": ev})
	}
}

func setRegistrationStatusHandler(svc *registration.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondErr(c, fault.New(fault.Validation, "status is required"))
			return
		}
		if err := svc.SetStatus(c.Request.Context(), c.Param("id"), lifecycle.Status(req.Status)); err != nil {
			respondErr(c, err)
			return
		}
		respondOK(c, nil)
	}
}

func setRegistrationDiscountHandler(svc *registration.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			DiscountCents *int64 `json:"discount_cents" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondErr(c, fault.New(fault.Validation, "discount_cents is required"))
			return
		}
		if err := svc.SetDiscount(c.Request.Context(), c.Param("id"), *req.DiscountCents); err != nil {
			respondErr(c, err)
			return
		}
		respondOK(c, nil)
	}
}

func setRegistrationDetailsHandler(svc *registration.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			PriceCents    *int64 `json:"price_cents" binding:"required"`
			DiscountCents *int64 `json:"discount_cents" binding:"required"`
			SeatsReserved *int   `json:"seats_reserved" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondErr(c, fault.New(fault.Validation, "price_cents, discount_cents and seats_reserved are required"))
			return
		}
		if err := svc.SetDetails(c.Request.Context(), c.Param("id"),
			*req.PriceCents, *req.DiscountCents, *req.SeatsReserved); err != nil {
			respondErr(c, err)
			return
		}
		respondOK(c, nil)
	}
}
