package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/domain"
	discountsvc "storefront-api/internal/service/discount"
)

type discountService interface {
	Create(ctx context.Context, in discountsvc.CreateInput) (*domain.Discount, error)
	List(ctx context.Context) ([]domain.Discount, error)
	Get(ctx context.Context, code string) (*domain.Discount, error)
	Update(ctx context.Context, code string, in discountsvc.UpdateInput) (*domain.Discount, error)
	Delete(ctx context.Context, code string) error
}

func listDiscountsHandler(svc discountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		discounts, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, discounts)
	}
}

func getDiscountHandler(svc discountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.Get(c.Request.Context(), c.Param("code"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func createDiscountHandler(svc discountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in discountsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBadRequest(c, err)
			return
		}
		d, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, d)
	}
}

func updateDiscountHandler(svc discountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in discountsvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBadRequest(c, err)
			return
		}
		d, err := svc.Update(c.Request.Context(), c.Param("code"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func deleteDiscountHandler(svc discountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("code")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
