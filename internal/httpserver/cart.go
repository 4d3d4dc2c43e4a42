package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/domain"
	cartsvc "storefront-api/internal/service/cart"
)

type cartService interface {
	List(ctx context.Context, userID string) ([]domain.CartItem, error)
	Replace(ctx context.Context, userID string, in cartsvc.ReplaceInput) error
	ComputeTotal(ctx context.Context, userID, discountCode string, now time.Time) (*cartsvc.Total, error)
	Checkout(ctx context.Context, userID string, now time.Time) (string, error)
}

func listCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), userIDFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		if items == nil {
			items = []domain.CartItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

func replaceCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.ReplaceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBadRequest(c, err)
			return
		}
		if err := svc.Replace(c.Request.Context(), userIDFrom(c), in); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func cartTotalHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := svc.ComputeTotal(c.Request.Context(), userIDFrom(c), c.Query("discountCode"), time.Now())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, total)
	}
}

func checkoutHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		url, err := svc.Checkout(c.Request.Context(), userIDFrom(c), time.Now())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
