package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/domain"
	attributesvc "storefront-api/internal/service/attribute"
	categorysvc "storefront-api/internal/service/category"
	currencysvc "storefront-api/internal/service/currency"
)

type categoryService interface {
	Create(ctx context.Context, in categorysvc.CreateInput) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, id string, in categorysvc.UpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type attributeService interface {
	Create(ctx context.Context, in attributesvc.CreateInput) (*domain.Attribute, error)
	List(ctx context.Context) ([]domain.Attribute, error)
	Get(ctx context.Context, id string) (*domain.Attribute, error)
	Update(ctx context.Context, id string, in attributesvc.UpdateInput) (*domain.Attribute, error)
	Delete(ctx context.Context, id string) error
}

type currencyService interface {
	Create(ctx context.Context, in currencysvc.Input) (*domain.Currency, error)
	List(ctx context.Context) ([]domain.Currency, error)
	Get(ctx context.Context, id string) (*domain.Currency, error)
	Update(ctx context.Context, id string, in currencysvc.Input) (*domain.Currency, error)
	Delete(ctx context.Context, id string) error
}

func listCategoriesHandler(svc categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func getCategoryHandler(svc categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

func createCategoryHandler(svc categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBadRequest(c, err)
			return
		}
		cat, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

func updateCategoryHandler(svc categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBadRequest(c, err)
			return
		}
		cat, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

func deleteCategoryHandler(svc categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listAttributesHandler(svc attributeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		attributes, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, attributes)
	}
}

func getAttributeHandler(svc attributeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		attr, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, attr)
	}
}

func createAttributeHandler(svc attributeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in attributesvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBadRequest(c, err)
			return
		}
		attr, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, attr)
	}
}

func updateAttributeHandler(svc attributeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in attributesvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBadRequest(c, err)
			return
		}
		attr, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, attr)
	}
}

func deleteAttributeHandler(svc attributeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listCurrenciesHandler(svc currencyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		currencies, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, currencies)
	}
}

func getCurrencyHandler(svc currencyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cur, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cur)
	}
}

func createCurrencyHandler(svc currencyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in currencysvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBadRequest(c, err)
			return
		}
		cur, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cur)
	}
}

func updateCurrencyHandler(svc currencyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in currencysvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBadRequest(c, err)
			return
		}
		cur, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cur)
	}
}

func deleteCurrencyHandler(svc currencyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
