package httpserver

import (
	"errors"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/domain"
)

// Deps carries the services the router depends on. Each field is an
// interface so handler tests can swap in stubs.
type Deps struct {
	Tokens     tokenParser
	Users      userService
	Categories categoryService
	Attributes attributeService
	Products   productService
	Currencies currencyService
	Cart       cartService
	Discounts  discountService
}

func (d Deps) validate() error {
	switch {
	case d.Tokens == nil:
		return errors.New("httpserver: Tokens dependency is nil")
	case d.Users == nil:
		return errors.New("httpserver: Users dependency is nil")
	case d.Categories == nil:
		return errors.New("httpserver: Categories dependency is nil")
	case d.Attributes == nil:
		return errors.New("httpserver: Attributes dependency is nil")
	case d.Products == nil:
		return errors.New("httpserver: Products dependency is nil")
	case d.Currencies == nil:
		return errors.New("httpserver: Currencies dependency is nil")
	case d.Cart == nil:
		return errors.New("httpserver: Cart dependency is nil")
	case d.Discounts == nil:
		return errors.New("httpserver: Discounts dependency is nil")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	authed := requireAuth(deps.Tokens)
	adminOnly := requireRoles(domain.RoleAdmin)

	auth := router.Group("/auth")
	{
		auth.POST("/register", registerHandler(deps.Users))
		auth.POST("/login", loginHandler(deps.Users))
		auth.GET("/account", authed, accountHandler(deps.Users))
		auth.GET("/users", authed, adminOnly, listUsersHandler(deps.Users))
	}

	category := router.Group("/category")
	{
		category.GET("", listCategoriesHandler(deps.Categories))
		category.GET("/:id", getCategoryHandler(deps.Categories))
		category.POST("", authed, adminOnly, createCategoryHandler(deps.Categories))
		category.PUT("/:id", authed, adminOnly, updateCategoryHandler(deps.Categories))
		category.DELETE("/:id", authed, adminOnly, deleteCategoryHandler(deps.Categories))
	}

	attribute := router.Group("/attribute")
	{
		attribute.GET("", listAttributesHandler(deps.Attributes))
		attribute.GET("/:id", getAttributeHandler(deps.Attributes))
		attribute.POST("", authed, adminOnly, createAttributeHandler(deps.Attributes))
		attribute.PUT("/:id", authed, adminOnly, updateAttributeHandler(deps.Attributes))
		attribute.DELETE("/:id", authed, adminOnly, deleteAttributeHandler(deps.Attributes))
	}

	currency := router.Group("/currency")
	{
		currency.GET("", listCurrenciesHandler(deps.Currencies))
		currency.GET("/:id", getCurrencyHandler(deps.Currencies))
		currency.POST("", authed, adminOnly, createCurrencyHandler(deps.Currencies))
		currency.PUT("/:id", authed, adminOnly, updateCurrencyHandler(deps.Currencies))
		currency.DELETE("/:id", authed, adminOnly, deleteCurrencyHandler(deps.Currencies))
	}

	product := router.Group("/product")
	{
		product.GET("", listProductsHandler(deps.Products))
		product.GET("/:id", getProductHandler(deps.Products))
		product.POST("", authed, adminOnly, createProductHandler(deps.Products))
		product.PUT("/:id", authed, adminOnly, updateProductHandler(deps.Products))
		product.DELETE("/:id", authed, adminOnly, deleteProductHandler(deps.Products))
		product.POST("/:id/prices", authed, adminOnly, addPriceHandler(deps.Products))
	}

	cart := router.Group("/cart", authed, requireRoles(domain.RoleUser, domain.RoleAdmin))
	{
		cart.GET("", listCartHandler(deps.Cart))
		cart.POST("", replaceCartHandler(deps.Cart))
		cart.GET("/total", cartTotalHandler(deps.Cart))
		cart.GET("/checkout", checkoutHandler(deps.Cart))
	}

	discount := router.Group("/discount", authed, adminOnly)
	{
		discount.GET("", listDiscountsHandler(deps.Discounts))
		discount.GET("/:code", getDiscountHandler(deps.Discounts))
		discount.POST("", createDiscountHandler(deps.Discounts))
		discount.PUT("/:code", updateDiscountHandler(deps.Discounts))
		discount.DELETE("/:code", deleteDiscountHandler(deps.Discounts))
	}

	return router, nil
}
