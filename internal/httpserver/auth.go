package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/domain"
	usersvc "storefront-api/internal/service/user"
)

type userService interface {
	Register(ctx context.Context, in usersvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Account(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

func registerHandler(svc userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBadRequest(c, err)
			return
		}
		u, err := svc.Register(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

func loginHandler(svc userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBadRequest(c, err)
			return
		}
		u, token, err := svc.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, loginResponse{User: u, AccessToken: token})
	}
}

func accountHandler(svc userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.Account(c.Request.Context(), userIDFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func listUsersHandler(svc userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
