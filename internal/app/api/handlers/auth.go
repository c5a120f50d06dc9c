package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authsvc "github.com/fitzone/memberd/internal/app/service/auth"
	"github.com/fitzone/memberd/pkg/response"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// @Summary      Bootstrap status
// @Description  Reports whether an administrator account exists yet.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/v1/auth/bootstrap [get]
func ApiBootstrapStatus(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		exists, err := svc.AdminExists(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(map[string]bool{"admin_exists": exists}))
	}
}

// @Summary      Create the administrator account
// @Description  One-time setup; rejected once an admin exists.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body CredentialsRequest true "Admin credentials"
// @Success      200  {object}  response.APIResponse[map[string]string]
// @Router       /api/v1/auth/bootstrap [post]
func ApiBootstrapAdmin(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		user, err := svc.Bootstrap(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, authsvc.ErrAdminExists), errors.Is(err, authsvc.ErrUsernameTaken):
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeConflict, err.Error()))
			case errors.Is(err, authsvc.ErrInvalidCredentials):
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			default:
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			}
			return
		}
		c.JSON(http.StatusOK, response.OKT(map[string]string{"user_id": user.ID, "username": user.Username}))
	}
}

// @Summary      Login
// @Description  Exchanges credentials for a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body CredentialsRequest true "Credentials"
// @Success      200  {object}  response.APIResponse[LoginResponse]
// @Router       /api/v1/auth/login [post]
func ApiLogin(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		token, user, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeUnauthorized, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(&LoginResponse{Token: token, Username: user.Username, IsAdmin: user.IsAdmin}))
	}
}

func RegisterAuthRoutes(r gin.IRouter, svc *authsvc.Service) {
	r.GET("/auth/bootstrap", ApiBootstrapStatus(svc))
	r.POST("/auth/bootstrap", ApiBootstrapAdmin(svc))
	r.POST("/auth/login", ApiLogin(svc))
}
