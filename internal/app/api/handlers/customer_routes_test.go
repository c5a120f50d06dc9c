package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomerRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1")
	RegisterCustomerRoutes(g, nil)

	routes := r.Routes()
	contains := func(target string) bool {
		for _, rt := range routes {
			if rt.Method+" "+rt.Path == target {
				return true
			}
		}
		return false
	}

	require.True(t, contains("POST /api/v1/customers"))
	require.True(t, contains("GET /api/v1/customers"))
	require.True(t, contains("GET /api/v1/customers/:id"))
	require.True(t, contains("DELETE /api/v1/customers/:id"))
	require.True(t, contains("POST /api/v1/customers/:id/payments"))
	require.True(t, contains("POST /api/v1/customers/:id/extend"))
}

func TestRegisterAuthRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1")
	RegisterAuthRoutes(g, nil)

	routes := r.Routes()
	contains := func(target string) bool {
		for _, rt := range routes {
			if rt.Method+" "+rt.Path == target {
				return true
			}
		}
		return false
	}

	require.True(t, contains("GET /api/v1/auth/bootstrap"))
	require.True(t, contains("POST /api/v1/auth/bootstrap"))
	require.True(t, contains("POST /api/v1/auth/login"))
}
