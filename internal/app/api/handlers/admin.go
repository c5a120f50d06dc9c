package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitzone/memberd/internal/app/service/statistics"
	"github.com/fitzone/memberd/pkg/response"
)

// @Summary      Dashboard overview (Admin)
// @Description  Membership counts, outstanding balances, and daily revenue series.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  response.APIResponse[statistics.OverviewResponse]
// @Router       /api/v1/admin/overview [get]
func ApiGetOverview(svc *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.GetOverview(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterAdminRoutes(r gin.IRouter, stats *statistics.Service) {
	r.GET("/overview", ApiGetOverview(stats))
}
