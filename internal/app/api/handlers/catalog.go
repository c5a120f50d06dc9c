package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cfgpkg "github.com/fitzone/memberd/pkg/config"
	"github.com/fitzone/memberd/pkg/response"
	"github.com/fitzone/memberd/pkg/types"
)

type CatalogResponse struct {
	Packages              []*types.Package              `json:"packages"`
	PersonalTrainingPlans []*types.PersonalTrainingPlan `json:"personal_training_plans"`
	TreadmillMonthlyRate  int64                         `json:"treadmill_monthly_rate"`
	ExtensionMonthlyRates map[types.PackageTier]int64   `json:"extension_monthly_rates"`
}

// @Summary      Membership catalog
// @Description  Returns the package and personal-training price tables used by the registration form. Amounts are in paise.
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  response.APIResponse[CatalogResponse]
// @Router       /api/v1/catalog [get]
func ApiGetCatalog(cfg *cfgpkg.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OKT(&CatalogResponse{
			Packages:              cfg.Catalog.Packages,
			PersonalTrainingPlans: cfg.Catalog.PersonalTrainingPlans,
			TreadmillMonthlyRate:  cfg.Catalog.TreadmillMonthlyRate,
			ExtensionMonthlyRates: cfg.Catalog.ExtensionMonthlyRates,
		}))
	}
}

func RegisterCatalogRoutes(r gin.IRouter, cfg *cfgpkg.Config) {
	r.GET("/catalog", ApiGetCatalog(cfg))
}
