package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/fitzone/memberd/internal/app/service/billing"
	"github.com/fitzone/memberd/internal/app/service/ledger"
	"github.com/fitzone/memberd/internal/models"
	"github.com/fitzone/memberd/pkg/money"
	"github.com/fitzone/memberd/pkg/response"
	"github.com/fitzone/memberd/pkg/types"
)

// Monetary fields in requests are decimal rupee strings ("400" or
// "400.50") so clients never ship binary floats; responses carry paise.

type RegisterCustomerRequest struct {
	Name                 string            `json:"name"`
	Email                *string           `json:"email,omitempty"`
	Phone                string            `json:"phone"`
	PackageType          types.PackageTier `json:"package_type"`
	HasCardio            bool              `json:"has_cardio"`
	HasPersonalTraining  bool              `json:"has_personal_training"`
	PersonalTrainingType string            `json:"personal_training_type,omitempty"`
	TreadmillAccess      bool              `json:"treadmill_access"`
	InitialPayment       string            `json:"initial_payment,omitempty"`
}

type RecordPaymentRequest struct {
	Amount      string            `json:"amount"`
	PaymentType types.PaymentType `json:"payment_type,omitempty"`
	Description string            `json:"description,omitempty"`
}

type ExtendMembershipRequest struct {
	Months               int    `json:"months"`
	HasCardio            bool   `json:"has_cardio"`
	HasPersonalTraining  bool   `json:"has_personal_training"`
	PersonalTrainingType string `json:"personal_training_type,omitempty"`
	TreadmillAccess      bool   `json:"treadmill_access"`
	InitialPayment       string `json:"initial_payment,omitempty"`
}

type CustomerDetailResponse struct {
	Customer *models.Customer `json:"customer"`
	Fees     []*models.Fee    `json:"fees"`
}

type CustomerListItem struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         *string           `json:"email"`
	Phone         string            `json:"phone"`
	PackageType   types.PackageTier `json:"package_type"`
	MembershipEnd time.Time         `json:"membership_end"`
	PendingAmount int64             `json:"pending_amount"`
	Expired       bool              `json:"expired"`
}

func toCustomerListItem(c *models.Customer, now time.Time) *CustomerListItem {
	return &CustomerListItem{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		PackageType:   c.PackageType,
		MembershipEnd: c.MembershipEnd,
		PendingAmount: c.PendingAmount,
		Expired:       !c.Active(now),
	}
}

func callerUserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// parseOptionalAmount parses a decimal rupee string to paise; empty means
// zero.
func parseOptionalAmount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return money.Parse(s)
}

func ledgerErrCode(err error) response.APIResponseCode {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return response.APIResponseCodeNotFound
	case errors.Is(err, ledger.ErrValidation),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidDuration),
		errors.Is(err, billing.ErrUnknownPackage),
		errors.Is(err, billing.ErrUnknownPlan),
		errors.Is(err, billing.ErrMissingPlan),
		errors.Is(err, money.ErrInvalidAmount):
		return response.APIResponseCodeBadRequest
	}
	return response.APIResponseCodeError
}

// @Summary      Register a customer
// @Description  Quotes the selected package and add-ons, creates the membership, and records the initial payment.
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        request body RegisterCustomerRequest true "Registration form"
// @Success      200  {object}  response.APIResponse[models.Customer]
// @Router       /api/v1/customers [post]
func ApiRegisterCustomer(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		initial, err := parseOptionalAmount(req.InitialPayment)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "invalid initial_payment"))
			return
		}
		customer, err := svc.RegisterCustomer(c.Request.Context(), &ledger.RegisterInput{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			PackageType: req.PackageType,
			AddOns: types.AddOns{
				HasCardio:            req.HasCardio,
				HasPersonalTraining:  req.HasPersonalTraining,
				PersonalTrainingType: req.PersonalTrainingType,
				TreadmillAccess:      req.TreadmillAccess,
			},
			InitialPayment: initial,
			RegisteredBy:   callerUserID(c),
		})
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](ledgerErrCode(err), err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(customer))
	}
}

// @Summary      List or search customers
// @Description  Case-insensitive substring search over name, email and phone; empty query returns everyone.
// @Tags         Customers
// @Produce      json
// @Param        query  query  string  false  "Search text"
// @Success      200  {object}  response.APIResponse[[]CustomerListItem]
// @Router       /api/v1/customers [get]
func ApiListCustomers(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := svc.SearchCustomers(c.Request.Context(), c.Query("query"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		now := time.Now()
		items := lo.Map(customers, func(cu *models.Customer, _ int) *CustomerListItem { return toCustomerListItem(cu, now) })
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Customer detail
// @Description  Returns the customer together with its fee history.
// @Tags         Customers
// @Produce      json
// @Param        id  path  string  true  "Customer id"
// @Success      200  {object}  response.APIResponse[CustomerDetailResponse]
// @Router       /api/v1/customers/{id} [get]
func ApiGetCustomer(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, err := svc.GetCustomer(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](ledgerErrCode(err), err.Error()))
			return
		}
		fees, err := svc.ListFees(c.Request.Context(), customer.ID)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(&CustomerDetailResponse{Customer: customer, Fees: fees}))
	}
}

// @Summary      Delete a customer
// @Description  Removes the customer and all of its fee entries atomically.
// @Tags         Customers
// @Produce      json
// @Param        id  path  string  true  "Customer id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/customers/{id} [delete]
func ApiDeleteCustomer(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](ledgerErrCode(err), err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Record a payment
// @Description  Appends a fee entry and settles it against the pending balance.
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Customer id"
// @Param        request body RecordPaymentRequest true "Payment form"
// @Success      200  {object}  response.APIResponse[models.Fee]
// @Router       /api/v1/customers/{id}/payments [post]
func ApiRecordPayment(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecordPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		amount, err := money.Parse(req.Amount)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "invalid amount"))
			return
		}
		fee, err := svc.RecordPayment(c.Request.Context(), c.Param("id"), amount, req.PaymentType, req.Description, callerUserID(c))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](ledgerErrCode(err), err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(fee))
	}
}

// @Summary      Extend a membership
// @Description  Prolongs the membership at the flat extension rate and replaces the pending balance with the new extension fee minus the payment.
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Customer id"
// @Param        request body ExtendMembershipRequest true "Extension form"
// @Success      200  {object}  response.APIResponse[models.Customer]
// @Router       /api/v1/customers/{id}/extend [post]
func ApiExtendMembership(svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExtendMembershipRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		initial, err := parseOptionalAmount(req.InitialPayment)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "invalid initial_payment"))
			return
		}
		customer, err := svc.ExtendMembership(c.Request.Context(), c.Param("id"), req.Months, types.AddOns{
			HasCardio:            req.HasCardio,
			HasPersonalTraining:  req.HasPersonalTraining,
			PersonalTrainingType: req.PersonalTrainingType,
			TreadmillAccess:      req.TreadmillAccess,
		}, initial, callerUserID(c))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](ledgerErrCode(err), err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(customer))
	}
}

func RegisterCustomerRoutes(r gin.IRouter, svc *ledger.Service) {
	r.POST("/customers", ApiRegisterCustomer(svc))
	r.GET("/customers", ApiListCustomers(svc))
	r.GET("/customers/:id", ApiGetCustomer(svc))
	r.DELETE("/customers/:id", ApiDeleteCustomer(svc))
	r.POST("/customers/:id/payments", ApiRecordPayment(svc))
	r.POST("/customers/:id/extend", ApiExtendMembership(svc))
}
