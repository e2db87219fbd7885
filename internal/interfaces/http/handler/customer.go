package handler

import (
	apppartner "github.com/acme/dashboard/internal/application/partner"
	"github.com/acme/dashboard/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the customer listing and creation
type CustomerHandler struct {
	BaseHandler
	service *apppartner.CustomerService
}

func NewCustomerHandler(service *apppartner.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.GET("/pages", h.Pages)
		customers.POST("", h.Create)
	}
}

// List returns one page of the filtered customer listing
func (h *CustomerHandler) List(c *gin.Context) {
	var req dto.ListingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid listing parameters")
		return
	}

	page, err := h.service.FetchFilteredCustomers(c.Request.Context(), req.Query, req.Page)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, dto.NewCustomerResponses(page.Items), dto.Meta{
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		Total:      page.Total,
	})
}

// Pages returns the total page count for the filtered customer listing
func (h *CustomerHandler) Pages(c *gin.Context) {
	var req dto.ListingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid listing parameters")
		return
	}

	pages, err := h.service.FetchFilteredCustomersPages(c.Request.Context(), req.Query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"total_pages": pages})
}

// Create handles the new-customer form submission
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BadRequest(c, "Invalid form payload")
		return
	}

	state := h.service.CreateCustomer(c.Request.Context(), req.ToInput())
	h.HandleActionState(c, state)
}
