package handler

import (
	appbilling "github.com/acme/dashboard/internal/application/billing"
	"github.com/acme/dashboard/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler serves the invoice listing and mutations
type InvoiceHandler struct {
	BaseHandler
	service *appbilling.InvoiceService
}

func NewInvoiceHandler(service *appbilling.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.List)
		invoices.GET("/pages", h.Pages)
		invoices.GET("/:id", h.Get)
		invoices.POST("", h.Create)
		invoices.PUT("/:id", h.Update)
		invoices.DELETE("/:id", h.Delete)
	}
}

// List returns one page of the filtered invoice listing
func (h *InvoiceHandler) List(c *gin.Context) {
	var req dto.ListingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid listing parameters")
		return
	}

	page, err := h.service.FetchFilteredInvoices(c.Request.Context(), req.Query, req.Page)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, dto.NewInvoiceRowResponses(page.Items), dto.Meta{
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		Total:      page.Total,
	})
}

// Pages returns the total page count for the filtered invoice listing
func (h *InvoiceHandler) Pages(c *gin.Context) {
	var req dto.ListingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid listing parameters")
		return
	}

	pages, err := h.service.FetchFilteredInvoicesPages(c.Request.Context(), req.Query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"total_pages": pages})
}

// Get returns a single invoice for the edit form
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice id")
		return
	}

	invoice, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewInvoiceResponse(invoice))
}

// Create handles the new-invoice form submission
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.InvoiceFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BadRequest(c, "Invalid form payload")
		return
	}

	state := h.service.CreateInvoice(c.Request.Context(), req.ToInput())
	h.HandleActionState(c, state)
}

// Update handles the edit-invoice form submission
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice id")
		return
	}

	var req dto.InvoiceFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BadRequest(c, "Invalid form payload")
		return
	}

	state := h.service.UpdateInvoice(c.Request.Context(), id, req.ToInput())
	h.HandleActionState(c, state)
}

// Delete removes an invoice. The response is 204 regardless of outcome; the
// listing refresh shows the caller what actually happened.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice id")
		return
	}

	h.service.DeleteInvoice(c.Request.Context(), id)
	h.NoContent(c)
}
