package handler

import (
	"github.com/gin-gonic/gin"
	printingapp "github.com/printhub/backend/internal/application/printing"
	"github.com/printhub/backend/internal/domain/shared"
	"github.com/printhub/backend/internal/interfaces/http/dto"
)

// PrintHandler handles print-related API endpoints
type PrintHandler struct {
	BaseHandler
	printService *printingapp.PrintService
}

// NewPrintHandler creates a new PrintHandler
func NewPrintHandler(printService *printingapp.PrintService) *PrintHandler {
	return &PrintHandler{
		printService: printService,
	}
}

// =============================================================================
// Request/Response Types
// =============================================================================

// SendLabelsHTTPRequest represents a request to print labels for records
//
//	@Description	Request body for sending labels to a printer
type SendLabelsHTTPRequest struct {
	ProviderID string            `json:"provider_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	PrinterID  string            `json:"printer_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440001"`
	TableID    string            `json:"table_id" binding:"required" example:"M_Product"`
	RecordIDs  []string          `json:"record_ids" binding:"required,min=1"`
	Copies     int               `json:"copies" binding:"omitempty,min=1,max=100" example:"1"`
	Params     map[string]string `json:"params"`
}

// =============================================================================
// Label Dispatch Endpoints
// =============================================================================

// SendLabels godoc
//
//	@ID				sendPrintLabels
//
//	@Summary		Print labels for records
//	@Description	Generate and dispatch labels for one or more records to a printer
//	@Tags			print-labels
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SendLabelsHTTPRequest	true	"Label dispatch request"
//	@Success		200		{object}	APIResponse[printingapp.SendLabelsResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/print/labels [post]
func (h *PrintHandler) SendLabels(c *gin.Context) {
	var req SendLabelsHTTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.printService.SendLabels(c.Request.Context(), printingapp.SendLabelsRequest{
		ProviderID: req.ProviderID,
		PrinterID:  req.PrinterID,
		TableID:    req.TableID,
		RecordIDs:  req.RecordIDs,
		Copies:     req.Copies,
		Params:     req.Params,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// =============================================================================
// Provider Endpoints
// =============================================================================

// ListProviders godoc
//
//	@ID				listPrintProviders
//
//	@Summary		List print providers
//	@Description	Retrieve the configured print providers
//	@Tags			print-providers
//	@Produce		json
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)
//	@Success		200			{object}	APIResponse[[]printingapp.ProviderResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/print/providers [get]
func (h *PrintHandler) ListProviders(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := shared.DefaultFilter()
	applyListRequest(&filter, req)

	result, err := h.printService.ListProviders(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RefreshPrinters godoc
//
//	@ID				refreshPrintProviderPrinters
//
//	@Summary		Refresh printer catalog
//	@Description	Fetch the remote printer catalog of a provider and reconcile the local one against it
//	@Tags			print-providers
//	@Produce		json
//	@Param			id	path		string	true	"Provider ID or search key"
//	@Success		200	{object}	APIResponse[printingapp.ReconcileResult]
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/print/providers/{id}/printers/refresh [post]
func (h *PrintHandler) RefreshPrinters(c *gin.Context) {
	providerID := c.Param("id")
	if providerID == "" {
		h.BadRequest(c, "Provider ID is required")
		return
	}

	result, err := h.printService.RefreshPrinters(c.Request.Context(), providerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListPrinters godoc
//
//	@ID				listPrintProviderPrinters
//
//	@Summary		List printers of a provider
//	@Description	Retrieve the locally known printers of a provider
//	@Tags			print-providers
//	@Produce		json
//	@Param			id	path		string	true	"Provider ID or search key"
//	@Success		200	{object}	APIResponse[[]printingapp.PrinterResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/print/providers/{id}/printers [get]
func (h *PrintHandler) ListPrinters(c *gin.Context) {
	providerID := c.Param("id")
	if providerID == "" {
		h.BadRequest(c, "Provider ID is required")
		return
	}

	result, err := h.printService.ListPrinters(c.Request.Context(), providerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// =============================================================================
// Print Job Endpoints
// =============================================================================

// ListJobs godoc
//
//	@ID				listPrintJobs
//
//	@Summary		List print jobs of a provider
//	@Description	Retrieve a paginated list of print jobs
//	@Tags			print-jobs
//	@Produce		json
//	@Param			id			path		string	true	"Provider ID or search key"
//	@Param			page		query		int		false	"Page number"		default(1)
//	@Param			page_size	query		int		false	"Page size"			default(20)
//	@Param			order_by	query		string	false	"Order by field"	default(created_at)
//	@Param			order_dir	query		string	false	"Order direction"	Enums(asc, desc)	default(desc)
//	@Param			status		query		string	false	"Filter by job status"
//	@Param			table_id	query		string	false	"Filter by table"
//	@Success		200			{object}	APIResponse[[]printingapp.PrintJobResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/print/providers/{id}/jobs [get]
func (h *PrintHandler) ListJobs(c *gin.Context) {
	providerID := c.Param("id")
	if providerID == "" {
		h.BadRequest(c, "Provider ID is required")
		return
	}

	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := shared.DefaultFilter()
	applyListRequest(&filter, req)
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if tableID := c.Query("table_id"); tableID != "" {
		filter.Filters["table_id"] = tableID
	}

	result, err := h.printService.ListJobs(c.Request.Context(), providerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// applyListRequest copies bound query parameters onto a domain filter
func applyListRequest(filter *shared.Filter, req dto.ListRequest) {
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		filter.OrderDir = req.OrderDir
	}
	filter.Search = req.Search
}
