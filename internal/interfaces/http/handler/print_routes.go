package handler

import (
	"github.com/printhub/backend/internal/interfaces/http/router"
)

// PrintRoutes creates the route group for print-related endpoints
func PrintRoutes(handler *PrintHandler) *router.DomainGroup {
	group := router.NewDomainGroup("print", "/print")

	// Label dispatch
	group.POST("/labels", handler.SendLabels)

	// Providers and their printer catalogs
	group.GET("/providers", handler.ListProviders)
	group.GET("/providers/:id/printers", handler.ListPrinters)
	group.POST("/providers/:id/printers/refresh", handler.RefreshPrinters)

	// Print jobs
	group.GET("/providers/:id/jobs", handler.ListJobs)

	return group
}
