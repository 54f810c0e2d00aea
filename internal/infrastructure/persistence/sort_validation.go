package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// ProviderSortFields contains allowed sort fields for providers
var ProviderSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"search_key": true,
	"name":       true,
}

// PrintJobSortFields contains allowed sort fields for print jobs
var PrintJobSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"table_id":   true,
	"record_id":  true,
	"status":     true,
}

// LabelTableSortFields contains allowed sort fields for label tables
var LabelTableSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"table_id":   true,
	"name":       true,
}
