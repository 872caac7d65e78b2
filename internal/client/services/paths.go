package services

// Backend collections.
const (
	PathClients           = "/api/clients"
	PathServices          = "/api/services"
	PathUsers             = "/api/users"
	PathRoles             = "/api/roles"
	PathClientTypes       = "/api/client_types"
	PathClientStatuses    = "/api/client_statuses"
	PathServiceTypes      = "/api/service_types"
	PathServiceCategories = "/api/service_categories"
	PathVendors           = "/api/vendors"
	PathWALogs            = "/api/log/wa"
	PathWAReminder        = "/api/reminder/wa"
	PathReportPreview     = "/api/services/reports/preview"
	PathReportExcel       = "/api/services/reports/download/excel"
)
