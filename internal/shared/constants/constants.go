// Package constants defines shared constant values used across the application.
package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyUserRole = "user_role"

	// Database table names
	TableUsers           = "users"
	TablePets            = "pets"
	TableAdoptions       = "adoptions"
	TableAdoptionRecords = "adoption_records"
	TableRescues         = "rescues"
	TableActivities      = "activities"
	TableVolunteers      = "volunteers"
	TableDonations       = "donations"
	TableNotifications   = "notifications"

	// Adoption record number prefix (AR-YYYY-NNNNNN)
	RecordNumberPrefix = "AR"

	// Error messages
	ErrMsgInternalServerError = "internal server error occurred"
	ErrMsgInvalidCredentials  = "invalid username or password"
	ErrMsgAccountDisabled     = "account is disabled"
)
