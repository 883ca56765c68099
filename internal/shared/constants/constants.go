package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination for listing browse pages
	DefaultPage     = 1
	DefaultPageSize = 9
	MaxPageSize     = 100
	// MaxPage keeps (page-1)*MaxPageSize within int32
	MaxPage = 1 << 24

	// Featured sections on the home page
	DefaultFeaturedLimit = 12
	MaxFeaturedLimit     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableListings = "listings"
	TableUsers    = "users"

	ErrMsgInternalServerError = "Internal server error occurred"
)
