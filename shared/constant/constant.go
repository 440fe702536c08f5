package constant

import (
	"time"
)

const (
	ContextSystem = "system"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleSuperAdmin = "superadmin"
	RoleManager    = "manager"
	RoleStaff      = "staff"
	RoleCustomer   = "customer"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamBusinessID = "businessID"
	RequestParamResourceID = "resourceID"
	RequestParamBookingID  = "bookingID"
	RequestParamProductID  = "productID"
	RequestParamRentalID   = "rentalID"
	RequestParamConnection = "connectionID"
	RequestParamDate       = "date"
	RequestParamServiceID  = "service_id"
	RequestParamFrom       = "from"
	RequestParamTo         = "to"
	RequestParamTimeline   = "timeline"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName     = "service"
	OtelRepositoryScopeName  = "repository"
	OtelHandlerScopeName     = "handler"
	OtelEventScopeName       = "event"
	OtelReservationScopeName = "reservation"
	OtelJobScopeName         = "job"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderIdempotencyKey     = "Idempotency-Key"
	ResponseHeaderRetryAfter        = "Retry-After"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
)
