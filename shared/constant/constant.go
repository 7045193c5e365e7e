package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySessionID    contextKey = "session_id"
	ContextKeySession      contextKey = "session"
	ContextKeySessionState contextKey = "session_state"
	ContextKeyBackendToken contextKey = "backend_token"
	ContextKeyUserRole     contextKey = "user_role"
)

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// Dashboard roots per role. The guard redirects here when a signed-in
// user hits a page outside their allow-list.
const (
	RouteHome          = "/"
	RouteLogin         = "/auth/login"
	RouteRegister      = "/auth/register"
	RouteVerifyEmail   = "/auth/verify-email"
	RouteCustomerHome  = "/customer"
	RouteStaffHome     = "/staff"
	RouteAdminHome     = "/admin"
	RouteHotels        = "/hotels"
	RouteMyBookings    = "/customer/bookings"
	RouteStaffBookings = "/staff/bookings"
	RouteStaffUsers    = "/staff/users"
	RouteAdminSettings = "/admin/settings"
)

const (
	RequestParamPage  = "page"
	RequestParamLimit = "limit"
	RequestParamID    = "id"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	OTPLength      = 6
	ResendCooldown = 60 * time.Second
	MaxGuests      = 10
	MinBookingDays = 1
	MaxBookingDays = 30
)

const (
	OtelServiceScopeName = "service"
	OtelClientScopeName  = "client"
	OtelHandlerScopeName = "handler"
	OtelSessionScopeName = "session"
	OtelS3ScopeName      = "s3"
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
	RequestHeaderLocation           = "Location"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
	ContentTypeHTML           = "text/html; charset=utf-8"
	FormFile                  = "image"
)

// The backend issues opaque tokens presented Django-REST style.
const TokenScheme = "Token"

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
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
)

const (
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	Asterix = "*"
	Empty   = ""
)

// Fixed option lists rendered into forms. The backend validates the
// authoritative set; these only drive the selects.
var PaymentMethods = []string{"card", "mpesa", "paypal", "bank_transfer"}

var HotelAmenities = []string{
	"Swimming Pool", "Gym", "Spa", "Restaurant", "Bar",
	"Room Service", "Parking", "Laundry", "Business Center", "Conference Rooms",
}

var RoomAmenities = []string{
	"WiFi", "Air Conditioning", "TV", "Mini Bar", "Safe",
	"Hair Dryer", "Coffee Maker", "Iron", "Balcony", "Ocean View",
}
