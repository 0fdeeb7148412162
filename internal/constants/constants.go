package constants

const (
	//分頁
	DefaultPagingSize int = 10
	DefaultPaging     int = 1
)

// for api auth
type ContextKey string

const (
	UserIDHeaderKey         string     = "X-User-Id"
	UserEmailHeaderKey      string     = "X-User-Email"
	UserRoleHeaderKey       string     = "X-User-Role"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
)

// 角色由上游身分中心發放，這裡只做信任
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type PaymentMethodEnum string

const (
	PaymentMethodCard PaymentMethodEnum = "card"
	PaymentMethodBank PaymentMethodEnum = "bank"
	PaymentMethodCash PaymentMethodEnum = "cash"
)

func IsValidPaymentMethod(method string) bool {
	switch PaymentMethodEnum(method) {
	case PaymentMethodCard, PaymentMethodBank, PaymentMethodCash:
		return true
	default:
		return false
	}
}

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)
