package constant

import (
	"time"
)

const (
	BookingStatusPending   = "PENDING"
	BookingStatusSoon      = "SOON"
	BookingStatusCurrent   = "CURRENT"
	BookingStatusPast      = "PAST"
	BookingStatusCancelled = "CANCELLED"

	// BookingStatusAll bypasses the status predicate on list queries.
	BookingStatusAll = "ALL"
)

const (
	LikeActionLike   = "like"
	LikeActionUnlike = "unlike"
)

const (
	RequestParamQuery      = "q"
	RequestParamStatus     = "status"
	RequestParamRoomNum    = "room_num"
	RequestParamNoAdults   = "no_adults"
	RequestParamNoChildren = "no_children"
	RequestParamStartPrice = "start_price"
	RequestParamEndPrice   = "end_price"
	RequestParamSort       = "sort"
)

const (
	BookingDateFormat = "2006-01-02"
	DateFormat        = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelGatewayScopeName    = "gateway"
	OtelChatScopeName       = "chat"

	OtelQueryAttributeKey    = "query"
	OtelEndpointAttributeKey = "endpoint"
	OtelOnlineAttributeKey   = "online"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderContentType   = "Content-Type"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ChatEventPrompt         = "prompt"
	ChatEventPromptResponse = "prompt_response"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	Empty = ""
)
