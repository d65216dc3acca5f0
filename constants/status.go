package constants

// Room status
const (
	RoomStatusAvailable   = 0
	RoomStatusOccupied    = 1
	RoomStatusMaintenance = 2
	RoomStatusHidden      = 3
)

// Promotion status
const (
	PromotionStatusInactive = 0
	PromotionStatusActive   = 1
)

// Payment status
const (
	PaymentStatusPending  = 0
	PaymentStatusSuccess  = 1
	PaymentStatusFailed   = 2
	PaymentStatusRefunded = 3
)

// Sync task status
const (
	SyncStatusPending = 0
	SyncStatusDone    = 1
	SyncStatusFailed  = 2
)

// Sync actions
const (
	SyncActionRateUpdate         = "rate_update"
	SyncActionAvailabilityUpdate = "availability_update"
	SyncActionBookingPush        = "booking_push"
)
