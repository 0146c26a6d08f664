package booking

type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "initiated"
	PaymentPaid      PaymentStatus = "paid"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentInitiated, PaymentPaid, PaymentFailed:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

type RefundStatus string

const (
	RefundNone      RefundStatus = "none"
	RefundInitiated RefundStatus = "initiated"
	RefundCompleted RefundStatus = "completed"
)

func (s RefundStatus) String() string {
	return string(s)
}

type CancelActor string

const (
	CancelledByUser   CancelActor = "user"
	CancelledBySystem CancelActor = "system"
)

func (a CancelActor) String() string {
	return string(a)
}

// SystemCancelReason is recorded when payment verification closes out
// sibling pending bookings for the same stay.
const SystemCancelReason = "duplicate pending booking auto-closed"
