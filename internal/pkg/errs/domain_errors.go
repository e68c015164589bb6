package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers.
// All of these are expected, user-facing outcomes rather than defects;
// handlers map them to HTTP statuses via errors.Is.
var (
	// Principal errors
	ErrUnauthenticated = errors.New("not authenticated")
	ErrMissingPhone    = errors.New("principal has no phone number")

	// Allocation errors
	ErrEntitlementExhausted = errors.New("no spins left today")
	ErrNoRewardAvailable    = errors.New("no eligible voucher available")

	// Voucher errors
	ErrVoucherNotFound      = errors.New("voucher not found")
	ErrDuplicateVoucherCode = errors.New("voucher code already exists")
	ErrInvalidVoucher       = errors.New("invalid voucher")

	// Share config errors
	ErrInvalidShareURL = errors.New("share URL must be absolute http(s)")

	// Throttling / infrastructure
	ErrRateLimited        = errors.New("too many requests")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
