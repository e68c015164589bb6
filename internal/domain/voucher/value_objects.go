package voucher

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidVoucherCode = errors.New("invalid voucher code format")
	ErrNegativeLimit      = errors.New("voucher limit cannot be negative")
	ErrEmptyName          = errors.New("voucher name cannot be empty")
	ErrInvalidWindow      = errors.New("activeFrom must not be after activeUntil")
)

var voucherCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// Code is the human-entered redemption code printed on the winning screen.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !voucherCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidVoucherCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Limit is an optional non-negative redemption cap. A nil Limit means
// unlimited.
type Limit struct {
	value *int
}

func NewLimit(v *int) (Limit, error) {
	if v != nil && *v < 0 {
		return Limit{}, ErrNegativeLimit
	}
	return Limit{value: v}, nil
}

func (l Limit) IsSet() bool {
	return l.value != nil
}

func (l Limit) Value() int {
	if l.value == nil {
		return 0
	}
	return *l.value
}

func (l Limit) Ptr() *int {
	return l.value
}

// Allows reports whether one more redemption fits under the cap.
// A count equal to the limit is already exhausted (strict less-than).
func (l Limit) Allows(count int) bool {
	return l.value == nil || count < *l.value
}
