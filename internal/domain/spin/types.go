package spin

import "errors"

var ErrInvalidKind = errors.New("invalid spin kind")

// Kind is the entitlement slot a spin consumed.
type Kind string

const (
	KindFree  Kind = "FREE"
	KindBonus Kind = "BONUS"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindFree, KindBonus:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}
