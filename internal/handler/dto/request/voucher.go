package request

import (
	"strings"
	"time"

	"spinwheel/internal/usecase/commands"
)

type CreateVoucherRequest struct {
	Name        string     `json:"name" binding:"required"`
	Code        string     `json:"code" binding:"required"`
	Description *string    `json:"description,omitempty"`
	DailyLimit  *int       `json:"daily_limit,omitempty"`
	TotalLimit  *int       `json:"total_limit,omitempty"`
	ActiveFrom  *time.Time `json:"active_from,omitempty"`
	ActiveUntil *time.Time `json:"active_until,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

func (r CreateVoucherRequest) ToParams() commands.CreateVoucherParams {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return commands.CreateVoucherParams{
		Name:        strings.TrimSpace(r.Name),
		Code:        r.Code,
		Description: trimmedOrNil(r.Description),
		DailyLimit:  r.DailyLimit,
		TotalLimit:  r.TotalLimit,
		ActiveFrom:  r.ActiveFrom,
		ActiveUntil: r.ActiveUntil,
		IsActive:    active,
	}
}

type UpdateVoucherRequest struct {
	Name        string     `json:"name" binding:"required"`
	Code        string     `json:"code" binding:"required"`
	Description *string    `json:"description,omitempty"`
	DailyLimit  *int       `json:"daily_limit,omitempty"`
	TotalLimit  *int       `json:"total_limit,omitempty"`
	ActiveFrom  *time.Time `json:"active_from,omitempty"`
	ActiveUntil *time.Time `json:"active_until,omitempty"`
	IsActive    bool       `json:"is_active"`
}

func (r UpdateVoucherRequest) ToParams() commands.UpdateVoucherParams {
	return commands.UpdateVoucherParams{
		Name:        strings.TrimSpace(r.Name),
		Code:        r.Code,
		Description: trimmedOrNil(r.Description),
		DailyLimit:  r.DailyLimit,
		TotalLimit:  r.TotalLimit,
		ActiveFrom:  r.ActiveFrom,
		ActiveUntil: r.ActiveUntil,
		IsActive:    r.IsActive,
	}
}

type SetVoucherActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
