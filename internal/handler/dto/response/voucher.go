package response

import (
	"time"

	"spinwheel/internal/usecase/queries"

	"github.com/google/uuid"
)

type VoucherResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Description *string    `json:"description,omitempty"`
	DailyLimit  *int       `json:"dailyLimit,omitempty"`
	TotalLimit  *int       `json:"totalLimit,omitempty"`
	ActiveFrom  *time.Time `json:"activeFrom,omitempty"`
	ActiveUntil *time.Time `json:"activeUntil,omitempty"`
	IsActive    bool       `json:"isActive"`
	UsedCount   int        `json:"usedCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func FromVoucherView(rm *queries.VoucherView) *VoucherResponse {
	return &VoucherResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Code:        rm.Code,
		Description: rm.Description,
		DailyLimit:  rm.DailyLimit,
		TotalLimit:  rm.TotalLimit,
		ActiveFrom:  rm.ActiveFrom,
		ActiveUntil: rm.ActiveUntil,
		IsActive:    rm.IsActive,
		UsedCount:   rm.UsedCount,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
