package response

import (
	"time"

	"spinwheel/internal/usecase/commands"
	"spinwheel/internal/usecase/queries"

	"github.com/google/uuid"
)

type WheelVoucherResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description *string   `json:"description,omitempty"`
}

type RemainingResponse struct {
	Free  int `json:"free"`
	Bonus int `json:"bonus"`
}

type WheelStatusResponse struct {
	Vouchers           []*WheelVoucherResponse `json:"vouchers"`
	Remaining          RemainingResponse       `json:"remaining"`
	ShareRecordedToday bool                    `json:"shareRecordedToday"`
	RequiresLogin      bool                    `json:"requiresLogin"`
}

func FromWheelStatusView(view *queries.WheelStatusView) *WheelStatusResponse {
	vouchers := make([]*WheelVoucherResponse, len(view.Vouchers))
	for i, v := range view.Vouchers {
		vouchers[i] = &WheelVoucherResponse{
			ID:          v.ID,
			Name:        v.Name,
			Code:        v.Code,
			Description: v.Description,
		}
	}
	return &WheelStatusResponse{
		Vouchers:           vouchers,
		Remaining:          RemainingResponse{Free: view.Remaining.Free, Bonus: view.Remaining.Bonus},
		ShareRecordedToday: view.ShareDoneToday,
		RequiresLogin:      view.RequiresLogin,
	}
}

type SpinResponse struct {
	SpinID      uuid.UUID         `json:"spinId"`
	VoucherID   uuid.UUID         `json:"voucherId"`
	VoucherName string            `json:"voucherName"`
	VoucherCode string            `json:"voucherCode"`
	Kind        string            `json:"kind"`
	Remaining   RemainingResponse `json:"remaining"`
}

func FromSpinOutcome(outcome *commands.SpinOutcome) *SpinResponse {
	return &SpinResponse{
		SpinID:      outcome.SpinID,
		VoucherID:   outcome.VoucherID,
		VoucherName: outcome.VoucherName,
		VoucherCode: outcome.VoucherCode,
		Kind:        string(outcome.Kind),
		Remaining:   RemainingResponse{Free: outcome.Remaining.Free, Bonus: outcome.Remaining.Bonus},
	}
}

type ShareResponse struct {
	AlreadyRecorded bool `json:"alreadyRecorded"`
	BonusUnlocked   bool `json:"bonusUnlocked"`
}

func FromShareOutcome(outcome *commands.ShareOutcome) *ShareResponse {
	return &ShareResponse{
		AlreadyRecorded: outcome.AlreadyRecorded,
		BonusUnlocked:   outcome.BonusUnlocked,
	}
}

type SpinHistoryItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Result      string    `json:"result"`
	Kind        string    `json:"kind"`
	VoucherName string    `json:"voucherName"`
	VoucherCode *string   `json:"voucherCode,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromSpinHistoryItem(item *queries.SpinHistoryItem) *SpinHistoryItemResponse {
	return &SpinHistoryItemResponse{
		ID:          item.ID,
		Result:      item.Result,
		Kind:        item.Kind,
		VoucherName: item.VoucherName,
		VoucherCode: item.VoucherCode,
		CreatedAt:   item.CreatedAt,
	}
}
