//go:build e2e

package wheel_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"spinwheel/internal/domain/user"
	"spinwheel/internal/handler/dto/response"
	"spinwheel/tests/common/authtest"
	"spinwheel/tests/common/dbtest"
	"spinwheel/tests/common/httptest"
	"spinwheel/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	wheelURL   = "/api/wheel"
	spinURL    = "/api/wheel/spin"
	shareURL   = "/api/wheel/share"
	historyURL = "/api/wheel/history"
)

type WheelSuite struct {
	e2e.SharedSuite
}

func (s *WheelSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestWheelSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WheelSuite))
}

func (s *WheelSuite) memberToken(phone string) (uuid.UUID, string) {
	t := s.T()
	userID := uuid.New()
	token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID, phone, user.RoleMember)
	return userID, token
}

// =============================================================================
// TestWheelStatus - Wheel status API tests
// =============================================================================

func (s *WheelSuite) TestWheelStatus() {
	s.Run("Normal case: Anonymous visitor sees vouchers but must log in", func() {
		t := s.T()

		dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Free Coffee", Code: "FREE_COFFEE", IsActive: true,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, wheelURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actualRes response.WheelStatusResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)

		expected := &response.WheelStatusResponse{
			Remaining:     response.RemainingResponse{Free: 0, Bonus: 0},
			RequiresLogin: true,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.WheelStatusResponse{}, "Vouchers"),
		}
		if diff := cmp.Diff(expected, &actualRes, opts...); diff != "" {
			t.Errorf("Status response mismatch (-want +got):\n%s", diff)
		}
		require.Len(t, actualRes.Vouchers, 1)
		require.Equal(t, "FREE_COFFEE", actualRes.Vouchers[0].Code)
	})

	s.Run("Normal case: Authenticated member sees full entitlement", func() {
		t := s.T()

		dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Free Coffee", Code: "FREE_COFFEE", IsActive: true,
		})
		_, token := s.memberToken("0901000001")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, wheelURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actualRes response.WheelStatusResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)
		require.False(t, actualRes.RequiresLogin)
		require.False(t, actualRes.ShareRecordedToday)
		require.Equal(t, 1, actualRes.Remaining.Free)
		require.Equal(t, 1, actualRes.Remaining.Bonus)
	})

	s.Run("Normal case: Inactive and exhausted vouchers are hidden", func() {
		t := s.T()

		dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Hidden", Code: "HIDDEN", IsActive: false,
		})
		totalLimit := 5
		dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Sold Out", Code: "SOLD_OUT", IsActive: true,
			TotalLimit: &totalLimit, UsedCount: 5,
		})
		visibleID := dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Still Here", Code: "STILL_HERE", IsActive: true,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, wheelURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actualRes response.WheelStatusResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)
		require.Len(t, actualRes.Vouchers, 1)
		require.Equal(t, visibleID, actualRes.Vouchers[0].ID)
	})
}

// =============================================================================
// TestSpin - Spin allocation API tests
// =============================================================================

func (s *WheelSuite) TestSpin() {
	s.Run("Normal case: Free spin allocates a voucher and charges the entitlement", func() {
		t := s.T()

		voucherID := dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Free Coffee", Code: "FREE_COFFEE", IsActive: true,
		})
		phone := "0901000010"
		_, token := s.memberToken(phone)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes response.SpinResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)
		require.Equal(t, voucherID, actualRes.VoucherID)
		require.Equal(t, "FREE", actualRes.Kind)
		require.Equal(t, 0, actualRes.Remaining.Free)

		require.Equal(t, 1, dbtest.VoucherUsedCount(t, s.DB, voucherID))
		require.Equal(t, 1, dbtest.CountSpins(t, s.DB, phone))

		// Second spin without a share is rejected
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, token)
		require.Equal(t, http.StatusBadRequest, w2.Code, "Free entitlement is spent")
		require.Equal(t, 1, dbtest.CountSpins(t, s.DB, phone))
	})

	s.Run("Normal case: Share unlocks a bonus spin", func() {
		t := s.T()

		voucherID := dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Free Coffee", Code: "FREE_COFFEE", IsActive: true,
		})
		phone := "0901000011"
		_, token := s.memberToken(phone)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, token)
		require.Equal(t, http.StatusOK, w1.Code)

		shareResp := httptest.PerformRequest(t, s.Router, http.MethodPost, shareURL, nil, token)
		require.Equal(t, http.StatusOK, shareResp.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, token)
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())

		var bonus response.SpinResponse
		err := httptest.DecodeResponseBody(t, w2.Body, &bonus)
		require.NoError(t, err)
		require.Equal(t, "BONUS", bonus.Kind)
		require.Equal(t, 0, bonus.Remaining.Bonus)

		// Third spin of the day is rejected even after sharing
		w3 := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, token)
		require.Equal(t, http.StatusBadRequest, w3.Code)

		require.Equal(t, 2, dbtest.VoucherUsedCount(t, s.DB, voucherID))
		require.Equal(t, 2, dbtest.CountSpins(t, s.DB, phone))
	})

	s.Run("Error case: Empty wheel does not charge the entitlement", func() {
		t := s.T()

		phone := "0901000012"
		_, token := s.memberToken(phone)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, 0, dbtest.CountSpins(t, s.DB, phone))

		// The free spin is still available once a voucher appears
		dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Late Arrival", Code: "LATE_ARRIVAL", IsActive: true,
		})
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, token)
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())
	})

	s.Run("Error case: Voucher at its total cap is never allocated", func() {
		t := s.T()

		totalLimit := 3
		dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Sold Out", Code: "SOLD_OUT", IsActive: true,
			TotalLimit: &totalLimit, UsedCount: 3,
		})
		_, token := s.memberToken("0901000013")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: Voucher at its daily cap is skipped until tomorrow", func() {
		t := s.T()

		dailyLimit := 1
		voucherID := dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "One A Day", Code: "ONE_A_DAY", IsActive: true,
			DailyLimit: &dailyLimit,
		})
		// Someone else already won it today
		dbtest.CreateTestSpin(t, s.DB, uuid.New(), "0909999999", voucherID, "One A Day", "FREE", time.Now())

		phone := "0901000014"
		_, token := s.memberToken(phone)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, 0, dbtest.CountSpins(t, s.DB, phone))
	})

	s.Run("Normal case: Yesterday's spins do not count against today", func() {
		t := s.T()

		voucherID := dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Free Coffee", Code: "FREE_COFFEE", IsActive: true,
		})
		userID := uuid.New()
		phone := "0901000015"
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID, phone, user.RoleMember)

		yesterday := time.Now().Add(-26 * time.Hour)
		dbtest.CreateTestSpin(t, s.DB, userID, phone, voucherID, "Free Coffee", "FREE", yesterday)
		dbtest.CreateTestSpin(t, s.DB, userID, phone, voucherID, "Free Coffee", "BONUS", yesterday)
		dbtest.CreateTestShareEvent(t, s.DB, userID, phone, yesterday)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes response.SpinResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)
		require.Equal(t, "FREE", actualRes.Kind)
	})

	s.Run("Concurrency: Parallel spins for one phone yield a single free spin", func() {
		t := s.T()

		dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Free Coffee", Code: "FREE_COFFEE", IsActive: true,
		})
		phone := "0901000016"
		_, token := s.memberToken(phone)

		const workers = 4
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, code := range codes {
			if code == http.StatusOK {
				succeeded++
			} else {
				require.Equal(t, http.StatusBadRequest, code)
			}
		}
		require.Equal(t, 1, succeeded)
		require.Equal(t, 1, dbtest.CountSpins(t, s.DB, phone))
	})

	s.Run("Concurrency: The last slot of a capped voucher is allocated once", func() {
		t := s.T()

		totalLimit := 1
		voucherID := dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Last Slot", Code: "LAST_SLOT", IsActive: true,
			TotalLimit: &totalLimit,
		})

		const workers = 3
		tokens := make([]string, workers)
		for i := range workers {
			_, tokens[i] = s.memberToken(fmt.Sprintf("090100002%d", i))
		}

		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, tokens[i])
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, code := range codes {
			if code == http.StatusOK {
				succeeded++
			}
		}
		require.Equal(t, 1, succeeded)
		require.Equal(t, 1, dbtest.VoucherUsedCount(t, s.DB, voucherID))
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, spinURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestShare - Share recording API tests
// =============================================================================

func (s *WheelSuite) TestShare() {
	s.Run("Normal case: First share of the day unlocks the bonus", func() {
		t := s.T()

		_, token := s.memberToken("0901000020")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, shareURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actualRes response.ShareResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)
		require.False(t, actualRes.AlreadyRecorded)
		require.True(t, actualRes.BonusUnlocked)
	})

	s.Run("Normal case: Repeat share on the same day is idempotent", func() {
		t := s.T()

		userID := uuid.New()
		phone := "0901000021"
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID, phone, user.RoleMember)
		dbtest.CreateTestShareEvent(t, s.DB, userID, phone, time.Now())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, shareURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actualRes response.ShareResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)
		require.True(t, actualRes.AlreadyRecorded)
		require.True(t, actualRes.BonusUnlocked)

		// Status reflects the recorded share
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, wheelURL, nil, token)
		require.Equal(t, http.StatusOK, sw.Code)
		var status response.WheelStatusResponse
		err = httptest.DecodeResponseBody(t, sw.Body, &status)
		require.NoError(t, err)
		require.True(t, status.ShareRecordedToday)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, shareURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestHistory - Spin history API tests
// =============================================================================

func (s *WheelSuite) TestHistory() {
	s.Run("Normal case: History is newest first and survives voucher deletion", func() {
		t := s.T()

		userID := uuid.New()
		phone := "0901000030"
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID, phone, user.RoleMember)

		keptID := dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Kept Voucher", Code: "KEPT", IsActive: true,
		})
		goneID := dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Gone Voucher", Code: "GONE", IsActive: true,
		})

		now := time.Now()
		dbtest.CreateTestSpin(t, s.DB, userID, phone, goneID, "Gone Voucher", "FREE", now.Add(-2*time.Hour))
		dbtest.CreateTestSpin(t, s.DB, userID, phone, keptID, "Kept Voucher", "BONUS", now.Add(-1*time.Hour))

		// voucher_id is nulled out, the stored result label remains
		_, err := s.DB.Exec(context.Background(), "DELETE FROM vouchers WHERE id = $1", goneID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var items []*response.SpinHistoryItemResponse
		err = httptest.DecodeResponseBody(t, w.Body, &items)
		require.NoError(t, err)
		require.Len(t, items, 2)

		require.Equal(t, "Kept Voucher", items[0].VoucherName)
		require.Equal(t, "BONUS", items[0].Kind)
		require.Equal(t, "Gone Voucher", items[1].VoucherName)
		require.Nil(t, items[1].VoucherCode)
	})

	s.Run("Normal case: Other members' spins are not visible", func() {
		t := s.T()

		voucherID := dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Free Coffee", Code: "FREE_COFFEE", IsActive: true,
		})
		dbtest.CreateTestSpin(t, s.DB, uuid.New(), "0908888888", voucherID, "Free Coffee", "FREE", time.Now())

		_, token := s.memberToken("0901000031")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var items []*response.SpinHistoryItemResponse
		err := httptest.DecodeResponseBody(t, w.Body, &items)
		require.NoError(t, err)
		require.Empty(t, items)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
