//go:build e2e

package admin_test

import (
	"net/http"
	"testing"

	"spinwheel/internal/domain/user"
	"spinwheel/internal/handler/dto/request"
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
	vouchersURL    = "/api/admin/vouchers"
	shareConfigURL = "/api/share-config"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func (s *AdminSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) adminToken() string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), uuid.New(), "0900000001", user.RoleAdmin)
}

func (s *AdminSuite) memberToken() string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), uuid.New(), "0900000002", user.RoleMember)
}

// =============================================================================
// TestVoucherCRUD - Voucher administration API tests
// =============================================================================

func (s *AdminSuite) TestVoucherCRUD() {
	s.Run("Normal case: Admin can create and fetch a voucher", func() {
		t := s.T()
		token := s.adminToken()

		dailyLimit := 10
		totalLimit := 100
		description := "One free coffee at any branch"
		createReq := request.CreateVoucherRequest{
			Name:        "Free Coffee",
			Code:        "free_coffee",
			Description: &description,
			DailyLimit:  &dailyLimit,
			TotalLimit:  &totalLimit,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL, createReq, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.CreatedResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, vouchersURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, gw.Code)

		var actualRes response.VoucherResponse
		err = httptest.DecodeResponseBody(t, gw.Body, &actualRes)
		require.NoError(t, err)

		expected := &response.VoucherResponse{
			ID:          created.ID,
			Name:        "Free Coffee",
			Code:        "FREE_COFFEE",
			Description: &description,
			DailyLimit:  &dailyLimit,
			TotalLimit:  &totalLimit,
			IsActive:    true,
			UsedCount:   0,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.VoucherResponse{}, "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actualRes, opts...); diff != "" {
			t.Errorf("Voucher response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: Duplicate voucher code is rejected", func() {
		t := s.T()
		token := s.adminToken()

		createReq := request.CreateVoucherRequest{Name: "Free Coffee", Code: "FREE_COFFEE"}

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL, createReq, token)
		require.Equal(t, http.StatusCreated, w1.Code)

		createReq.Name = "Another Coffee"
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL, createReq, token)
		require.Equal(t, http.StatusConflict, w2.Code)
	})

	s.Run("Error case: Malformed voucher code is rejected before storage", func() {
		t := s.T()
		token := s.adminToken()

		createReq := request.CreateVoucherRequest{Name: "Bad Code", Code: "!!"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, vouchersURL, createReq, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Normal case: Update and deactivation change wheel visibility", func() {
		t := s.T()
		token := s.adminToken()

		id := dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Free Coffee", Code: "FREE_COFFEE", IsActive: true,
		})

		updateReq := request.UpdateVoucherRequest{Name: "Free Tea", Code: "FREE_TEA", IsActive: true}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, vouchersURL+"/"+id.String(), updateReq, token)
		require.Equal(t, http.StatusNoContent, uw.Code, uw.Body.String())

		inactive := false
		patchReq := request.SetVoucherActiveRequest{IsActive: &inactive}
		pw := httptest.PerformRequest(t, s.Router, http.MethodPatch, vouchersURL+"/"+id.String()+"/active", patchReq, token)
		require.Equal(t, http.StatusNoContent, pw.Code)

		// Deactivated voucher disappears from the public wheel
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/wheel", nil, "")
		require.Equal(t, http.StatusOK, sw.Code)
		var status response.WheelStatusResponse
		err := httptest.DecodeResponseBody(t, sw.Body, &status)
		require.NoError(t, err)
		require.Empty(t, status.Vouchers)

		// But the admin listing still shows it
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, vouchersURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)
		var listed []*response.VoucherResponse
		err = httptest.DecodeResponseBody(t, lw.Body, &listed)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		require.Equal(t, "FREE_TEA", listed[0].Code)
		require.False(t, listed[0].IsActive)
	})

	s.Run("Normal case: Lookup by code is case-insensitive", func() {
		t := s.T()
		token := s.adminToken()

		id := dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Free Coffee", Code: "FREE_COFFEE", IsActive: true,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vouchersURL+"?code=free_coffee", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var found []*response.VoucherResponse
		err := httptest.DecodeResponseBody(t, w.Body, &found)
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.Equal(t, id, found[0].ID)
		require.Equal(t, "FREE_COFFEE", found[0].Code)

		nw := httptest.PerformRequest(t, s.Router, http.MethodGet, vouchersURL+"?code=NO_SUCH_CODE", nil, token)
		require.Equal(t, http.StatusNotFound, nw.Code)
	})

	s.Run("Normal case: Deleting a voucher keeps past spin labels", func() {
		t := s.T()
		token := s.adminToken()

		id := dbtest.CreateTestVoucher(t, s.DB, dbtest.VoucherFixture{
			Name: "Short Lived", Code: "SHORT_LIVED", IsActive: true,
		})

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, vouchersURL+"/"+id.String(), nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, vouchersURL+"/"+id.String(), nil, token)
		require.Equal(t, http.StatusNotFound, gw.Code)
	})

	s.Run("Error case: Returns 404 Not Found for non-existent ID", func() {
		t := s.T()
		token := s.adminToken()

		updateReq := request.UpdateVoucherRequest{Name: "Ghost", Code: "GHOST", IsActive: true}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, vouchersURL+"/"+uuid.New().String(), updateReq, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Auth test - Member role is forbidden", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vouchersURL, nil, s.memberToken())
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, vouchersURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestShareConfig - Share URL configuration API tests
// =============================================================================

func (s *AdminSuite) TestShareConfig() {
	s.Run("Normal case: Unset share URL reads as null", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, shareConfigURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var actualRes response.ShareConfigResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)
		require.Nil(t, actualRes.URL)
	})

	s.Run("Normal case: Admin sets the share URL and everyone reads it", func() {
		t := s.T()
		token := s.adminToken()

		setReq := request.SetShareConfigRequest{URL: "https://example.com/campaign"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, shareConfigURL, setReq, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, shareConfigURL, nil, "")
		require.Equal(t, http.StatusOK, gw.Code)

		var actualRes response.ShareConfigResponse
		err := httptest.DecodeResponseBody(t, gw.Body, &actualRes)
		require.NoError(t, err)
		require.NotNil(t, actualRes.URL)
		require.Equal(t, "https://example.com/campaign", *actualRes.URL)
	})

	s.Run("Error case: Relative URL is rejected", func() {
		t := s.T()
		token := s.adminToken()

		setReq := request.SetShareConfigRequest{URL: "/campaign"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, shareConfigURL, setReq, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Auth test - Member role cannot set the share URL", func() {
		t := s.T()

		setReq := request.SetShareConfigRequest{URL: "https://example.com/campaign"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, shareConfigURL, setReq, s.memberToken())
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
