//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"spinwheel/internal/domain/voucher"
	"spinwheel/internal/infra"
	"spinwheel/internal/infra/db"
	"spinwheel/internal/pkg/clock"
	"spinwheel/internal/pkg/errs"
	"spinwheel/internal/usecase/commands"
	"spinwheel/tests/common/builder"
	commandsmock "spinwheel/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type voucherAdminFixture struct {
	vouchers *commandsmock.MockVoucherRepository
	sut      commands.VoucherCommands
}

func newVoucherAdminFixture(t *testing.T) *voucherAdminFixture {
	ctrl := gomock.NewController(t)
	f := &voucherAdminFixture{
		vouchers: commandsmock.NewMockVoucherRepository(ctrl),
	}
	clk := clock.NewMockClock(time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC))
	f.sut = commands.NewVoucherCommands(fakeRunner{}, f.vouchers, clk)
	return f
}

func TestVoucherCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid voucher is persisted", func(t *testing.T) {
		f := newVoucherAdminFixture(t)
		wantID := uuid.New()

		f.vouchers.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, v *voucher.Voucher) (uuid.UUID, error) {
				assert.Equal(t, "Free Coffee", v.Name())
				assert.Equal(t, "FREE_COFFEE", v.Code().String())
				assert.Equal(t, 0, v.UsedCount())
				return wantID, nil
			})

		id, err := f.sut.Create(ctx, builder.NewVoucherBuilder().BuildCreateParams())
		require.NoError(t, err)
		assert.Equal(t, wantID, id)
	})

	t.Run("invalid definition is rejected before storage", func(t *testing.T) {
		f := newVoucherAdminFixture(t)

		params := builder.NewVoucherBuilder().BuildCreateParams()
		params.Code = "!"

		_, err := f.sut.Create(ctx, params)
		require.ErrorIs(t, err, errs.ErrInvalidVoucher)
		require.ErrorIs(t, err, voucher.ErrInvalidVoucherCode)
	})

	t.Run("duplicate code maps to conflict", func(t *testing.T) {
		f := newVoucherAdminFixture(t)

		dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		f.vouchers.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to insert voucher", dup))

		_, err := f.sut.Create(ctx, builder.NewVoucherBuilder().BuildCreateParams())
		require.ErrorIs(t, err, errs.ErrDuplicateVoucherCode)
	})
}

func TestVoucherCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("missing voucher maps to not found", func(t *testing.T) {
		f := newVoucherAdminFixture(t)
		id := uuid.New()

		params := commands.UpdateVoucherParams{Name: "Free Tea", Code: "FREE_TEA", IsActive: true}
		f.vouchers.EXPECT().Update(ctx, gomock.Any(), id, params).
			Return(infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound))

		err := f.sut.Update(ctx, id, params)
		require.ErrorIs(t, err, errs.ErrVoucherNotFound)
	})

	t.Run("update persists the normalized code", func(t *testing.T) {
		f := newVoucherAdminFixture(t)
		id := uuid.New()

		f.vouchers.EXPECT().Update(ctx, gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _ uuid.UUID, params commands.UpdateVoucherParams) error {
				assert.Equal(t, "FREE_TEA", params.Code)
				return nil
			})

		err := f.sut.Update(ctx, id, commands.UpdateVoucherParams{Name: "Free Tea", Code: "free_tea", IsActive: true})
		require.NoError(t, err)
	})

	t.Run("update validates like create", func(t *testing.T) {
		f := newVoucherAdminFixture(t)

		err := f.sut.Update(ctx, uuid.New(), commands.UpdateVoucherParams{Name: "", Code: "FREE_TEA", IsActive: true})
		require.ErrorIs(t, err, errs.ErrInvalidVoucher)
	})
}

func TestVoucherCommands_SetActive(t *testing.T) {
	ctx := context.Background()
	f := newVoucherAdminFixture(t)
	id := uuid.New()

	f.vouchers.EXPECT().SetActive(ctx, gomock.Any(), id, false).Return(nil)

	require.NoError(t, f.sut.SetActive(ctx, id, false))
}
