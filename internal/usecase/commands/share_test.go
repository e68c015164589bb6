//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"spinwheel/internal/domain/user"
	"spinwheel/internal/pkg/clock"
	"spinwheel/internal/pkg/errs"
	"spinwheel/internal/usecase/commands"
	commandsmock "spinwheel/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type shareFixture struct {
	shares *commandsmock.MockShareRepository
	reads  *commandsmock.MockWheelReads
	sut    commands.ShareCommands
}

func newShareFixture(t *testing.T) *shareFixture {
	ctrl := gomock.NewController(t)
	f := &shareFixture{
		shares: commandsmock.NewMockShareRepository(ctrl),
		reads:  commandsmock.NewMockWheelReads(ctrl),
	}
	clk := clock.NewMockClock(time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC))
	f.sut = commands.NewShareCommands(fakeRunner{}, f.shares, f.reads, clk)
	return f
}

func TestShareCommands_RecordShare(t *testing.T) {
	ctx := context.Background()

	t.Run("first share of the day is recorded", func(t *testing.T) {
		f := newShareFixture(t)
		principal := memberPrincipal()

		f.reads.EXPECT().FindShareEvent(ctx, gomock.Any(), principal.Phone, gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.shares.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, ev *commands.ShareEvent) (uuid.UUID, error) {
				assert.Equal(t, principal.ID, ev.UserID)
				assert.Equal(t, principal.Phone, ev.Phone)
				assert.Equal(t, "1.2.3.4", ev.IP)
				return uuid.New(), nil
			})

		outcome, err := f.sut.RecordShare(ctx, principal, "1.2.3.4")
		require.NoError(t, err)

		assert.False(t, outcome.AlreadyRecorded)
		assert.True(t, outcome.BonusUnlocked)
	})

	t.Run("repeat share is idempotent", func(t *testing.T) {
		f := newShareFixture(t)
		principal := memberPrincipal()

		f.reads.EXPECT().FindShareEvent(ctx, gomock.Any(), principal.Phone, gomock.Any(), gomock.Any()).
			Return(true, nil)

		outcome, err := f.sut.RecordShare(ctx, principal, "1.2.3.4")
		require.NoError(t, err)

		assert.True(t, outcome.AlreadyRecorded)
		assert.True(t, outcome.BonusUnlocked)
	})

	t.Run("guards", func(t *testing.T) {
		f := newShareFixture(t)

		_, err := f.sut.RecordShare(ctx, user.Principal{}, "1.2.3.4")
		require.ErrorIs(t, err, errs.ErrUnauthenticated)

		_, err = f.sut.RecordShare(ctx, user.Principal{ID: uuid.New()}, "1.2.3.4")
		require.ErrorIs(t, err, errs.ErrMissingPhone)
	})
}
