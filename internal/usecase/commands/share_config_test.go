//go:build unit

package commands_test

import (
	"context"
	"testing"

	"spinwheel/internal/pkg/errs"
	"spinwheel/internal/usecase/commands"
	commandsmock "spinwheel/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestShareConfigCommands_SetShareURL(t *testing.T) {
	ctx := context.Background()

	newSut := func(t *testing.T) (*commandsmock.MockShareConfigRepository, commands.ShareConfigCommands) {
		ctrl := gomock.NewController(t)
		configs := commandsmock.NewMockShareConfigRepository(ctrl)
		return configs, commands.NewShareConfigCommands(fakeRunner{}, configs)
	}

	t.Run("valid absolute URL is stored", func(t *testing.T) {
		configs, sut := newSut(t)

		configs.EXPECT().Upsert(ctx, gomock.Any(), "https://example.com/campaign").
			Return("https://example.com/campaign", nil)

		saved, err := sut.SetShareURL(ctx, "https://example.com/campaign")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/campaign", saved)
	})

	t.Run("invalid URLs are rejected before storage", func(t *testing.T) {
		_, sut := newSut(t)

		for _, raw := range []string{"/campaign", "ftp://example.com", "https://", "not a url"} {
			_, err := sut.SetShareURL(ctx, raw)
			require.ErrorIs(t, err, errs.ErrInvalidShareURL, "url %q", raw)
		}
	})
}
