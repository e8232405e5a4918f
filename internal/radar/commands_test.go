package radar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alpharadar/alpharadar/internal/models"
)

func TestHandleCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("start and help", func(t *testing.T) {
		r := newTestRadar(t, nil)
		assert.Equal(t, welcomeText, r.HandleCommand(ctx, 42, "/start"))
		assert.Equal(t, helpText, r.HandleCommand(ctx, 42, "/commands"))
		assert.Equal(t, helpText, r.HandleCommand(ctx, 42, "/help@AlphaRadarBot"))
	})

	t.Run("plain text is ignored", func(t *testing.T) {
		r := newTestRadar(t, nil)
		assert.Empty(t, r.HandleCommand(ctx, 42, "hello there"))
		assert.Empty(t, r.HandleCommand(ctx, 42, "   "))
	})

	t.Run("unknown command", func(t *testing.T) {
		r := newTestRadar(t, nil)
		assert.Equal(t, unknownCommandText, r.HandleCommand(ctx, 42, "/frobnicate"))
	})

	t.Run("follow", func(t *testing.T) {
		r := newTestRadar(t, nil)

		assert.Equal(t, "✅ Now tracking wallet: WALLET_A", r.HandleCommand(ctx, 42, "/follow WALLET_A"))
		assert.Equal(t, "✅ Now tracking wallet: WALLET_A", r.HandleCommand(ctx, 42, "/follow@AlphaRadarBot WALLET_A"))
		assert.Equal(t, []models.Wallet{"WALLET_A"}, r.ListWallets(42))
	})

	t.Run("follow usage errors", func(t *testing.T) {
		r := newTestRadar(t, nil)

		assert.Equal(t, "❌ Usage: /follow <wallet_address>", r.HandleCommand(ctx, 42, "/follow"))
		assert.Equal(t, "❌ Usage: /follow <wallet_address>", r.HandleCommand(ctx, 42, "/follow A B"))
		assert.Equal(t, "❌ Usage: /follow <wallet_address>", r.HandleCommand(ctx, 42, "/follow ``"))
		assert.Empty(t, r.ListWallets(42))
	})

	t.Run("unfollow", func(t *testing.T) {
		r := newTestRadar(t, nil)

		assert.Equal(t, "❌ You're not tracking any wallets.", r.HandleCommand(ctx, 42, "/unfollow WALLET_A"))

		r.HandleCommand(ctx, 42, "/follow WALLET_A")
		assert.Equal(t, "❌ Usage: /unfollow <wallet_address>", r.HandleCommand(ctx, 42, "/unfollow"))
		assert.Equal(t, "🛑 Stopped tracking wallet: WALLET_B", r.HandleCommand(ctx, 42, "/unfollow WALLET_B"))
		assert.Equal(t, []models.Wallet{"WALLET_A"}, r.ListWallets(42))

		assert.Equal(t, "🛑 Stopped tracking wallet: WALLET_A", r.HandleCommand(ctx, 42, "/unfollow WALLET_A"))
		assert.Empty(t, r.ListWallets(42))
	})

	t.Run("list", func(t *testing.T) {
		r := newTestRadar(t, nil)

		assert.Equal(t, notTrackingText, r.HandleCommand(ctx, 42, "/list"))

		r.HandleCommand(ctx, 42, "/follow WALLET_B")
		r.HandleCommand(ctx, 42, "/follow WALLET_A")
		assert.Equal(t, "📋 Tracked wallets:\nWALLET_A\nWALLET_B", r.HandleCommand(ctx, 42, "/list"))
		assert.Equal(t, notTrackingText, r.HandleCommand(ctx, 7, "/list"))
	})

	t.Run("token", func(t *testing.T) {
		r := newTestRadar(t, nil)
		r.chain.GetTokenFunc = func(ctx context.Context, symbol string) (*models.TokenInfo, error) {
			assert.Equal(t, "JUP", symbol)
			return &models.TokenInfo{Name: "Jupiter", Symbol: "JUP", Price: "0.91", Volume24h: "1000", Sentiment: "bullish"}, nil
		}

		assert.Equal(t,
			"🪙 Jupiter (JUP)\n💵 Price: 0.91\n📊 24h Volume: 1000\n🧠 Sentiment: bullish",
			r.HandleCommand(ctx, 42, "/token $jup"))
		assert.Equal(t, "❌ Usage: /token <symbol>", r.HandleCommand(ctx, 42, "/token"))
	})

	t.Run("token lookup failure", func(t *testing.T) {
		r := newTestRadar(t, nil)
		r.chain.GetTokenFunc = func(ctx context.Context, symbol string) (*models.TokenInfo, error) {
			return nil, errors.New("unexpected status code 404")
		}

		assert.Equal(t, "❌ Could not fetch data for token NOPE.", r.HandleCommand(ctx, 42, "/token nope"))
	})
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text     string
		wantCmd  string
		wantArgs []string
	}{
		{text: "/follow abc", wantCmd: "follow", wantArgs: []string{"abc"}},
		{text: "  /LIST  ", wantCmd: "list", wantArgs: []string{}},
		{text: "/token@Bot  sol ", wantCmd: "token", wantArgs: []string{"sol"}},
		{text: "follow abc", wantCmd: ""},
		{text: "", wantCmd: ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cmd, args := parseCommand(tt.text)
			assert.Equal(t, tt.wantCmd, cmd)
			if tt.wantCmd != "" {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestUsageError(t *testing.T) {
	var err error = &UsageError{Usage: "/follow <wallet_address>"}
	var ue *UsageError
	assert.True(t, errors.As(err, &ue))
	assert.Equal(t, "usage: /follow <wallet_address>", err.Error())
}
