package radar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alpharadar/alpharadar/internal/metrics"
	"github.com/alpharadar/alpharadar/internal/models"
	"github.com/alpharadar/alpharadar/pkg/validation"
)

const (
	welcomeText = "👋 Welcome to AlphaRadar!\nUse /commands to see all available features."

	helpText = "🛠️ Available Commands:\n" +
		"/start - Welcome message\n" +
		"/follow <wallet> - Start tracking a wallet\n" +
		"/unfollow <wallet> - Stop tracking a wallet\n" +
		"/list - Show your tracked wallets\n" +
		"/token <symbol> - Show token market data\n" +
		"/commands - Show this help message"

	unknownCommandText = "🤔 Unknown command. Use /commands to see all available features."
	notTrackingText    = "📭 You're not tracking any wallets."
	internalErrorText  = "⚠️ Something went wrong, please try again later."
)

// UsageError is returned when a command is called with the wrong arguments.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}

// HandleCommand answers a bot command. Text that is not a command yields an
// empty reply.
func (r *Radar) HandleCommand(ctx context.Context, subscriber models.SubscriberID, text string) string {
	cmd, args := parseCommand(text)
	if cmd == "" {
		return ""
	}

	var (
		reply string
		err   error
	)
	switch cmd {
	case "start":
		reply = welcomeText
	case "commands", "help":
		reply = helpText
	case "follow":
		reply, err = r.followCommand(subscriber, args)
	case "unfollow":
		reply, err = r.unfollowCommand(subscriber, args)
	case "list":
		reply = r.listCommand(subscriber)
	case "token":
		reply, err = r.tokenCommand(ctx, args)
	default:
		metrics.IncCommand("unknown")
		return unknownCommandText
	}
	metrics.IncCommand(cmd)

	if err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			r.logger.Debug("Command usage error", "subscriber", subscriber, "command", cmd, "args", args)
			return "❌ Usage: " + usageErr.Usage
		}
		r.logger.Error("Command failed", "subscriber", subscriber, "command", cmd, "error", err)
		return internalErrorText
	}
	return reply
}

// Follow starts watching a wallet for the subscriber. Following a wallet
// twice is not an error.
func (r *Radar) Follow(subscriber models.SubscriberID, wallet string) (models.Wallet, error) {
	normalized, err := validation.ValidateAndNormalizeWallet(wallet)
	if err != nil {
		return "", err
	}
	w := models.Wallet(normalized)
	if r.registry.Follow(subscriber, w) {
		r.logger.Info("Subscriber follows wallet", "subscriber", subscriber, "wallet", w)
	}
	return w, nil
}

// Unfollow stops watching a wallet. Unknown wallets and subscribers are ignored.
func (r *Radar) Unfollow(subscriber models.SubscriberID, wallet string) models.Wallet {
	w := models.Wallet(validation.NormalizeWallet(wallet))
	if r.registry.Unfollow(subscriber, w) {
		r.logger.Info("Subscriber unfollowed wallet", "subscriber", subscriber, "wallet", w)
	}
	return w
}

func (r *Radar) ListWallets(subscriber models.SubscriberID) []models.Wallet {
	return r.registry.List(subscriber)
}

func (r *Radar) followCommand(subscriber models.SubscriberID, args []string) (string, error) {
	usage := &UsageError{Usage: "/follow <wallet_address>"}
	if len(args) != 1 {
		return "", usage
	}
	w, err := r.Follow(subscriber, args[0])
	if err != nil {
		return "", usage
	}
	return fmt.Sprintf("✅ Now tracking wallet: %s", w), nil
}

func (r *Radar) unfollowCommand(subscriber models.SubscriberID, args []string) (string, error) {
	if len(r.registry.List(subscriber)) == 0 {
		return "❌ You're not tracking any wallets.", nil
	}
	if len(args) != 1 {
		return "", &UsageError{Usage: "/unfollow <wallet_address>"}
	}
	w := r.Unfollow(subscriber, args[0])
	return fmt.Sprintf("🛑 Stopped tracking wallet: %s", w), nil
}

func (r *Radar) listCommand(subscriber models.SubscriberID) string {
	wallets := r.registry.List(subscriber)
	if len(wallets) == 0 {
		return notTrackingText
	}
	lines := make([]string, len(wallets))
	for i, w := range wallets {
		lines[i] = string(w)
	}
	return "📋 Tracked wallets:\n" + strings.Join(lines, "\n")
}

func (r *Radar) tokenCommand(ctx context.Context, args []string) (string, error) {
	usage := &UsageError{Usage: "/token <symbol>"}
	if len(args) != 1 {
		return "", usage
	}
	symbol, err := validation.NormalizeSymbol(args[0])
	if err != nil {
		return "", usage
	}

	ctx, cancel := context.WithTimeout(ctx, r.fetchTimeout())
	defer cancel()

	token, err := r.chain.GetToken(ctx, symbol)
	if err != nil {
		r.logger.Warn("Failed to fetch token", "symbol", symbol, "error", err)
		return fmt.Sprintf("❌ Could not fetch data for token %s.", symbol), nil
	}
	return formatToken(token), nil
}

func formatToken(t *models.TokenInfo) string {
	return fmt.Sprintf("🪙 %s (%s)\n💵 Price: %s\n📊 24h Volume: %s\n🧠 Sentiment: %s",
		t.Name, t.Symbol, t.Price, t.Volume24h, t.Sentiment)
}

// parseCommand splits "/follow@SomeBot arg" into ("follow", ["arg"]).
// Text that does not start with "/" is not a command.
func parseCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil
	}
	cmd := strings.TrimPrefix(fields[0], "/")
	if i := strings.IndexByte(cmd, '@'); i >= 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd), fields[1:]
}
