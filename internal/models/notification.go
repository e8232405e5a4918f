package models

import (
	"fmt"
	"strings"
)

// NotificationEvent is produced when a watched wallet has a new transaction.
type NotificationEvent struct {
	Recipient   SubscriberID `json:"recipient"`
	Wallet      Wallet       `json:"wallet"`
	Transaction Transaction  `json:"transaction"`
}

// Markdown renders the event as a Telegram legacy Markdown message.
// explorerTxURL is the prefix the signature is appended to.
func (n *NotificationEvent) Markdown(explorerTxURL string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🚨 New transaction for `%s`\n", n.Wallet)
	fmt.Fprintf(&sb, "*Amount*: %s %s\n", n.Transaction.Amount, n.Transaction.Symbol)
	if n.Transaction.Timestamp != "" && n.Transaction.Timestamp != UnknownValue {
		fmt.Fprintf(&sb, "*Time*: %s\n", n.Transaction.Timestamp)
	}
	if n.Transaction.Signature != "" && n.Transaction.Signature != UnknownValue {
		link := strings.TrimSuffix(explorerTxURL, "/") + "/" + n.Transaction.Signature
		fmt.Fprintf(&sb, "[View on Solscan](%s)", link)
	} else {
		sb.WriteString("_Signature unavailable_")
	}
	return sb.String()
}
