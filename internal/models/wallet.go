package models

// SubscriberID identifies the chat that receives notifications.
// For Telegram it is the user (private chat) id.
type SubscriberID int64

// Wallet is a ledger address whose transaction history is polled.
type Wallet string

// Subscription is a single (subscriber, wallet) pair.
type Subscription struct {
	Subscriber SubscriberID `json:"subscriber"`
	Wallet     Wallet       `json:"wallet"`
}
