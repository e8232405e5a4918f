package models

// Registry keeps track of which subscribers watch which wallets.
type Registry interface {
	// Follow adds wallet to the subscriber's watch set.
	// It reports whether the wallet was not already watched.
	Follow(subscriber SubscriberID, wallet Wallet) bool
	// Unfollow removes wallet from the subscriber's watch set.
	// It reports whether anything was removed.
	Unfollow(subscriber SubscriberID, wallet Wallet) bool
	// List returns a copy of the subscriber's watch set.
	List(subscriber SubscriberID) []Wallet
	// IsFollowing reports whether subscriber currently watches wallet.
	IsFollowing(subscriber SubscriberID, wallet Wallet) bool
	// AllSubscriptions returns a snapshot of every (subscriber, wallet) pair.
	AllSubscriptions() []Subscription
	// Stats returns the number of known subscribers and distinct watched wallets.
	Stats() (subscribers int, wallets int)
}

// DeltaTracker remembers the last transaction seen for each wallet.
type DeltaTracker interface {
	GetLast(wallet Wallet) (string, bool)
	SetLast(wallet Wallet, ref string)
	Len() int
}
