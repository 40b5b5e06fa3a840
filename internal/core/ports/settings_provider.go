package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
)

// StoreSettings is the snapshot of store configuration the order core
// depends on. Values are injected where needed rather than read from
// ambient global state, which keeps tests deterministic.
type StoreSettings struct {
	// SendCustomerNotifications gates the notification dispatcher as a whole.
	SendCustomerNotifications bool

	// DefaultDeliveryFee is applied to non-pickup orders at placement.
	DefaultDeliveryFee kernel.Money
}

// SettingsProvider supplies the current store settings snapshot.
// Implementations may cache and refresh in the background; callers always
// get a consistent snapshot.
type SettingsProvider interface {
	Settings(ctx context.Context) StoreSettings
}
