// Package settingsrepo persists store settings and serves them to the order
// core through a cached snapshot provider. The settings row is written by the
// back office out of band; this service only reads and periodically refreshes.
package settingsrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/ports"
)

// settingsRowID is the primary key of the single store settings row.
const settingsRowID = 1

// SettingsDTO represents the single-row store settings table.
type SettingsDTO struct {
	ID                        int `gorm:"primaryKey"`
	SendCustomerNotifications bool
	DeliveryFeeCents          int64
	UpdatedAt                 time.Time
}

// TableName specifies the database table name for store settings.
func (SettingsDTO) TableName() string {
	return "store_settings"
}

func toSnapshot(dto SettingsDTO) ports.StoreSettings {
	return ports.StoreSettings{
		SendCustomerNotifications: dto.SendCustomerNotifications,
		DefaultDeliveryFee:        kernel.NewMoneyFromCents(dto.DeliveryFeeCents),
	}
}
