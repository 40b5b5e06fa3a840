package settingsrepo

import (
	"context"
	"errors"
	"sync"

	"pizzeria/internal/core/ports"

	"gorm.io/gorm"
)

// GormSettingsRepository reads the store settings row.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Load reads the current settings row.
// When the row does not exist yet the given defaults are returned; the row
// is not created here so an empty database stays writable by the back office.
func (r *GormSettingsRepository) Load(ctx context.Context, defaults ports.StoreSettings) (ports.StoreSettings, error) {
	var dto SettingsDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", settingsRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaults, nil
		}
		return ports.StoreSettings{}, err
	}

	return toSnapshot(dto), nil
}

// CachedSettingsProvider serves a settings snapshot from memory.
// The snapshot is refreshed on a schedule, so order placement never waits on
// a settings read and always sees a consistent fee/notification pair.
type CachedSettingsProvider struct {
	repo     *GormSettingsRepository
	defaults ports.StoreSettings

	mu       sync.RWMutex
	snapshot ports.StoreSettings
}

// NewCachedSettingsProvider creates a provider seeded with the given defaults.
// The defaults stay in effect until the first successful Refresh.
func NewCachedSettingsProvider(repo *GormSettingsRepository, defaults ports.StoreSettings) *CachedSettingsProvider {
	return &CachedSettingsProvider{
		repo:     repo,
		defaults: defaults,
		snapshot: defaults,
	}
}

// Settings returns the current snapshot.
func (p *CachedSettingsProvider) Settings(_ context.Context) ports.StoreSettings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

// Refresh reloads the snapshot from the database.
// On error the previous snapshot stays in effect.
func (p *CachedSettingsProvider) Refresh(ctx context.Context) error {
	settings, err := p.repo.Load(ctx, p.defaults)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.snapshot = settings
	p.mu.Unlock()

	return nil
}
