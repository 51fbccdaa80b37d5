package repositories

import (
	"sort"

	"tutalink_backend/internal/models"
)

// ConfigRepository covers the two admin-managed settings surfaces: keyed
// system config records and the footer singleton.
type ConfigRepository interface {
	FindSystemConfig(key string) (*models.SystemConfig, error)
	AllSystemConfigs() []*models.SystemConfig
	UpsertSystemConfig(key, value string) *models.SystemConfig

	FooterContent() models.FooterContent
	UpdateFooterContent(content models.FooterContent) models.FooterContent
}

type configRepository struct {
	store *Store
}

func NewConfigRepository(store *Store) ConfigRepository {
	return &configRepository{store: store}
}

func (r *configRepository) FindSystemConfig(key string) (*models.SystemConfig, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cfg, ok := r.store.configs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &cfg, nil
}

func (r *configRepository) AllSystemConfigs() []*models.SystemConfig {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	configs := make([]*models.SystemConfig, 0, len(r.store.configs))
	for _, cfg := range r.store.configs {
		c := cfg
		configs = append(configs, &c)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].ID < configs[j].ID })
	return configs
}

// UpsertSystemConfig updates the value under key, creating the record
// (with a fresh id) when it does not exist yet.
func (r *configRepository) UpsertSystemConfig(key, value string) *models.SystemConfig {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if cfg, ok := r.store.configs[key]; ok {
		cfg.Value = value
		r.store.configs[key] = cfg
		return &cfg
	}

	cfg := models.SystemConfig{
		ID:    r.store.nextConfigID,
		Key:   key,
		Value: value,
	}
	r.store.nextConfigID++
	r.store.configs[key] = cfg
	return &cfg
}

func (r *configRepository) FooterContent() models.FooterContent {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.footer
}

// UpdateFooterContent replaces the whole singleton record.
func (r *configRepository) UpdateFooterContent(content models.FooterContent) models.FooterContent {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	content.ID = 1
	r.store.footer = content
	return content
}
