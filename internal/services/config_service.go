package services

import (
	"context"
	"fmt"

	"loja/pkg/kvstore"
)

// Store configuration keys. The admin panel edits exactly this set; unknown
// keys are rejected on write so the store cannot silently accumulate typos.
const (
	ConfigKeyStoreName        = "store_name"
	ConfigKeyStoreDescription = "store_description"
	ConfigKeyWhatsAppNumber   = "whatsapp_number"
	ConfigKeyWhatsAppMessage  = "whatsapp_message"
	ConfigKeyStoreAddress     = "store_address"
	ConfigKeyStorePhone       = "store_phone"
	ConfigKeyStoreEmail       = "store_email"
	ConfigKeyStoreHours       = "store_hours"
	ConfigKeyCurrencySymbol   = "currency_symbol"
	ConfigKeyCurrencyCode     = "currency_code"
	ConfigKeyThemePrimary     = "theme_primary"
	ConfigKeyThemeSecondary   = "theme_secondary"
	ConfigKeyThemeAccent      = "theme_accent"
)

// ConfigKeys lists every configuration key, in the order the admin panel
// displays them.
var ConfigKeys = []string{
	ConfigKeyStoreName,
	ConfigKeyStoreDescription,
	ConfigKeyWhatsAppNumber,
	ConfigKeyWhatsAppMessage,
	ConfigKeyStoreAddress,
	ConfigKeyStorePhone,
	ConfigKeyStoreEmail,
	ConfigKeyStoreHours,
	ConfigKeyCurrencySymbol,
	ConfigKeyCurrencyCode,
	ConfigKeyThemePrimary,
	ConfigKeyThemeSecondary,
	ConfigKeyThemeAccent,
}

// ConfigService reads and writes the named store configuration strings.
type ConfigService struct {
	store kvstore.Store
}

// NewConfigService creates a new ConfigService.
func NewConfigService(store kvstore.Store) *ConfigService {
	return &ConfigService{
		store: store,
	}
}

// Get returns the value for a configuration key; missing keys read as "".
func (s *ConfigService) Get(ctx context.Context, key string) (string, error) {
	return s.store.Get(ctx, key)
}

// GetAll returns every configuration key with its current value, missing
// keys included as empty strings.
func (s *ConfigService) GetAll(ctx context.Context) (map[string]string, error) {
	config := make(map[string]string, len(ConfigKeys))
	for _, key := range ConfigKeys {
		val, err := s.store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read config key %s: %w", key, err)
		}
		config[key] = val
	}
	return config, nil
}

// Put updates one configuration key. Keys outside the fixed set are
// rejected.
func (s *ConfigService) Put(ctx context.Context, key, value string) error {
	if !isKnownConfigKey(key) {
		return fmt.Errorf("unknown config key: %s", key)
	}
	if err := s.store.Put(ctx, key, value); err != nil {
		return fmt.Errorf("failed to write config key %s: %w", key, err)
	}
	return nil
}

// PutAll updates multiple configuration keys; unknown keys fail the whole
// request before anything is written.
func (s *ConfigService) PutAll(ctx context.Context, values map[string]string) error {
	for key := range values {
		if !isKnownConfigKey(key) {
			return fmt.Errorf("unknown config key: %s", key)
		}
	}
	for key, value := range values {
		if err := s.store.Put(ctx, key, value); err != nil {
			return fmt.Errorf("failed to write config key %s: %w", key, err)
		}
	}
	return nil
}

func isKnownConfigKey(key string) bool {
	for _, known := range ConfigKeys {
		if key == known {
			return true
		}
	}
	return false
}
