package repositories

import "context"

// SettingsRepositoryFacade is a single-key-value settings store, kept separate
// from the entry log. Get returns (value, false, nil) when the key is absent;
// Set overwrites unconditionally, last write wins.
type SettingsRepositoryFacade interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}
