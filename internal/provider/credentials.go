// Package provider stores provider-form API credentials. Records live in
// Redis keyed by provider account, so every instance sees the same
// credentials and restarts do not lose them.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"leadtrack_backend/platform/config"

	"github.com/redis/go-redis/v9"
)

var ErrCredentialsNotFound = errors.New("provider credentials not found")

const credentialKeyPrefix = "provider:credentials:"

// Credentials is one provider account's API access record.
type Credentials struct {
	AccessToken string    `json:"accessToken"`
	BusinessID  string    `json:"businessId"`
	FormIDs     []string  `json:"formIds"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CredentialStore persists credentials in Redis with a configurable TTL.
// A zero TTL keeps records until they are deleted.
type CredentialStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCredentialStore(cfg config.ProviderConfig) (*CredentialStore, error) {
	opt, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewCredentialStoreWithClient(redis.NewClient(opt), cfg.GetProviderCredentialTTL()), nil
}

// NewCredentialStoreWithClient wraps an existing client. The store owns the
// client and closes it on Close.
func NewCredentialStoreWithClient(client *redis.Client, ttl time.Duration) *CredentialStore {
	return &CredentialStore{client: client, ttl: ttl}
}

// Save stores the credentials for an account, stamping UpdatedAt.
func (s *CredentialStore) Save(ctx context.Context, account string, creds Credentials) error {
	if account == "" {
		return errors.New("account is required")
	}

	creds.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	return s.client.Set(ctx, credentialKey(account), data, s.ttl).Err()
}

// Load returns the credentials for an account, ErrCredentialsNotFound when
// none are stored or the record has expired.
func (s *CredentialStore) Load(ctx context.Context, account string) (Credentials, error) {
	data, err := s.client.Get(ctx, credentialKey(account)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Credentials{}, ErrCredentialsNotFound
	}
	if err != nil {
		return Credentials{}, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("unmarshal credentials: %w", err)
	}
	return creds, nil
}

// Delete removes the credentials for an account. Deleting an absent account
// is not an error.
func (s *CredentialStore) Delete(ctx context.Context, account string) error {
	return s.client.Del(ctx, credentialKey(account)).Err()
}

func (s *CredentialStore) Close() error {
	return s.client.Close()
}

func credentialKey(account string) string {
	return credentialKeyPrefix + account
}
