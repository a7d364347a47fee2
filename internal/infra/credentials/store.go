// Package credentials reads and writes collaborator API keys kept in the
// database, so operators can rotate them without redeploying the worker.
package credentials

import (
	"context"
	"errors"
	"strings"

	"cardsmith/internal/infra"
	"cardsmith/internal/sqlinline"
)

const (
	ProviderImagegen = "imagegen"
)

type Store struct {
	sql infra.SQLExecutor
}

func NewStore(sql infra.SQLExecutor) *Store {
	return &Store{sql: sql}
}

// ImagegenAPIKey returns the stored generation backend key, or "" when none
// is configured.
func (s *Store) ImagegenAPIKey(ctx context.Context) (string, error) {
	return s.Token(ctx, ProviderImagegen)
}

func (s *Store) Token(ctx context.Context, provider string) (string, error) {
	row := s.sql.QueryRow(ctx, sqlinline.QSelectIntegrationToken, provider)
	var token string
	if err := row.Scan(&token); err != nil {
		if infra.IsNoRows(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(token), nil
}

func (s *Store) SetImagegenAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("imagegen api key is required")
	}
	_, err := s.sql.Exec(ctx, sqlinline.QUpsertIntegrationToken, ProviderImagegen, key)
	return err
}
