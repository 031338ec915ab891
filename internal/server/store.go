package server

import (
	"context"
	"fmt"

	"github.com/iudanet/phrasesync/internal/server/config"
	"github.com/iudanet/phrasesync/internal/server/storage"
	"github.com/iudanet/phrasesync/internal/server/storage/postgres"
	s3store "github.com/iudanet/phrasesync/internal/server/storage/s3"
	"github.com/iudanet/phrasesync/internal/server/storage/sqlite"
)

// StoreOpener возвращает Opener для backend-а из конфигурации.
// Соединение открывается лениво, при первом запросе.
func StoreOpener(cfg config.StoreConfig) (storage.Opener, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return func(ctx context.Context) (storage.RemoteStore, error) {
			s, err := sqlite.New(ctx, cfg.SQLitePath)
			if err != nil {
				return nil, err
			}
			return s, nil
		}, nil
	case config.DriverPostgres:
		return func(ctx context.Context) (storage.RemoteStore, error) {
			s, err := postgres.New(ctx, cfg.PostgresDSN)
			if err != nil {
				return nil, err
			}
			return s, nil
		}, nil
	case config.DriverS3:
		return func(ctx context.Context) (storage.RemoteStore, error) {
			s, err := s3store.New(ctx, s3store.Config{
				Bucket:       cfg.S3.Bucket,
				Region:       cfg.S3.Region,
				Endpoint:     cfg.S3.Endpoint,
				AccessKey:    cfg.S3.AccessKey,
				SecretKey:    cfg.S3.SecretKey,
				Prefix:       cfg.S3.Prefix,
				UsePathStyle: cfg.S3.UsePathStyle,
			})
			if err != nil {
				return nil, err
			}
			return s, nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
