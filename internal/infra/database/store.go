package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
)

const (
	DefaultDatabaseName = "rock_bullion"

	ProductsCollection = "products"
	LeadsCollection    = "leads"
)

// Store agrupa os repositórios de um backend. Criado uma vez no main e injetado nos handlers.
type Store struct {
	Kind     string
	Products entity.ProductRepositoryInterface
	Leads    entity.LeadRepositoryInterface

	closeFn func(ctx context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}

// Open escolhe o backend pelo scheme da connection string:
// mongodb:// e mongodb+srv:// (padrão), postgres:// e postgresql://, memory://.
func Open(ctx context.Context, rawURL string) (*Store, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		client, err := NewMongoConnection(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		db := client.Database(databaseName(u))
		return &Store{
			Kind:     "mongodb",
			Products: NewMongoProductRepository(db.Collection(ProductsCollection)),
			Leads:    NewMongoLeadRepository(db.Collection(LeadsCollection)),
			closeFn:  client.Disconnect,
		}, nil

	case "postgres", "postgresql":
		db, err := NewPostgresConnection(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		if err := EnsurePostgresSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &Store{
			Kind:     "postgres",
			Products: NewPostgresProductRepository(db),
			Leads:    NewPostgresLeadRepository(db),
			closeFn:  func(context.Context) error { return db.Close() },
		}, nil

	case "memory":
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unsupported storage scheme %q", u.Scheme)
	}
}

func NewMemoryStore() *Store {
	return &Store{
		Kind:     "memory",
		Products: NewMemoryProductRepository(),
		Leads:    NewMemoryLeadRepository(),
	}
}

func databaseName(u *url.URL) string {
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return DefaultDatabaseName
}
