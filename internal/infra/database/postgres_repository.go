package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/xavierca1/rock-bullion-api/internal/entity"
)

// Cada entidade vira um documento JSONB; seq preserva a ordem de inserção.
const postgresSchema = `
	CREATE TABLE IF NOT EXISTS products (
		seq BIGSERIAL PRIMARY KEY,
		id  TEXT NOT NULL UNIQUE,
		doc JSONB NOT NULL
	);
	CREATE TABLE IF NOT EXISTS leads (
		seq        BIGSERIAL PRIMARY KEY,
		id         TEXT NOT NULL UNIQUE,
		doc        JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
`

func EnsurePostgresSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

type PostgresProductRepository struct {
	DB *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{DB: db}
}

func (r *PostgresProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT doc FROM products ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p := &entity.Product{}
		if err := json.Unmarshal(doc, p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var doc []byte
	err := r.DB.QueryRowContext(ctx, `SELECT doc FROM products WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	p := &entity.Product{}
	if err := json.Unmarshal(doc, p); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// CreateMany usa COPY numa transação: ou entram todos, ou nenhum.
func (r *PostgresProductRepository) CreateMany(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	txn, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer txn.Rollback()

	stmt, err := txn.PrepareContext(ctx, pq.CopyIn("products", "id", "doc"))
	if err != nil {
		return fmt.Errorf("failed to prepare copy: %w", err)
	}

	for _, p := range products {
		doc, err := json.Marshal(p)
		if err != nil {
			stmt.Close()
			return fmt.Errorf("failed to encode product: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, p.ID, string(doc)); err != nil {
			stmt.Close()
			return fmt.Errorf("failed to copy product: %w", err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("failed to flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("failed to close copy: %w", err)
	}

	return txn.Commit()
}

type PostgresLeadRepository struct {
	DB *sql.DB
}

func NewPostgresLeadRepository(db *sql.DB) *PostgresLeadRepository {
	return &PostgresLeadRepository{DB: db}
}

func (r *PostgresLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	doc, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("failed to encode lead: %w", err)
	}

	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO leads (id, doc, created_at) VALUES ($1, $2, $3)`,
		lead.ID, string(doc), lead.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("lead %s already exists: %w", lead.ID, err)
		}
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

func (r *PostgresLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT doc FROM leads ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		l := &entity.Lead{}
		if err := json.Unmarshal(doc, l); err != nil {
			return nil, fmt.Errorf("failed to decode lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}
