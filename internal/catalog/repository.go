package catalog

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrProductNotFound is returned when a sku is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// Repository is the sqlite-backed product catalog. The catalog is read-only
// after Seed; prices are stored as text so decimals round-trip exactly.
type Repository struct {
	db *sql.DB
}

func NewRepository(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite allows a single writer; one connection also keeps an
	// in-memory database alive across statements.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) RunMigrations() error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// Seed inserts the given products, skipping skus that already exist.
func (r *Repository) Seed(ctx context.Context, products []domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT OR IGNORE INTO products (sku, name, brand, price, currency)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, p := range products {
		if _, err := tx.ExecContext(ctx, query, p.SKU, p.Name, p.Brand, p.Price.String(), p.Currency); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.SKU, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	const query = `
		SELECT sku, name, brand, price, currency
		FROM products
		ORDER BY sku
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *Repository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	const query = `
		SELECT sku, name, brand, price, currency
		FROM products
		WHERE sku = $1
	`

	row := r.db.QueryRowContext(ctx, query, sku)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Search matches q case-insensitively against name and brand substrings.
// An empty result is not an error.
func (r *Repository) Search(ctx context.Context, q string) ([]domain.Product, error) {
	const query = `
		SELECT sku, name, brand, price, currency
		FROM products
		WHERE instr(lower(name), $1) > 0 OR instr(lower(brand), $1) > 0
		ORDER BY sku
	`

	rows, err := r.db.QueryContext(ctx, query, strings.ToLower(strings.TrimSpace(q)))
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *Repository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	p := &domain.Product{}
	var price string
	if err := row.Scan(&p.SKU, &p.Name, &p.Brand, &price, &p.Currency); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("invalid price for product %s: %w", p.SKU, err)
	}
	p.Price = parsed
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]domain.Product, error) {
	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}
