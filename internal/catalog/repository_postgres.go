package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List Sauces
// --------------------------------------------------
func (r *PostgresRepository) ListSauces(ctx context.Context) ([]Sauce, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			name,
			category,
			is_dry_rub,
			heat_level,
			COALESCE(image_url, '')
		FROM sauces
		ORDER BY sort_order, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sauces []Sauce

	for rows.Next() {
		var s Sauce
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Category,
			&s.IsDryRub,
			&s.HeatLevel,
			&s.ImageURL,
		); err != nil {
			return nil, err
		}
		sauces = append(sauces, s)
	}

	return NormalizeAll(sauces), rows.Err()
}

// --------------------------------------------------
// Get Sauces by ID (selection order preserved)
// --------------------------------------------------
func (r *PostgresRepository) GetSauces(
	ctx context.Context,
	ids []string,
) ([]Sauce, error) {

	if len(ids) == 0 {
		return []Sauce{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			name,
			category,
			is_dry_rub,
			heat_level,
			COALESCE(image_url, '')
		FROM sauces
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]Sauce, len(ids))
	for rows.Next() {
		var s Sauce
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Category,
			&s.IsDryRub,
			&s.HeatLevel,
			&s.ImageURL,
		); err != nil {
			return nil, err
		}
		byID[s.ID] = Normalize(s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Keep the caller's selection order; even-mix remainder
	// distribution depends on it.
	var sauces []Sauce
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			sauces = append(sauces, s)
		}
	}

	return sauces, nil
}

// --------------------------------------------------
// List Catering Packages
// --------------------------------------------------
func (r *PostgresRepository) ListPackages(
	ctx context.Context,
) ([]CateringPackage, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			name,
			total_wings,
			serves,
			base_price
		FROM catering_packages
		ORDER BY total_wings
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []CateringPackage

	for rows.Next() {
		var p CateringPackage
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.TotalWings,
			&p.Serves,
			&p.BasePrice,
		); err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, rows.Err()
}

// --------------------------------------------------
// Create Sauce (ADMIN)
// --------------------------------------------------
func (r *PostgresRepository) CreateSauce(
	ctx context.Context,
	s *Sauce,
) error {

	norm := Normalize(*s)
	*s = norm

	_, err := r.db.Exec(ctx, `
		INSERT INTO sauces (
			id,
			name,
			category,
			is_dry_rub,
			heat_level,
			image_url
		)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		s.ID,
		s.Name,
		s.Category,
		s.IsDryRub,
		s.HeatLevel,
		s.ImageURL,
	)
	return err
}

// --------------------------------------------------
// Attach Image URL (ADMIN)
// --------------------------------------------------
func (r *PostgresRepository) SetSauceImage(
	ctx context.Context,
	sauceID string,
	imageURL string,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE sauces
		SET image_url = $2
		WHERE id = $1
	`, sauceID, imageURL)
	return err
}
