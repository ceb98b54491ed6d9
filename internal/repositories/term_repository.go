package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"termdex/internal/models"
)

// likeEscaper neutralizes LIKE metacharacters so a user query matches
// literally. `\` is the default ESCAPE character in Postgres.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type TermRepository struct {
	pool *pgxpool.Pool
}

func NewTermRepository(pool *pgxpool.Pool) *TermRepository {
	return &TermRepository{pool: pool}
}

const termColumns = `
	t.id, t.term, t.description, t.project_id, t.extra_tags, t.created_at,
	p.id, p.name, p.description, p.created_at
`

// Search returns terms matching all supplied filters, newest first, each
// with its joined project. The free-text query is a case-insensitive
// substring match over term, description and extra_tags; the tag filter
// matches a trimmed extra_tags entry or the related project's name.
func (r *TermRepository) Search(ctx context.Context, filter TermFilter) ([]models.Term, error) {
	query := `
		SELECT ` + termColumns + `
		FROM terms t
		LEFT JOIN projects p ON p.id = t.project_id
	`

	var conditions []string
	var args []interface{}

	if filter.Query != "" {
		args = append(args, "%"+likeEscaper.Replace(filter.Query)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(t.term ILIKE $%d OR t.description ILIKE $%d OR t.extra_tags ILIKE $%d)", n, n, n))
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		conditions = append(conditions, fmt.Sprintf("t.project_id = $%d", len(args)))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(p.name = $%d OR EXISTS (SELECT 1 FROM unnest(string_to_array(t.extra_tags, ',')) AS tag WHERE btrim(tag) = $%d))", n, n))
	}

	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += " ORDER BY t.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []models.Term
	for rows.Next() {
		term, err := scanTerm(rows)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}

	return terms, rows.Err()
}

func (r *TermRepository) GetByID(ctx context.Context, id int64) (*models.Term, error) {
	query := `
		SELECT ` + termColumns + `
		FROM terms t
		LEFT JOIN projects p ON p.id = t.project_id
		WHERE t.id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	term, err := scanTerm(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &term, nil
}

func (r *TermRepository) Create(ctx context.Context, term *models.Term) error {
	query := `
		INSERT INTO terms (term, description, project_id, extra_tags)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.pool.QueryRow(ctx, query,
		term.Term,
		term.Description,
		term.ProjectID,
		term.ExtraTags,
	).Scan(&term.ID, &term.CreatedAt)
}

func (r *TermRepository) Update(ctx context.Context, term *models.Term) error {
	query := `
		UPDATE terms SET term = $2, description = $3, project_id = $4, extra_tags = $5
		WHERE id = $1
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		term.ID,
		term.Term,
		term.Description,
		term.ProjectID,
		term.ExtraTags,
	).Scan(&term.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *TermRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM terms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTerm(row pgx.Row) (models.Term, error) {
	var term models.Term
	var projectID *int64
	var projectName, projectDescription *string
	var projectCreatedAt *time.Time

	err := row.Scan(
		&term.ID,
		&term.Term,
		&term.Description,
		&term.ProjectID,
		&term.ExtraTags,
		&term.CreatedAt,
		&projectID,
		&projectName,
		&projectDescription,
		&projectCreatedAt,
	)
	if err != nil {
		return models.Term{}, err
	}

	if projectID != nil {
		term.Project = &models.Project{
			ID:          *projectID,
			Name:        *projectName,
			Description: projectDescription,
			CreatedAt:   *projectCreatedAt,
		}
	}

	return term, nil
}
