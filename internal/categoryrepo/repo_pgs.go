// Package categoryrepo manages repository layer of categories.
package categoryrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/go-petr/taka-track/internal/domain"
	"github.com/go-petr/taka-track/pkg/dbpkg"
	"github.com/go-petr/taka-track/pkg/errorspkg"
)

// RepoPGS facilitates category repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns category RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const getQuery = `
SELECT id, owner, name FROM categories
WHERE id = $1
`

// Get returns the category with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Category, error) {
	l := zerolog.Ctx(ctx)

	var c domain.Category

	err := r.db.QueryRowContext(ctx, getQuery, id).Scan(&c.ID, &c.Owner, &c.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return c, domain.ErrCategoryNotFound
		}

		l.Error().Err(err).Send()

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const listQuery = `
SELECT id, owner, name FROM categories
WHERE owner = $1 OR owner IS NULL
ORDER BY id
`

// List returns the owner's categories together with the shared defaults.
func (r *RepoPGS) List(ctx context.Context, owner string) ([]domain.Category, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Category{}

	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Owner, &c.Name); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
