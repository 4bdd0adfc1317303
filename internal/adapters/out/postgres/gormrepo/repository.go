// Package gormrepo implements the CRUD half of every entity repository on top of GORM.
// The per-entity packages embed Repository and add their finders.
package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"truckrental/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// foreignKeyViolation is the Postgres SQLSTATE for a broken foreign key.
const foreignKeyViolation = "23503"

// Entity is what the domain packages expose to persistence.
type Entity interface {
	ID() int
	Validate() error
}

// Row is a GORM model with an explicit table name.
type Row interface {
	TableName() string
}

// AggregateTracker records every entity saved through a unit of work.
type AggregateTracker interface {
	TrackAggregate(id int, aggregate any)
}

// Mapper converts between an entity and its row.
type Mapper[E Entity, R Row] struct {
	FromDomain func(E) R
	ToDomain   func(R) (E, error)
}

type Repository[E Entity, R Row] struct {
	db        *gorm.DB
	tracker   AggregateTracker
	mapper    Mapper[E, R]
	paramName string
}

// New builds a repository. paramName names the id in not-found errors, e.g. "customerId".
func New[E Entity, R Row](db *gorm.DB, tracker AggregateTracker, mapper Mapper[E, R], paramName string) *Repository[E, R] {
	return &Repository[E, R]{
		db:        db,
		tracker:   tracker,
		mapper:    mapper,
		paramName: paramName,
	}
}

// NextID draws the next value of the table's id sequence.
func (r *Repository[E, R]) NextID(ctx context.Context) (int, error) {
	var row R
	var id int
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval(pg_get_serial_sequence(?, 'id'))", row.TableName()).
		Scan(&id).Error
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository[E, R]) Get(ctx context.Context, id int) (E, error) {
	var row R
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		var zero E
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, errs.NewObjectNotFoundError(r.paramName, id)
		}
		return zero, err
	}

	return r.mapper.ToDomain(row)
}

func (r *Repository[E, R]) List(ctx context.Context) ([]E, error) {
	return r.FindWhere(ctx, nil)
}

// Save upserts the entity by id.
func (r *Repository[E, R]) Save(ctx context.Context, entity E) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	row := r.mapper.FromDomain(entity)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Delete removes the row; a missing row is not an error. A row other tables still point at
// is kept and reported as an ObjectIsReferencedError.
func (r *Repository[E, R]) Delete(ctx context.Context, id int) error {
	var row R
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&row).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return errs.NewObjectIsReferencedErrorWithCause(r.paramName, id, fmt.Errorf("constraint %s", pgErr.ConstraintName))
	}
	return err
}

// FindWhere lists entities matching the condition in id order. A nil query matches every row.
func (r *Repository[E, R]) FindWhere(ctx context.Context, query any, args ...any) ([]E, error) {
	tx := r.db.WithContext(ctx).Order("id")
	if query != nil {
		tx = tx.Where(query, args...)
	}

	var rows []R
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	entities := make([]E, 0, len(rows))
	for _, row := range rows {
		e, err := r.mapper.ToDomain(row)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}

	return entities, nil
}

// FirstWhere returns the first entity matching the condition or an ObjectNotFoundError
// naming paramName and value.
func (r *Repository[E, R]) FirstWhere(ctx context.Context, paramName string, value any, query any, args ...any) (E, error) {
	var row R
	if err := r.db.WithContext(ctx).Where(query, args...).First(&row).Error; err != nil {
		var zero E
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, errs.NewObjectNotFoundError(paramName, value)
		}
		return zero, err
	}

	return r.mapper.ToDomain(row)
}
