// Package crud provides a generic GORM table accessor shared by the entity
// repositories. Every statement binds its values as parameters.
package crud

import (
	"context"
	"errors"

	"parcellocker/internal/pkg/errs"

	"gorm.io/gorm"
)

// Record is a GORM DTO persisted in its own table with a bigserial "id" column.
type Record interface {
	TableName() string
	Identity() int64
}

// Table runs CRUD statements for one DTO type.
//
// Example:
//
//	sites := crud.NewTable[SiteDTO](tx, "site")
//	id, err := sites.Insert(ctx, &dto)
//	if err != nil {
//	    return err
//	}
//	dto, err = sites.FindByID(ctx, id)
type Table[D Record] struct {
	db     *gorm.DB
	entity string
}

// NewTable binds a table accessor to db, which may be a transaction handle.
// entity names the rows in errors.
func NewTable[D Record](db *gorm.DB, entity string) Table[D] {
	return Table[D]{
		db:     db,
		entity: entity,
	}
}

// FindByID returns the row or errs.ErrObjectNotFound.
func (t Table[D]) FindByID(ctx context.Context, id int64) (D, error) {
	var dto D
	if err := t.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto, errs.NewObjectNotFoundErrorWithCause(t.entity, id, err)
		}
		return dto, err
	}
	return dto, nil
}

// FindAll returns every row ordered by id.
func (t Table[D]) FindAll(ctx context.Context) ([]D, error) {
	dtos := make([]D, 0)
	if err := t.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return dtos, nil
}

// Insert creates the row and returns the identity assigned by the database.
// Unique and foreign-key conflicts yield errs.ErrConstraintViolation.
func (t Table[D]) Insert(ctx context.Context, dto *D) (int64, error) {
	if err := t.db.WithContext(ctx).Create(dto).Error; err != nil {
		return 0, translate(t.entity, err)
	}
	return (*dto).Identity(), nil
}

// Update overwrites every column of row id, or returns errs.ErrObjectNotFound.
func (t Table[D]) Update(ctx context.Context, id int64, dto *D) error {
	matched, err := t.UpdateIf(ctx, id, dto, "")
	if err != nil {
		return err
	}
	if !matched {
		return errs.NewObjectNotFoundError(t.entity, id)
	}
	return nil
}

// UpdateIf overwrites row id only when it also satisfies condition. It reports
// whether a row matched. An empty condition matches on id alone.
func (t Table[D]) UpdateIf(ctx context.Context, id int64, dto *D, condition string, args ...any) (bool, error) {
	query := t.db.WithContext(ctx).Model(new(D)).Where("id = ?", id)
	if condition != "" {
		query = query.Where(condition, args...)
	}

	result := query.Select("*").Omit("id").Updates(dto)
	if result.Error != nil {
		return false, translate(t.entity, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete removes row id and returns its id. A missing row is
// errs.ErrObjectNotFound, not a silent success.
func (t Table[D]) Delete(ctx context.Context, id int64) (int64, error) {
	result := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(D))
	if result.Error != nil {
		return 0, translate(t.entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewObjectNotFoundError(t.entity, id)
	}
	return id, nil
}

// Scope exposes the underlying handle for queries beyond CRUD, already bound
// to ctx and the table.
func (t Table[D]) Scope(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx).Model(new(D))
}
