package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"spread/internal/models"
)

// refColumns maps reference fields to their database columns.
var refColumns = map[models.RefField]string{
	models.RefOwner:    "owner_id",
	models.RefAuthor:   "author_id",
	models.RefPost:     "post_id",
	models.RefNotebook: "notebook_id",
	models.RefSection:  "section_id",
	models.RefFrom:     "from_id",
	models.RefTo:       "to_id",
}

// GormStore persists entities in Postgres. Reference sets and embedded
// child lists are JSONB columns, so every parent document is a single
// row and Update is a row-locked read-modify-write.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, e models.Entity) error {
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return wrapDBErr(err)
	}
	return nil
}

func (s *GormStore) Get(ctx context.Context, kind models.Kind, id uint) (models.Entity, error) {
	e, err := prototype(kind)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).First(e, id).Error; err != nil {
		return nil, wrapDBErr(err)
	}
	return e, nil
}

func (s *GormStore) Update(ctx context.Context, kind models.Kind, id uint, mutate func(models.Entity) error) (models.Entity, error) {
	e, err := prototype(kind)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(e, id).Error; err != nil {
			return wrapDBErr(err)
		}
		if err := mutate(e); err != nil {
			return err
		}
		if err := tx.Save(e).Error; err != nil {
			return wrapDBErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *GormStore) Delete(ctx context.Context, kind models.Kind, id uint) error {
	e, err := prototype(kind)
	if err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Delete(e, id)
	if res.Error != nil {
		return wrapDBErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListByRef(ctx context.Context, kind models.Kind, field models.RefField, id uint) ([]models.Entity, error) {
	col, ok := refColumns[field]
	if !ok {
		return nil, fmt.Errorf("store: unknown reference field %q", field)
	}
	return s.list(ctx, kind, col+" = ?", id)
}

func (s *GormStore) ListRefSetHolders(ctx context.Context, kind models.Kind, field models.SetField, targetID uint) ([]models.Entity, error) {
	// JSONB containment; set columns are named after the field.
	return s.list(ctx, kind, string(field)+" @> ?", fmt.Sprintf("[%d]", targetID))
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, wrapDBErr(err)
	}
	return &user, nil
}

// list runs a filtered query for one kind and returns the rows as
// entities. gorm needs a concrete slice type, so it is built by
// reflection from the kind's prototype.
func (s *GormStore) list(ctx context.Context, kind models.Kind, cond string, arg any) ([]models.Entity, error) {
	proto, err := prototype(kind)
	if err != nil {
		return nil, err
	}
	slicePtr := reflect.New(reflect.SliceOf(reflect.TypeOf(proto)))
	err = s.db.WithContext(ctx).
		Model(proto).
		Where(cond, arg).
		Order("id").
		Find(slicePtr.Interface()).Error
	if err != nil {
		return nil, wrapDBErr(err)
	}
	sl := slicePtr.Elem()
	out := make([]models.Entity, sl.Len())
	for i := 0; i < sl.Len(); i++ {
		out[i] = sl.Index(i).Interface().(models.Entity)
	}
	return out, nil
}

func wrapDBErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
