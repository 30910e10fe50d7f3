package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormStore is a Gateway backed by a relational database through GORM.
type GormStore[T any, PT Keyed[T]] struct {
	DB *gorm.DB
}

func NewGormStore[T any, PT Keyed[T]](db *gorm.DB) *GormStore[T, PT] {
	return &GormStore[T, PT]{DB: db}
}

func (s *GormStore[T, PT]) Create(ctx context.Context, rec *T) error {
	if err := s.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create: %w", translate(err))
	}
	return nil
}

func (s *GormStore[T, PT]) GetByID(ctx context.Context, id uint) (*T, error) {
	var rec T
	if err := s.DB.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, fmt.Errorf("get %d: %w", id, translate(err))
	}
	return &rec, nil
}

func (s *GormStore[T, PT]) ListAll(ctx context.Context) ([]T, error) {
	recs := make([]T, 0)
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list: %w", translate(err))
	}
	return recs, nil
}

func (s *GormStore[T, PT]) Update(ctx context.Context, id uint, rec *T) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		PT(rec).SetKey(id)
		return tx.Save(rec).Error
	})
	if err != nil {
		return fmt.Errorf("update %d: %w", id, translate(err))
	}
	return nil
}

func (s *GormStore[T, PT]) PartialUpdate(ctx context.Context, id uint, apply func(*T)) (*T, error) {
	var rec T
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			return err
		}
		apply(&rec)
		PT(&rec).SetKey(id)
		return tx.Save(&rec).Error
	})
	if err != nil {
		return nil, fmt.Errorf("partial update %d: %w", id, translate(err))
	}
	return &rec, nil
}

func (s *GormStore[T, PT]) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete %d: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %d: %w", id, ErrNotFound)
	}
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}
