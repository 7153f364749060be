package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

type contactRepository struct {
	db *gorm.DB
}

func (r *contactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	var contacts []domain.Contact
	if err := r.db.WithContext(ctx).Order("id").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) FindByID(ctx context.Context, id int64) (*domain.Contact, error) {
	var contact domain.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Create(ctx context.Context, c *domain.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactRepository) Update(ctx context.Context, c *domain.Contact) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}
