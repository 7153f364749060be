package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

type clientRepository struct {
	db *gorm.DB
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	if err := r.db.WithContext(ctx).Order("id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	var client domain.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Client{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Client{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
