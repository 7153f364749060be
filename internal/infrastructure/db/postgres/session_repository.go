package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

type sessionRepository struct {
	db *gorm.DB
}

func (r *sessionRepository) List(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	if err := r.db.WithContext(ctx).Order("date, start_time").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) FindByID(ctx context.Context, id int64) (*domain.Session, error) {
	var session domain.Session
	if err := r.db.WithContext(ctx).First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Session, error) {
	var sessions []domain.Session
	if len(ids) == 0 {
		return sessions, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Session, error) {
	var sessions []domain.Session
	err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Order("date").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) ListByDateRange(ctx context.Context, from, to domain.Date) ([]domain.Session, error) {
	var sessions []domain.Session
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepository) Update(ctx context.Context, s *domain.Session) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sessionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Session{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
