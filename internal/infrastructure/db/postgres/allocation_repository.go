package postgres

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

type allocationRepository struct {
	db *gorm.DB
}

func (r *allocationRepository) FindByID(ctx context.Context, id int64) (*domain.Allocation, error) {
	var allocation domain.Allocation
	if err := r.db.WithContext(ctx).First(&allocation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAllocationNotFound
		}
		return nil, err
	}
	return &allocation, nil
}

func (r *allocationRepository) CreateBatch(ctx context.Context, allocations []*domain.Allocation) error {
	return r.db.WithContext(ctx).Create(allocations).Error
}

func (r *allocationRepository) UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&domain.Allocation{}).
		Where("id = ?", id).
		Update("amount", amount)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAllocationNotFound
	}
	return nil
}

func (r *allocationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Allocation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAllocationNotFound
	}
	return nil
}

func (r *allocationRepository) SumAmountByPayment(ctx context.Context, paymentID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Model(&domain.Allocation{}).
		Where("payment_id = ?", paymentID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *allocationRepository) SumAmountByPaymentExcluding(ctx context.Context, paymentID, allocationID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Model(&domain.Allocation{}).
		Where("payment_id = ? AND id <> ?", paymentID, allocationID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *allocationRepository) SumAmountBySession(ctx context.Context, sessionID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Model(&domain.Allocation{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
