package repository

import (
	"context"
	"errors"
	"time"

	"gocamp/models"

	"gorm.io/gorm"
)

type campsiteRepo struct {
	db *gorm.DB
}

func NewCampsiteRepo(db *gorm.DB) CampsiteRepo {
	return &campsiteRepo{db: db}
}

func (r *campsiteRepo) FindByID(ctx context.Context, id uint) (*models.Campsite, error) {
	var campsite models.Campsite
	if err := r.db.WithContext(ctx).First(&campsite, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &campsite, nil
}

func (r *campsiteRepo) ListWindows(ctx context.Context, campsiteID uint) ([]models.UnavailabilityWindow, error) {
	var windows []models.UnavailabilityWindow
	err := r.db.WithContext(ctx).
		Where("campsite_id = ?", campsiteID).
		Order("start_date ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *campsiteRepo) HasWindowOverlap(ctx context.Context, campsiteID uint, start, end time.Time) (bool, error) {
	return windowOverlapExists(r.db.WithContext(ctx), campsiteID, start, end)
}

func (r *campsiteRepo) CreateWindow(ctx context.Context, window *models.UnavailabilityWindow) error {
	return r.db.WithContext(ctx).Create(window).Error
}

func (r *campsiteRepo) DeleteWindow(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.UnavailabilityWindow{}, id).Error
}

func (r *campsiteRepo) FindWindowByID(ctx context.Context, id uint) (*models.UnavailabilityWindow, error) {
	var window models.UnavailabilityWindow
	if err := r.db.WithContext(ctx).First(&window, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &window, nil
}
