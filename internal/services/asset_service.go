package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "networth/internal/errors"
	"networth/internal/models"
)

// assetService handles asset-related business logic.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// CreateAsset records a new asset for the user.
func (s *assetService) CreateAsset(userID uint, name string, value float64, date time.Time, category, description string) (*models.Asset, error) {
	if value <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "value must be positive")
	}
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	asset := &models.Asset{
		UserID:      userID,
		Name:        name,
		Value:       value,
		Date:        date,
		Category:    category,
		Description: description,
	}

	if err := s.db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return asset, nil
}

// GetUserAssets returns all of the user's assets, newest first.
func (s *assetService) GetUserAssets(userID uint) ([]models.Asset, error) {
	var assets []models.Asset
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}

// GetAssetByID returns an asset by ID if it belongs to the user.
func (s *assetService) GetAssetByID(userID, assetID uint) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Where("id = ? AND user_id = ?", assetID, userID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// GetAssetsByCategory returns the user's assets in one category, newest first.
func (s *assetService) GetAssetsByCategory(userID uint, category string) ([]models.Asset, error) {
	var assets []models.Asset
	if err := s.db.Where("user_id = ? AND category = ?", userID, category).Order("date DESC").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}

// UpdateAsset overwrites only the supplied fields of an asset.
func (s *assetService) UpdateAsset(userID, assetID uint, name string, value *float64, date *time.Time, category string, description *string) (*models.Asset, error) {
	asset, err := s.GetAssetByID(userID, assetID)
	if err != nil {
		return nil, err
	}

	if value != nil && *value <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "value must be positive")
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if value != nil {
		updates["value"] = *value
	}
	if date != nil {
		updates["date"] = *date
	}
	if category != "" {
		updates["category"] = category
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(asset).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return asset, nil
}

// DeleteAsset deletes an asset scoped by user.
func (s *assetService) DeleteAsset(userID, assetID uint) error {
	asset, err := s.GetAssetByID(userID, assetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(asset).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetTotalAssetValue sums all of the user's asset values, 0 when empty.
func (s *assetService) GetTotalAssetValue(userID uint) (float64, error) {
	var total float64
	err := s.db.Model(&models.Asset{}).
		Select("COALESCE(SUM(value), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// GetTopAssets returns the user's most valuable assets, largest first.
func (s *assetService) GetTopAssets(userID uint, limit int) ([]TopEntry, error) {
	var assets []models.Asset
	err := s.db.Where("user_id = ?", userID).
		Order("value DESC").
		Limit(clampTopLimit(limit)).
		Find(&assets).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]TopEntry, 0, len(assets))
	for _, asset := range assets {
		entries = append(entries, TopEntry{
			ID:       asset.ID,
			Label:    asset.Name,
			Amount:   asset.Value,
			Category: asset.Category,
			Date:     asset.Date,
		})
	}
	return entries, nil
}
