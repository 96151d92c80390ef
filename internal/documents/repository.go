// Package documents is the document store boundary: the settings singleton,
// product documents, and the patch-and-commit write used by the fetch action.
package documents

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"woosync/internal/models"
)

var ErrDocumentNotFound = errors.New("document not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetSettings returns the settings singleton, or nil when it has not been
// created yet.
func (r *Repository) GetSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := r.db.WithContext(ctx).
		Where("document_type = ?", models.SettingsDocumentType).
		Order("id").
		First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings creates or replaces the settings singleton.
func (r *Repository) SaveSettings(ctx context.Context, settings *models.Settings) error {
	settings.ID = models.SettingsDocumentID
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(settings).Error
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *Repository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product %s: %w", id, err)
	}
	return &product, nil
}

// ListProducts returns one page of product documents, newest first.
func (r *Repository) ListProducts(ctx context.Context, page, limit int) ([]models.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := r.db.WithContext(ctx).Model(&models.Product{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// SetWooID changes the editor-owned product id of a document.
func (r *Repository) SetWooID(ctx context.Context, id string, wooID int64) error {
	result := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Update("woo_id", wooID)
	if result.Error != nil {
		return fmt.Errorf("failed to update product %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// PatchAndCommit overwrites every synchronized field of one document in a
// single transaction. Zero values are written too; there is no merge.
func (r *Repository) PatchAndCommit(ctx context.Context, documentID string, fields models.ProductFields) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Product{}).Where("id = ?", documentID).Updates(fields.Columns())
		if result.Error != nil {
			return fmt.Errorf("failed to patch document %s: %w", documentID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrDocumentNotFound
		}
		return nil
	})
}
