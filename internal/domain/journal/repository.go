package journal

import (
	"context"

	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Migrate creates the journal table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Entry{})
}

func (r *GormRepository) Create(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *GormRepository) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := r.db.WithContext(ctx).Order("seq asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
