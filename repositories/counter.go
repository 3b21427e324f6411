package repositories

import (
	"github.com/teamtasker/models"
	"github.com/teamtasker/utils"
	"gorm.io/gorm"
)

// CounterRepository hands out sequential entity IDs
type CounterRepository struct{}

// NewCounterRepository creates a new counter repository instance
func NewCounterRepository() *CounterRepository {
	return &CounterRepository{}
}

// NextID reserves the next sequential ID for a prefix within tx. The
// UPDATE locks the counter row for the rest of the transaction, so two
// concurrent creators cannot be handed the same number. Must be called
// inside the same transaction that inserts the entity.
func (r *CounterRepository) NextID(tx *gorm.DB, prefix string) (string, error) {
	res := tx.Model(&models.Counter{}).
		Where("prefix = ?", prefix).
		UpdateColumn("value", gorm.Expr("value + 1"))
	if res.Error != nil {
		return "", res.Error
	}

	if res.RowsAffected == 0 {
		// First entity of this prefix
		counter := models.Counter{Prefix: prefix, Value: 1}
		if err := tx.Create(&counter).Error; err != nil {
			return "", err
		}
		return utils.FormatID(prefix, 1), nil
	}

	var counter models.Counter
	if err := tx.First(&counter, "prefix = ?", prefix).Error; err != nil {
		return "", err
	}
	return utils.FormatID(prefix, counter.Value), nil
}
