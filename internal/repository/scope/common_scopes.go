package scope

import "gorm.io/gorm"

// OrderByCreatedDesc sorts newest first. Rows inserted in the same
// instant fall back to the higher id.
func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}
