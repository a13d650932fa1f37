package dbutil

import (
	"gorm.io/gorm"
)

// ScanAll runs a raw query and scans every row into a T. The result is
// never nil, so it marshals as [] when there are no rows.
func ScanAll[T any](db *gorm.DB, query string, args ...interface{}) ([]T, error) {
	items := make([]T, 0)
	if err := db.Raw(query, args...).Scan(&items).Error; err != nil {
		return nil, WrapError(err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// ScanOne runs a raw query expected to produce a single value or row.
func ScanOne[T any](db *gorm.DB, query string, args ...interface{}) (T, error) {
	var item T
	if err := db.Raw(query, args...).Scan(&item).Error; err != nil {
		return item, WrapError(err)
	}
	return item, nil
}
