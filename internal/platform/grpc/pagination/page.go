// Package pagination normalizes page size requests for list RPCs.
package pagination

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int32, cfg PageSizeConfig) int {
	pageSize := int(value)
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// FirstPage returns at most pageSize leading items, preserving order.
func FirstPage[T any](items []T, pageSize int) []T {
	if pageSize < 0 {
		pageSize = 0
	}
	if len(items) <= pageSize {
		return items
	}
	return items[:pageSize]
}
