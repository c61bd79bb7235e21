package catalog

import "errors"

var (
	ErrMaterialNotFound = errors.New("material not found")
	ErrCategoryNotFound = errors.New("category not found")
)
