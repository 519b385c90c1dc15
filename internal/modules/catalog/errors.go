package catalog

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid_request")
	ErrServiceNotFound  = errors.New("service_not_found")
	ErrCategoryNotFound = errors.New("category_not_found")
	ErrCategoryExists   = errors.New("category_exists")
	ErrForbidden        = errors.New("forbidden")
)
