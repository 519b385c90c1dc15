package catalog

type CreateServiceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	CategoryID  int64   `json:"category_id" binding:"required,gt=0"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
