package types

type Category struct {
	ID          string     `json:"id" validate:"required"`
	Name        string     `json:"name" validate:"required"`
	Slug        string     `json:"slug,omitempty"`
	Description *string    `json:"description,omitempty"`
	Icon        *string    `json:"icon,omitempty"`
	Color       *string    `json:"color,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	ItemCount   int        `json:"item_count"`
	IsActive    bool       `json:"is_active"`
	SortOrder   int        `json:"sort_order"`
	ParentID    *string    `json:"parent_id,omitempty"`
	Children    []Category `json:"children,omitempty"`
}

type PopularCategory struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Icon      *string `json:"icon,omitempty"`
	ItemCount int     `json:"item_count"`
}
