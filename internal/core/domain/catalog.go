package domain

// Category groups products inside a main category.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	MainID      int    `json:"mainCategoryId,omitempty"`
}

// MainCategory is a top-level navigation entry holding its categories.
type MainCategory struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Categories  []Category `json:"categories"`
}

// Product is the storefront catalog item.
type Product struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	Price            float64           `json:"price"`
	ImageURL         string            `json:"imageUrl"`
	CategoryID       int               `json:"categoryId"`
	Description      string            `json:"description"`
	RequiresShipping bool              `json:"requiresShipping"`
	WeightKg         float64           `json:"weightKg,omitempty"`
	Color            string            `json:"color,omitempty"`
	LengthCm         float64           `json:"lengthCm,omitempty"`
	WidthCm          float64           `json:"widthCm,omitempty"`
	HeightCm         float64           `json:"heightCm,omitempty"`
	Badges           []string          `json:"badges"`
	Rating           float64           `json:"rating"`
	Reviews          int               `json:"reviews"`
	InStock          bool              `json:"inStock"`
	Specs            map[string]string `json:"specs"`
}

// Menu is the navigation tree served to the storefront header.
type Menu struct {
	MainCategories []MainCategory `json:"mainCategories"`
}

// Upload is the normalised result of a blob upload.
type Upload struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}
