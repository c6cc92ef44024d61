package handler

// --- Request types for the admin CRUD endpoints ---

type categoryRequest struct {
	Name        string `json:"name"           validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	MainID      int    `json:"mainCategoryId"`
}

type mainCategoryRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type productRequest struct {
	Name             string            `json:"name"       validate:"required"`
	Price            float64           `json:"price"      validate:"required,gt=0"`
	ImageURL         string            `json:"imageUrl"`
	CategoryID       int               `json:"categoryId" validate:"required"`
	Description      string            `json:"description"`
	RequiresShipping bool              `json:"requiresShipping"`
	WeightKg         float64           `json:"weightKg"`
	Color            string            `json:"color"`
	LengthCm         float64           `json:"lengthCm"`
	WidthCm          float64           `json:"widthCm"`
	HeightCm         float64           `json:"heightCm"`
	Badges           []string          `json:"badges"`
	Rating           float64           `json:"rating"  validate:"gte=0,lte=5"`
	Reviews          int               `json:"reviews"`
	InStock          bool              `json:"inStock"`
	Specs            map[string]string `json:"specs"`
}

// appointmentRequest carries the contact/appointment form. Bound from JSON
// or form-data; an optional report file rides along as multipart.
type appointmentRequest struct {
	ParentName    string `json:"parentName"    form:"parentName"    validate:"required"`
	ChildName     string `json:"childName"     form:"childName"`
	ChildAge      int    `json:"childAge"      form:"childAge"`
	ContactEmail  string `json:"contactEmail"  form:"contactEmail"  validate:"required,email"`
	ContactPhone  string `json:"contactPhone"  form:"contactPhone"  validate:"required"`
	PreferredDate string `json:"preferredDate" form:"preferredDate"`
	PreferredTime string `json:"preferredTime" form:"preferredTime"`
	Notes         string `json:"notes"         form:"notes"`
	SessionMode   string `json:"sessionMode"   form:"sessionMode"`
	Condition     string `json:"condition"     form:"condition"`
	DoctorName    string `json:"doctorName"    form:"doctorName"`
}
