package domain

// Appointment is a contact/appointment request submitted from the storefront
// form and forwarded to the upstream email sender.
type Appointment struct {
	ParentName    string `json:"parentName"`
	ChildName     string `json:"childName"`
	ChildAge      int    `json:"childAge"`
	ContactEmail  string `json:"contactEmail"`
	ContactPhone  string `json:"contactPhone"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Notes         string `json:"notes"`
	SessionMode   string `json:"sessionMode"`
	Condition     string `json:"condition"`
	DoctorName    string `json:"doctorName"`
}
