package domain

// Principal is the authenticated user record returned by the identity
// endpoint. The upstream contract does not pin its fields; anything beyond
// the common trio below is ignored.
type Principal struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
