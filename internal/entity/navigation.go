package entity

// Navigation is the redirect controller's verdict for one page load. An empty
// Redirect means the client is already where it belongs. Provisional marks a
// hint-based destination handed out while the profile is still unresolved.
type Navigation struct {
	Profile     Profile `json:"profile"`
	Redirect    string  `json:"redirect,omitempty"`
	Provisional bool    `json:"provisional,omitempty"`
	SignedOut   bool    `json:"signed_out,omitempty"`
}
