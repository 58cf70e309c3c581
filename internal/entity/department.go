package entity

import (
	"strings"

	"github.com/gofrs/uuid/v5"
)

type Department struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
}

type CatalogEntry struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Catalog is the fixed set of service departments every student must clear,
// in display order.
var Catalog = []CatalogEntry{
	{Name: "Library", Code: "LIB"},
	{Name: "Computer Science", Code: "CS"},
	{Name: "Engineering", Code: "ENG"},
	{Name: "Business", Code: "BUS"},
	{Name: "Science", Code: "SCI"},
	{Name: "SS&FC", Code: "SSFC"},
	{Name: "Mess", Code: "MESS"},
	{Name: "AV Unit", Code: "AV"},
	{Name: "Bookshop", Code: "BOOK"},
	{Name: "Accounts Office", Code: "ACC"},
}

// SynthCode derives a department code from its name, for home departments that
// have no catalog entry.
func SynthCode(name string) string {
	if len(name) <= 3 {
		return strings.ToUpper(name)
	}

	return strings.ToUpper(name[:3])
}

// TargetDepartments is the set a student must clear: the catalog plus the
// student's home department, appended last unless the catalog already has it.
func TargetDepartments(catalog []CatalogEntry, home string) []CatalogEntry {
	targets := make([]CatalogEntry, 0, len(catalog)+1)

	seen := false

	for _, dept := range catalog {
		if dept.Name == home {
			seen = true
		}

		targets = append(targets, dept)
	}

	if !seen && home != "" {
		targets = append(targets, CatalogEntry{Name: home, Code: SynthCode(home)})
	}

	return targets
}
