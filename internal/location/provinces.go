package location

import "sort"

// Static province → city reference table for Sri Lanka. Forms that do not
// hit the /provinces endpoint read this directly; the API client also falls
// back to it when that endpoint is unreachable.
var provinceCities = map[string][]string{
	"Western Province": {
		"Colombo", "Dehiwala-Mount Lavinia", "Moratuwa", "Sri Jayawardenepura Kotte",
		"Negombo", "Kalutara", "Panadura", "Gampaha", "Wattala", "Ja-Ela",
	},
	"Central Province": {
		"Kandy", "Matale", "Nuwara Eliya", "Dambulla", "Gampola", "Hatton", "Nawalapitiya",
	},
	"Southern Province": {
		"Galle", "Matara", "Hambantota", "Tangalle", "Weligama", "Ambalangoda", "Mirissa",
	},
	"Northern Province": {
		"Jaffna", "Vavuniya", "Mannar", "Kilinochchi", "Mullaitivu", "Point Pedro",
	},
	"Eastern Province": {
		"Trincomalee", "Batticaloa", "Ampara", "Kalmunai", "Eravur", "Valaichchenai",
	},
	"North Western Province": {
		"Kurunegala", "Puttalam", "Chilaw", "Kuliyapitiya", "Wennappuwa",
	},
	"North Central Province": {
		"Anuradhapura", "Polonnaruwa", "Kekirawa", "Medawachchiya",
	},
	"Uva Province": {
		"Badulla", "Monaragala", "Bandarawela", "Ella", "Haputale", "Welimada",
	},
	"Sabaragamuwa Province": {
		"Ratnapura", "Kegalle", "Balangoda", "Embilipitiya", "Mawanella",
	},
}

// Provinces returns the nine provinces in stable alphabetical order
func Provinces() []string {
	names := make([]string, 0, len(provinceCities))
	for name := range provinceCities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cities returns the fixed city list for a province, or nil for an unknown
// province (the dependent select stays empty).
func Cities(province string) []string {
	cities, ok := provinceCities[province]
	if !ok {
		return nil
	}
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

// ValidPair reports whether city belongs to the selected province
func ValidPair(province, city string) bool {
	for _, c := range provinceCities[province] {
		if c == city {
			return true
		}
	}
	return false
}

// Table returns a copy of the full mapping, in the same shape the
// /provinces endpoint serves it.
func Table() map[string][]string {
	out := make(map[string][]string, len(provinceCities))
	for name, cities := range provinceCities {
		cs := make([]string, len(cities))
		copy(cs, cities)
		out[name] = cs
	}
	return out
}
