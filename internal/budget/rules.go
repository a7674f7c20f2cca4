package budget

import "strings"

// CategoryOther catches every expense no rule claims.
const CategoryOther = "Other"

// rule maps description keywords to a category. Rules are evaluated in
// order and the first match wins, so the ordering below is a contract,
// not an accident.
type rule struct {
	category string
	keywords []string
}

var rules = []rule{
	{"Fuel", []string{"fuel", "gas", "petrol", "diesel"}},
	{"Meals", []string{"meal", "lunch", "dinner", "breakfast", "coffee", "food"}},
	{"Phone/Data", []string{"phone", "data", "mobile", "cell", "sim"}},
	{"Parking & Tolls", []string{"parking", "toll"}},
	{"Vehicle Maintenance", []string{"oil change", "tire", "tyre", "repair", "maintenance", "service"}},
	{"Insurance & Licensing", []string{"insurance", "license", "licence", "permit", "registration"}},
	{"Supplies & Equipment", []string{"supplies", "supply", "equipment", "tool", "material", "hardware"}},
}

// categorize assigns a description to exactly one category by
// case-insensitive keyword match.
func categorize(description string) string {
	desc := strings.ToLower(description)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(desc, kw) {
				return r.category
			}
		}
	}

	return CategoryOther
}

// categoryOrder returns every category name in rule order, Other last.
func categoryOrder() []string {
	order := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		order = append(order, r.category)
	}

	return append(order, CategoryOther)
}
