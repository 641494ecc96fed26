package order

import (
	"fmt"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// Category classifies the contents of a package. Senders pick it on the
// order form; it only informs couriers, no routing depends on it.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota
	// CategoryDocuments covers paper mail and printed documents.
	CategoryDocuments
	// CategoryFood covers meals and groceries.
	CategoryFood
	// CategoryDevices covers electronics and appliances.
	// It is the default when the sender does not pick a category.
	CategoryDevices
	// CategoryOther covers everything else.
	CategoryOther
)

func getCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryDocuments: "documents",
		CategoryFood:      "food",
		CategoryDevices:   "devices",
		CategoryOther:     "other",
	}
}

// CategoryFromString parses the persistence representation of a category.
// An empty string resolves to the default category.
func CategoryFromString(s string) (Category, error) {
	if s == "" {
		return CategoryDevices, nil
	}
	for category, str := range getCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category is invalid",
		fmt.Errorf("%q is not a valid category", s),
	)
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the persistence name of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// Nature describes how a package must be handled in transit.
type Nature int

const (
	// NatureUnknown represents an invalid or undefined nature.
	NatureUnknown Nature = iota
	// NatureStandard needs no special handling.
	// It is the default when the sender does not pick a nature.
	NatureStandard
	// NatureFragile must not be dropped or stacked.
	NatureFragile
	// NaturePerishable must be delivered without delay.
	NaturePerishable
)

func getNatureStrings() map[Nature]string {
	//nolint:exhaustive // NatureUnknown is intentionally excluded as it's invalid
	return map[Nature]string{
		NatureStandard:   "standard",
		NatureFragile:    "fragile",
		NaturePerishable: "perishable",
	}
}

// NatureFromString parses the persistence representation of a nature.
// An empty string resolves to the default nature.
func NatureFromString(s string) (Nature, error) {
	if s == "" {
		return NatureStandard, nil
	}
	for nature, str := range getNatureStrings() {
		if str == s {
			return nature, nil
		}
	}
	return NatureUnknown, errs.NewValueIsInvalidErrorWithCause(
		"nature is invalid",
		fmt.Errorf("%q is not a valid nature", s),
	)
}

// Validate checks if the Nature value is valid.
func (n Nature) Validate() error {
	if _, ok := getNatureStrings()[n]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("nature is invalid", fmt.Errorf("%d is not a valid nature", n))
	}
	return nil
}

// String returns the persistence name of the nature.
func (n Nature) String() string {
	if str, ok := getNatureStrings()[n]; ok {
		return str
	}
	return "unknown"
}

// Package is a value object describing what is being shipped.
// Label and description are free text and may be empty.
type Package struct {
	category    Category
	nature      Nature
	label       string
	description string
}

// NewPackage creates a Package. Zero category and nature values fall back
// to the platform defaults so the order form can leave them blank.
func NewPackage(category Category, nature Nature, label string, description string) (Package, error) {
	if category == CategoryUnknown {
		category = CategoryDevices
	}
	if nature == NatureUnknown {
		nature = NatureStandard
	}

	if err := category.Validate(); err != nil {
		return Package{}, err
	}
	if err := nature.Validate(); err != nil {
		return Package{}, err
	}

	return Package{
		category:    category,
		nature:      nature,
		label:       label,
		description: description,
	}, nil
}

// Category returns the package category.
func (p Package) Category() Category {
	return p.category
}

// Nature returns the handling nature.
func (p Package) Nature() Nature {
	return p.nature
}

// Label returns the short human label of the package.
func (p Package) Label() string {
	return p.label
}

// Description returns the free-form description.
func (p Package) Description() string {
	return p.description
}
