package models

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownField is returned when a search or sort field name does not name
// a PersonResponse field.
var ErrUnknownField = errors.New("unknown field")

// PersonField is a searchable and sortable PersonResponse field.
type PersonField int

const (
	FieldID PersonField = iota + 1
	FieldName
	FieldEmail
	FieldPhone
	FieldDateOfBirth
	FieldCountryID
	FieldCountry
	FieldAddress
	FieldAge
)

// DateLayout is the string form of dates in search and exports.
const DateLayout = "2006-01-02"

type fieldSpec struct {
	name    string
	aliases []string
	text    func(PersonResponse) (string, bool)
	compare func(a, b PersonResponse) int
}

var fieldSpecs = map[PersonField]fieldSpec{
	FieldID: {
		name:    "PersonId",
		aliases: []string{"id", "person_id"},
		text:    func(p PersonResponse) (string, bool) { return strconv.FormatUint(uint64(p.ID), 10), true },
		compare: func(a, b PersonResponse) int { return cmp.Compare(a.ID, b.ID) },
	},
	FieldName: {
		name:    "PersonName",
		aliases: []string{"name", "person_name"},
		text:    func(p PersonResponse) (string, bool) { return p.Name, true },
		compare: func(a, b PersonResponse) int { return compareText(a.Name, b.Name) },
	},
	FieldEmail: {
		name:    "Email",
		text:    func(p PersonResponse) (string, bool) { return p.Email, true },
		compare: func(a, b PersonResponse) int { return compareText(a.Email, b.Email) },
	},
	FieldPhone: {
		name:    "Phone",
		text:    func(p PersonResponse) (string, bool) { return p.Phone, true },
		compare: func(a, b PersonResponse) int { return compareText(a.Phone, b.Phone) },
	},
	FieldDateOfBirth: {
		name:    "DateOfBirth",
		aliases: []string{"date_of_birth", "dob"},
		text: func(p PersonResponse) (string, bool) {
			if p.DateOfBirth == nil {
				return "", false
			}
			return p.DateOfBirth.Format(DateLayout), true
		},
		compare: func(a, b PersonResponse) int { return compareTime(a.DateOfBirth, b.DateOfBirth) },
	},
	FieldCountryID: {
		name:    "CountryId",
		aliases: []string{"country_id"},
		text: func(p PersonResponse) (string, bool) {
			if p.CountryID == nil {
				return "", false
			}
			return strconv.FormatUint(uint64(*p.CountryID), 10), true
		},
		compare: func(a, b PersonResponse) int { return comparePtr(a.CountryID, b.CountryID) },
	},
	FieldCountry: {
		name:    "Country",
		aliases: []string{"country_name"},
		text:    func(p PersonResponse) (string, bool) { return p.Country, p.Country != "" },
		compare: func(a, b PersonResponse) int { return compareText(a.Country, b.Country) },
	},
	FieldAddress: {
		name:    "Address",
		text:    func(p PersonResponse) (string, bool) { return p.Address, true },
		compare: func(a, b PersonResponse) int { return compareText(a.Address, b.Address) },
	},
	FieldAge: {
		name: "Age",
		text: func(p PersonResponse) (string, bool) {
			if p.Age == nil {
				return "", false
			}
			return strconv.Itoa(*p.Age), true
		},
		compare: func(a, b PersonResponse) int { return comparePtr(a.Age, b.Age) },
	},
}

// PersonFields lists every field in declaration order.
func PersonFields() []PersonField {
	return []PersonField{
		FieldID, FieldName, FieldEmail, FieldPhone, FieldDateOfBirth,
		FieldCountryID, FieldCountry, FieldAddress, FieldAge,
	}
}

// ParsePersonField resolves a field by its canonical name or an alias,
// ignoring case.
func ParsePersonField(s string) (PersonField, error) {
	s = strings.TrimSpace(s)
	for _, f := range PersonFields() {
		spec := fieldSpecs[f]
		if strings.EqualFold(spec.name, s) {
			return f, nil
		}
		for _, alias := range spec.aliases {
			if strings.EqualFold(alias, s) {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// String returns the canonical field name.
func (f PersonField) String() string {
	if spec, ok := fieldSpecs[f]; ok {
		return spec.name
	}
	return "PersonField(" + strconv.Itoa(int(f)) + ")"
}

// Text returns the string form of the field. ok is false when the value is
// absent (nil date, country or age).
func (f PersonField) Text(p PersonResponse) (text string, ok bool) {
	return fieldSpecs[f].text(p)
}

// Compare orders two projections by the field. Absent values sort first.
func (f PersonField) Compare(a, b PersonResponse) int {
	return fieldSpecs[f].compare(a, b)
}

// SortOrder is the direction of GetSortedPeople.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ParseSortOrder accepts ASC or DESC in any case; empty means ASC.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ASC":
		return SortAsc, nil
	case "DESC":
		return SortDesc, nil
	default:
		return "", fmt.Errorf("invalid sort order %q", s)
	}
}

// compareText orders case-insensitively, falling back to byte order so that
// only identical strings compare equal.
func compareText(a, b string) int {
	if c := cmp.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

func comparePtr[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}

func compareTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}
