package models

// Country is a shared lookup row; persons reference it by CountryID.
type Country struct {
	ID     uint     `gorm:"primaryKey" json:"id"`
	Name   string   `gorm:"size:100;uniqueIndex;not null" json:"name"`
	People []Person `gorm:"foreignKey:CountryID" json:"-"`
}

// TableName explicitly sets the table name for GORM.
func (Country) TableName() string {
	return "countries"
}

// CountryAddRequest is the input for adding a country. A nil Name is rejected.
type CountryAddRequest struct {
	Name *string `json:"name"`
}

// ToCountry converts the request to an entity. Name must be non-nil.
func (r CountryAddRequest) ToCountry() Country {
	var name string
	if r.Name != nil {
		name = *r.Name
	}
	return Country{Name: name}
}

// CountryResponse is the read-only view of a Country.
type CountryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ToCountryResponse maps an entity to its projection.
func ToCountryResponse(c Country) CountryResponse {
	return CountryResponse{ID: c.ID, Name: c.Name}
}
