package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Address is a value object representing a structured postal address.
// It is immutable - all operations return new Address instances.
// It is embedded into entities as a jsonb column, not a separate table.
type Address struct {
	country      string
	region       string
	city         string
	zipCode      string
	addressLine1 string
	addressLine2 string
}

// AddressOption is a functional option for configuring Address
type AddressOption func(*Address)

// WithAddressLine2 sets the optional second address line
func WithAddressLine2(line string) AddressOption {
	return func(a *Address) {
		a.addressLine2 = strings.TrimSpace(line)
	}
}

// NewAddress creates a new Address. Country, region, city, zip code and the
// first address line are required; the second address line is optional.
func NewAddress(country, region, city, zipCode, addressLine1 string, opts ...AddressOption) (Address, error) {
	addr := Address{
		country:      strings.TrimSpace(country),
		region:       strings.TrimSpace(region),
		city:         strings.TrimSpace(city),
		zipCode:      strings.TrimSpace(zipCode),
		addressLine1: strings.TrimSpace(addressLine1),
	}

	for _, opt := range opts {
		opt(&addr)
	}

	if addr.country == "" {
		return Address{}, fmt.Errorf("country cannot be empty")
	}
	if addr.region == "" {
		return Address{}, fmt.Errorf("region cannot be empty")
	}
	if addr.city == "" {
		return Address{}, fmt.Errorf("city cannot be empty")
	}
	if addr.zipCode == "" {
		return Address{}, fmt.Errorf("zip code cannot be empty")
	}
	if addr.addressLine1 == "" {
		return Address{}, fmt.Errorf("address line 1 cannot be empty")
	}

	return addr, nil
}

// MustNewAddress creates a new Address, panics on error
func MustNewAddress(country, region, city, zipCode, addressLine1 string, opts ...AddressOption) Address {
	addr, err := NewAddress(country, region, city, zipCode, addressLine1, opts...)
	if err != nil {
		panic(err)
	}
	return addr
}

// Country returns the country
func (a Address) Country() string {
	return a.country
}

// Region returns the region
func (a Address) Region() string {
	return a.region
}

// City returns the city
func (a Address) City() string {
	return a.city
}

// ZipCode returns the zip code
func (a Address) ZipCode() string {
	return a.zipCode
}

// AddressLine1 returns the first address line
func (a Address) AddressLine1() string {
	return a.addressLine1
}

// AddressLine2 returns the second address line, empty when unset
func (a Address) AddressLine2() string {
	return a.addressLine2
}

// IsEmpty returns true if all fields are blank
func (a Address) IsEmpty() bool {
	return a.country == "" && a.region == "" && a.city == "" &&
		a.zipCode == "" && a.addressLine1 == "" && a.addressLine2 == ""
}

// String returns the formatted single-line address
func (a Address) String() string {
	if a.IsEmpty() {
		return ""
	}

	parts := make([]string, 0, 6)
	for _, p := range []string{a.addressLine1, a.addressLine2, a.zipCode, a.city, a.region, a.country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Equals returns true if both addresses are equal
func (a Address) Equals(other Address) bool {
	return a == other
}

// addressJSON mirrors the stored jsonb shape
type addressJSON struct {
	Country      string `json:"country"`
	Region       string `json:"region"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		Country:      a.country,
		Region:       a.region,
		City:         a.city,
		ZipCode:      a.zipCode,
		AddressLine1: a.addressLine1,
		AddressLine2: a.addressLine2,
	})
}

// UnmarshalJSON implements json.Unmarshaler. It performs no validation so that
// rows written before a rule change can still be read back.
func (a *Address) UnmarshalJSON(data []byte) error {
	var aux addressJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.country = aux.Country
	a.region = aux.Region
	a.city = aux.City
	a.zipCode = aux.ZipCode
	a.addressLine1 = aux.AddressLine1
	a.addressLine2 = aux.AddressLine2
	return nil
}

// Value implements driver.Valuer for jsonb storage
func (a Address) Value() (driver.Value, error) {
	if a.IsEmpty() {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for jsonb retrieval
func (a *Address) Scan(value interface{}) error {
	if value == nil {
		*a = Address{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for Address: %T", value)
	}

	return json.Unmarshal(data, a)
}
