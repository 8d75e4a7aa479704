package model

// Country is a geo-resolved country.
type Country struct {
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// Subdivision is a region inside a country (state, province).
type Subdivision struct {
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// Geo is the request geo metadata supplied by the hosting platform.
// Every part is optional.
type Geo struct {
	City        string       `json:"city,omitempty"`
	Country     *Country     `json:"country,omitempty"`
	Subdivision *Subdivision `json:"subdivision,omitempty"`
	Timezone    string       `json:"timezone,omitempty"`
	Latitude    float64      `json:"latitude,omitempty"`
	Longitude   float64      `json:"longitude,omitempty"`
}

// CountryName returns the country name, or "" when unknown.
func (g *Geo) CountryName() string {
	if g == nil || g.Country == nil {
		return ""
	}
	return g.Country.Name
}
