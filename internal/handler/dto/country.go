package dto

import "github.com/planetdemo/planetdemo/internal/model"

// CountryKey is the response field naming the caller's country.
const CountryKey = "You are in"

// ToCountryResponse builds the geo echo payload.
// The key is left out when the country is unknown, so the body is {}.
func ToCountryResponse(geo *model.Geo) map[string]string {
	response := make(map[string]string, 1)
	if name := geo.CountryName(); name != "" {
		response[CountryKey] = name
	}
	return response
}
