package model

import (
	"encoding/json"
	"testing"
)

func TestGeo_CountryName(t *testing.T) {
	tests := []struct {
		name string
		geo  *Geo
		want string
	}{
		{"nil geo", nil, ""},
		{"no country", &Geo{City: "Lisbon"}, ""},
		{"with country", &Geo{Country: &Country{Code: "PT", Name: "Portugal"}}, "Portugal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.geo.CountryName(); got != tt.want {
				t.Errorf("CountryName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlanet_OmitsEmptyDescription(t *testing.T) {
	data, err := json.Marshal(Planet{ID: 1, Name: "name"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"id":1,"name":"name"}` {
		t.Errorf("unexpected JSON: %s", data)
	}
}
