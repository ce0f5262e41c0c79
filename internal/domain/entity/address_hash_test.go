package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleComponents() AddressComponents {
	return AddressComponents{
		Route:      "Av. Corrientes",
		Number:     "1234",
		Locality:   "Buenos Aires",
		Region:     "CABA",
		Country:    "Argentina",
		PostalCode: "C1043",
	}
}

func TestUnitHash_Deterministic(t *testing.T) {
	c := sampleComponents()

	first := UnitHash(c, "3", "B")
	second := UnitHash(c, "3", "B")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestUnitHash_CaseAndWhitespaceInsensitive(t *testing.T) {
	lower := sampleComponents()
	upper := AddressComponents{
		Route:    "AV. CORRIENTES",
		Number:   "1234",
		Locality: "BUENOS AIRES",
		Region:   "CABA",
		Country:  "ARGENTINA",
	}

	assert.Equal(t, UnitHash(lower, "3", "b"), UnitHash(upper, "3", "B"))
}

func TestUnitHash_FloorAndApartmentSplitUnits(t *testing.T) {
	c := sampleComponents()

	ground := UnitHash(c, "", "")
	third := UnitHash(c, "3", "B")
	fourth := UnitHash(c, "4", "B")

	assert.NotEqual(t, ground, third)
	assert.NotEqual(t, third, fourth)
}

func TestBuildingHash_SharedAcrossUnits(t *testing.T) {
	c := sampleComponents()

	// Units of the same building agree on the building hash even though
	// their unit hashes differ.
	assert.Equal(t, BuildingHash(c), BuildingHash(c))
	assert.NotEqual(t, UnitHash(c, "3", "B"), BuildingHash(c))
}

func TestBuildingHash_PostalCodeIgnored(t *testing.T) {
	withPostal := sampleComponents()
	withoutPostal := sampleComponents()
	withoutPostal.PostalCode = ""

	assert.Equal(t, BuildingHash(withPostal), BuildingHash(withoutPostal))
}

func TestBuildingHash_DifferentBuildings(t *testing.T) {
	a := sampleComponents()
	b := sampleComponents()
	b.Number = "1236"

	assert.NotEqual(t, BuildingHash(a), BuildingHash(b))
}
