package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// UnitHash derives the deterministic content hash that identifies one
// deliverable unit: the building components plus floor and apartment. Missing
// optional fields hash as empty strings, and the whole string is trimmed and
// lower-cased first, so inputs differing only in case or surrounding
// whitespace collapse to the same identity.
func UnitHash(c AddressComponents, floor, apartment string) string {
	base := fmt.Sprintf("%s %s, %s, %s, %s, %s, %s",
		c.Route, c.Number, c.Locality, c.Region, c.Country, floor, apartment)

	return hashNormalized(base)
}

// BuildingHash derives the content hash of the building alone, omitting
// floor and apartment. Every unit of the same building shares this hash; it
// keys the geocode cache so one building is geocoded at most once.
func BuildingHash(c AddressComponents) string {
	base := fmt.Sprintf("%s %s, %s, %s, %s",
		c.Route, c.Number, c.Locality, c.Region, c.Country)

	return hashNormalized(base)
}

func hashNormalized(s string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(s))))

	return hex.EncodeToString(sum[:])
}
