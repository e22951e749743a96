// Package measurement provides unit-of-measure canonicalization for
// comparing ingredient quantities across different unit spellings.
package measurement

import "strings"

// Dimension classifies a unit onto one of the comparable scales.
type Dimension string

const (
	DimensionMass   Dimension = "mass"
	DimensionVolume Dimension = "volume"
	DimensionCount  Dimension = "count"
)

// Unit represents a unit of measure
type Unit string

const (
	// Mass units
	UnitGram     Unit = "g"
	UnitKilogram Unit = "kg"
	UnitOunce    Unit = "oz"
	UnitPound    Unit = "lb"

	// Volume units
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"
	UnitTeaspoon   Unit = "tsp"
	UnitTablespoon Unit = "tbsp"
	UnitCup        Unit = "cup"
	UnitPint       Unit = "pint"
	UnitQuart      Unit = "quart"
	UnitGallon     Unit = "gallon"

	// Count units. Each packaging form is its own bucket: a "can" and a
	// "bottle" are not interchangeable counts.
	UnitPiece     Unit = "piece"
	UnitPackage   Unit = "package"
	UnitCan       Unit = "can"
	UnitBottle    Unit = "bottle"
	UnitBag       Unit = "bag"
	UnitBox       Unit = "box"
	UnitContainer Unit = "container"
)

// Quantity is a normalized (value, dimension) pair. Mass normalizes to
// grams, volume to milliliters, count keeps the raw value.
type Quantity struct {
	Value     float64
	Dimension Dimension
	// Bucket distinguishes count units from one another; empty for mass
	// and volume.
	Bucket Unit
	// Known is false when the source unit string was unrecognized and
	// fell back to the count dimension.
	Known bool
}

// massFactors converts mass units to grams.
var massFactors = map[Unit]float64{
	UnitGram:     1,
	UnitKilogram: 1000,
	UnitOunce:    28.3495,
	UnitPound:    453.592,
}

// volumeFactors converts volume units to milliliters.
var volumeFactors = map[Unit]float64{
	UnitMilliliter: 1,
	UnitLiter:      1000,
	UnitTeaspoon:   4.92892,
	UnitTablespoon: 14.7868,
	UnitCup:        236.588,
	UnitPint:       473.176,
	UnitQuart:      946.353,
	UnitGallon:     3785.41,
}

var countUnits = map[Unit]struct{}{
	UnitPiece:     {},
	UnitPackage:   {},
	UnitCan:       {},
	UnitBottle:    {},
	UnitBag:       {},
	UnitBox:       {},
	UnitContainer: {},
}

// unitAliases maps common alternate spellings onto canonical units.
var unitAliases = map[string]Unit{
	"gram":        UnitGram,
	"grams":       UnitGram,
	"kilogram":    UnitKilogram,
	"kilograms":   UnitKilogram,
	"kgs":         UnitKilogram,
	"ounce":       UnitOunce,
	"ounces":      UnitOunce,
	"pound":       UnitPound,
	"pounds":      UnitPound,
	"lbs":         UnitPound,
	"milliliter":  UnitMilliliter,
	"milliliters": UnitMilliliter,
	"liter":       UnitLiter,
	"liters":      UnitLiter,
	"litre":       UnitLiter,
	"litres":      UnitLiter,
	"teaspoon":    UnitTeaspoon,
	"teaspoons":   UnitTeaspoon,
	"tablespoon":  UnitTablespoon,
	"tablespoons": UnitTablespoon,
	"cups":        UnitCup,
	"pints":       UnitPint,
	"pt":          UnitPint,
	"quarts":      UnitQuart,
	"qt":          UnitQuart,
	"gallons":     UnitGallon,
	"gal":         UnitGallon,
	"pieces":      UnitPiece,
	"pc":          UnitPiece,
	"pcs":         UnitPiece,
	"packages":    UnitPackage,
	"pkg":         UnitPackage,
	"cans":        UnitCan,
	"bottles":     UnitBottle,
	"bags":        UnitBag,
	"boxes":       UnitBox,
	"containers":  UnitContainer,
}

// Parse canonicalizes a raw unit string. The second return value reports
// whether the unit was recognized.
func Parse(raw string) (Unit, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return UnitPiece, false
	}

	u := Unit(s)
	if _, ok := massFactors[u]; ok {
		return u, true
	}
	if _, ok := volumeFactors[u]; ok {
		return u, true
	}
	if _, ok := countUnits[u]; ok {
		return u, true
	}
	if alias, ok := unitAliases[s]; ok {
		return alias, true
	}

	return UnitPiece, false
}

// Normalize converts a (quantity, unit) pair onto a comparable scale.
// Unrecognized units fall back to the count dimension with the value kept
// as-is; Normalize never fails.
func Normalize(quantity float64, rawUnit string) Quantity {
	unit, known := Parse(rawUnit)
	if !known {
		return Quantity{Value: quantity, Dimension: DimensionCount, Bucket: unit, Known: false}
	}

	if factor, ok := massFactors[unit]; ok {
		return Quantity{Value: quantity * factor, Dimension: DimensionMass, Known: true}
	}
	if factor, ok := volumeFactors[unit]; ok {
		return Quantity{Value: quantity * factor, Dimension: DimensionVolume, Known: true}
	}

	return Quantity{Value: quantity, Dimension: DimensionCount, Bucket: unit, Known: true}
}

// Comparable reports whether two normalized quantities live on the same
// scale. Count quantities additionally require the same bucket: "2 cans"
// and "3 bottles" are not comparable.
func Comparable(a, b Quantity) bool {
	if a.Dimension != b.Dimension {
		return false
	}
	if a.Dimension == DimensionCount {
		return a.Bucket == b.Bucket
	}
	return true
}
