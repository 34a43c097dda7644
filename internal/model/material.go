package model

import "fmt"

// MaterialKind discriminates which catalog a material reference points into.
type MaterialKind string

const (
	KindYarn       MaterialKind = "yarn"
	KindSafetyEyes MaterialKind = "safety_eyes"
	KindStuffing   MaterialKind = "stuffing"
)

func (k MaterialKind) Valid() bool {
	switch k {
	case KindYarn, KindSafetyEyes, KindStuffing:
		return true
	}
	return false
}

func ParseMaterialKind(s string) (MaterialKind, error) {
	k := MaterialKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown material kind %q", s)
	}
	return k, nil
}

// Yarn is keyed naturally by brand + fiber type + weight + color.
type Yarn struct {
	BaseModel
	Brand         string  `db:"brand" json:"brand"`
	FiberType     string  `db:"fiber_type" json:"fiber_type"`
	Weight        string  `db:"weight" json:"weight"`
	Color         string  `db:"color" json:"color"`
	SkeinsOwned   float64 `db:"skeins_owned" json:"skeins_owned"`
	PricePerSkein float64 `db:"price_per_skein" json:"price_per_skein"`
}

// SafetyEyes is keyed by size + color + shape. Size is fractional (mm), so
// key matching uses a tolerance rather than exact equality.
type SafetyEyes struct {
	BaseModel
	SizeMM       float64 `db:"size_mm" json:"size_mm"`
	Color        string  `db:"color" json:"color"`
	Shape        string  `db:"shape" json:"shape"`
	PairsOwned   float64 `db:"pairs_owned" json:"pairs_owned"`
	PricePerPair float64 `db:"price_per_pair" json:"price_per_pair"`
}

// Stuffing is keyed by brand + fill type.
type Stuffing struct {
	BaseModel
	Brand         string  `db:"brand" json:"brand"`
	FillType      string  `db:"fill_type" json:"fill_type"`
	OuncesOwned   float64 `db:"ounces_owned" json:"ounces_owned"`
	PricePerOunce float64 `db:"price_per_ounce" json:"price_per_ounce"`
}
