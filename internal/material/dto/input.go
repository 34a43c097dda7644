package dto

import (
	"fmt"

	"github.com/hooknest/craftstock-service/internal/model"
)

// SizeEpsilon is the tolerance used when matching safety-eye sizes. Sizes
// are fractional millimetres, so exact float equality is not part of the
// contract.
const SizeEpsilon = 1e-4

type YarnKey struct {
	Brand     string `json:"brand"`
	FiberType string `json:"fiber_type"`
	Weight    string `json:"weight"`
	Color     string `json:"color"`
}

type SafetyEyesKey struct {
	SizeMM float64 `json:"size_mm"`
	Color  string  `json:"color"`
	Shape  string  `json:"shape"`
}

type StuffingKey struct {
	Brand    string `json:"brand"`
	FillType string `json:"fill_type"`
}

func (k YarnKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.Brand, k.FiberType, k.Weight, k.Color)
}

func (k SafetyEyesKey) String() string {
	return fmt.Sprintf("%gmm/%s/%s", k.SizeMM, k.Color, k.Shape)
}

func (k StuffingKey) String() string {
	return fmt.Sprintf("%s/%s", k.Brand, k.FillType)
}

// MaterialSelector is a discriminated material reference: the kind tag
// selects which key is meaningful. Dispatch on Kind is exhaustive.
type MaterialSelector struct {
	Kind       model.MaterialKind `json:"kind"`
	Yarn       *YarnKey           `json:"yarn,omitempty"`
	SafetyEyes *SafetyEyesKey     `json:"safety_eyes,omitempty"`
	Stuffing   *StuffingKey       `json:"stuffing,omitempty"`
}

type CreateYarnInput struct {
	Brand         string  `json:"brand"`
	FiberType     string  `json:"fiber_type"`
	Weight        string  `json:"weight"`
	Color         string  `json:"color"`
	SkeinsOwned   float64 `json:"skeins_owned"`
	PricePerSkein float64 `json:"price_per_skein"`
}

type CreateSafetyEyesInput struct {
	SizeMM       float64 `json:"size_mm"`
	Color        string  `json:"color"`
	Shape        string  `json:"shape"`
	PairsOwned   float64 `json:"pairs_owned"`
	PricePerPair float64 `json:"price_per_pair"`
}

type CreateStuffingInput struct {
	Brand         string  `json:"brand"`
	FillType      string  `json:"fill_type"`
	OuncesOwned   float64 `json:"ounces_owned"`
	PricePerOunce float64 `json:"price_per_ounce"`
}
