package dto

import "github.com/hooknest/craftstock-service/internal/model"

// MaterialUsage is the enriched per-link view: the link row joined with the
// concrete material record its kind tag points at. Exactly one of the
// material pointers is set; all three are nil when the link dangles (the
// referenced material row was deleted after linking).
type MaterialUsage struct {
	Link       model.MaterialLink `json:"link"`
	Yarn       *model.Yarn        `json:"yarn,omitempty"`
	SafetyEyes *model.SafetyEyes  `json:"safety_eyes,omitempty"`
	Stuffing   *model.Stuffing    `json:"stuffing,omitempty"`
}
