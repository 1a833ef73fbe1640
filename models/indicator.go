package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Indicator struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"nome" bson:"nome"`
	Target        string             `json:"meta" bson:"meta"`
	Category      Category           `json:"oeo" bson:"oeo"`
	MonthlyValues MonthlyValues      `json:"desempenhos" bson:"desempenhos"`
	Metadata      Metadata           `json:"metadata" bson:"metadata"`
}

type Metadata struct {
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// IndicatorInput is the raw, untrimmed input of a create request. The json
// tags name the fields in validation errors.
type IndicatorInput struct {
	Name     string `json:"nome" validate:"required"`
	Target   string `json:"meta" validate:"required"`
	Category string `json:"oeo" validate:"required,oeo"`
}

// IndicatorPatch holds the fields of an update request; nil means "leave as is".
type IndicatorPatch struct {
	Name     *string
	Target   *string
	Category *string
}

func (p IndicatorPatch) IsEmpty() bool {
	return p.Name == nil && p.Target == nil && p.Category == nil
}

// IndicatorUpdate is a validated patch ready for the store.
type IndicatorUpdate struct {
	Name     *string
	Target   *string
	Category *Category
}

func (u IndicatorUpdate) IsEmpty() bool {
	return u.Name == nil && u.Target == nil && u.Category == nil
}

// NewIndicator builds an indicator with all twelve months empty.
func NewIndicator(name, target string, category Category) *Indicator {
	return &Indicator{
		Name:     name,
		Target:   target,
		Category: category,
	}
}

// CategoryCount is one row of the per-category aggregation.
type CategoryCount struct {
	Category Category `bson:"_id"`
	Total    int      `bson:"total"`
}

// CategorySummary is the per-category count exposed by the API.
type CategorySummary struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Category Category `json:"oeo"`
	Total    int      `json:"total"`
}

// CategoryGroup is one dashboard bucket.
type CategoryGroup struct {
	Key        string      `json:"key"`
	Label      string      `json:"label"`
	Category   Category    `json:"oeo"`
	Indicators []Indicator `json:"indicadores"`
}
