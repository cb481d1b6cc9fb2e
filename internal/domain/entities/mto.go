package entities

import "time"

// MTOItem is one grouped take-off line: a labelled component with its
// accumulated quantity and area across all rows of a quotation.
type MTOItem struct {
	Label string  `json:"label" dynamodbav:"label"`
	Qty   float64 `json:"qty" dynamodbav:"qty"`
	Sqft  float64 `json:"sqft" dynamodbav:"sqft"`
	Sqm   float64 `json:"sqm" dynamodbav:"sqm"`
}

// MTO is the material take-off derived from exactly one quotation revision.
// Regeneration replaces the previous document wholesale.
type MTO struct {
	ID          string    `json:"id" dynamodbav:"id"`
	QuotationID string    `json:"quotationId" dynamodbav:"quotation_id"`
	ProjectID   string    `json:"projectId" dynamodbav:"project_id"`
	Items       []MTOItem `json:"items" dynamodbav:"items"`
	GeneratedAt time.Time `json:"generatedAt" dynamodbav:"generated_at"`
}
