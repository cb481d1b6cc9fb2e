package response

import (
	"time"

	"alufab_quotes/internal/domain/entities"
)

type MTOResponse struct {
	ID          string             `json:"id"`
	QuotationID string             `json:"quotationId"`
	ProjectID   string             `json:"projectId"`
	Items       []entities.MTOItem `json:"items"`
	GeneratedAt time.Time          `json:"generatedAt"`
}

func FromMTO(m entities.MTO) MTOResponse {
	items := m.Items
	if items == nil {
		items = []entities.MTOItem{}
	}
	return MTOResponse{
		ID:          m.ID,
		QuotationID: m.QuotationID,
		ProjectID:   m.ProjectID,
		Items:       items,
		GeneratedAt: m.GeneratedAt,
	}
}
