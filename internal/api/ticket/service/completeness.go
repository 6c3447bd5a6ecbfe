package ticketService

import (
	"math"

	"DespachoJuridico/internal/entity"
)

// Score counts how many required fields carry a real value. Pure and total;
// an all-sentinel record scores 0, a fully populated one scores 100.
func Score(record entity.TicketRecord) entity.CompletenessScore {
	required := len(entity.RequiredTicketKeys)

	populated := 0
	for _, key := range entity.RequiredTicketKeys {
		if record.ByKey(key).IsSet() {
			populated++
		}
	}

	percent := int(math.Round(float64(populated) / float64(required) * 100))

	return entity.CompletenessScore{
		Populated: populated,
		Required:  required,
		Percent:   percent,
	}
}
