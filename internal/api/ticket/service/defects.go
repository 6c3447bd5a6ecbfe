package ticketService

import "DespachoJuridico/internal/entity"

// DetectDefects lists contestable gaps in a citation. Each missing field
// below weakens the act's formal validity and is an argument for the
// complaint.
func (s *ticketService) DetectDefects(record entity.TicketRecord) []string {
	var defects []string

	if !record.TicketFolio.IsSet() {
		defects = append(defects, "Sin número de folio visible")
	}
	if !record.InfractionDate.IsSet() {
		defects = append(defects, "Sin fecha visible")
	}
	if !record.TimeOfDay.IsSet() {
		defects = append(defects, "Sin hora visible")
	}
	if !record.Location.IsSet() {
		defects = append(defects, "Sin lugar específico")
	}
	if !record.OfficerName.IsSet() {
		defects = append(defects, "Sin nombre del oficial")
	}
	if !record.LegalArticle.IsSet() {
		defects = append(defects, "Sin fundamento legal claro")
	}

	return defects
}
