package ticketService

import (
	"fmt"
	"strings"

	"DespachoJuridico/internal/entity"
)

// Business copy sent with every analysis. Fixed marketing constants, never
// computed.
const (
	ServicePriceCopy  = "$2,500 MXN"
	SuccessRateCopy   = "97% (330/340 casos ganados)"
	TurnaroundCopy    = "4-6 meses"
	AnalyzedWithCopy  = "Analizado con Google Vision AI"
	CallToActionCopy  = "Responde *SÍ* para proceder con la demanda."
)

// FormatSummary renders the structured record into the WhatsApp message the
// client receives. Deterministic over its inputs; sentinel fields render as
// their placeholder, the layout never changes.
func FormatSummary(record entity.TicketRecord, score entity.CompletenessScore) string {
	var b strings.Builder

	b.WriteString("📋 *ANÁLISIS COMPLETO DE MULTA*\n\n")

	b.WriteString("👤 *INFRACCIONADO*\n")
	fmt.Fprintf(&b, "   Nombre: %s\n\n", record.InfractorName)

	b.WriteString("📌 *DATOS DE LA INFRACCIÓN*\n")
	fmt.Fprintf(&b, "   📋 Folio: %s\n", record.TicketFolio)
	fmt.Fprintf(&b, "   📅 Fecha: %s\n", record.InfractionDate)
	fmt.Fprintf(&b, "   🕐 Hora: %s\n", record.TimeOfDay)
	fmt.Fprintf(&b, "   📍 Lugar: %s\n\n", record.Location)

	b.WriteString("🚗 *VEHÍCULO*\n")
	fmt.Fprintf(&b, "   🔖 Placas: %s\n", record.PlateNumber)
	fmt.Fprintf(&b, "   🚘 Marca: %s\n", record.VehicleMake)
	fmt.Fprintf(&b, "   📝 Línea: %s\n\n", record.VehicleModel)

	b.WriteString("👮 *AGENTE VIAL*\n")
	fmt.Fprintf(&b, "   👤 Nombre: %s\n", record.OfficerName)
	fmt.Fprintf(&b, "   🆔 ID/Empleado: %s\n", record.OfficerBadgeID)
	fmt.Fprintf(&b, "   🏢 Delegación: %s\n", record.Precinct)
	fmt.Fprintf(&b, "   ⏰ Turno: %s\n", record.Shift)
	fmt.Fprintf(&b, "   📍 Sector: %s\n\n", record.Sector)

	b.WriteString("⚠️ *INFRACCIÓN COMETIDA*\n")
	fmt.Fprintf(&b, "   %s\n", record.InfractionType)
	fmt.Fprintf(&b, "   📖 Fundamento: %s\n", record.LegalArticle)
	fmt.Fprintf(&b, "   💰 Monto: $%s\n\n", record.AmountDue)

	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "✅ Precisión: %d%% (%d/%d campos)\n", score.Percent, score.Populated, score.Required)
	fmt.Fprintf(&b, "📸 %s\n\n", AnalyzedWithCopy)

	b.WriteString("🎯 *¿QUIERES IMPUGNARLA?*\n")
	fmt.Fprintf(&b, "💰 Inversión: %s\n", ServicePriceCopy)
	fmt.Fprintf(&b, "📊 Éxito: %s\n", SuccessRateCopy)
	fmt.Fprintf(&b, "⏱️ Tiempo: %s\n\n", TurnaroundCopy)

	b.WriteString(CallToActionCopy)

	return b.String()
}
