package bot

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"DespachoJuridico/internal/entity"
)

var relevantKeywords = []string{
	"multa", "infracción", "infraccion", "tránsito", "transito",
	"abogado", "legal", "testamento", "demanda", "laboral", "penal",
	"consulta", "cita", "precio", "costo",
	"hola", "buenos", "buenas", "buen",
	"urgente", "ayuda",
}

var greetingWords = []string{"hola", "buenas", "buenos", "buen día", "buen dia"}

// isRelevant keeps the bot from answering spam and chain messages. Only
// legal vocabulary, greetings, and urgency get a response.
func isRelevant(text string) bool {
	lower := strings.ToLower(text)

	for _, keyword := range relevantKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

// isSimpleGreeting reports whether the message is a greeting and nothing
// else, three words at most.
func isSimpleGreeting(text string) bool {
	lower := strings.ToLower(text)

	greeting := false
	for _, word := range greetingWords {
		if strings.Contains(lower, word) {
			greeting = true
			break
		}
	}

	return greeting && len(strings.Fields(lower)) <= 3
}

// responseDelay picks a human-looking pause: longer for a first contact,
// short inside an active back-and-forth.
func responseDelay(isFirst, isActive bool) time.Duration {
	switch {
	case isFirst:
		return time.Duration(rand.Intn(5000)+3000) * time.Millisecond
	case isActive:
		return time.Duration(rand.Intn(2000)+1000) * time.Millisecond
	default:
		return time.Duration(rand.Intn(3000)+2000) * time.Millisecond
	}
}

func extensionFromMime(mimeType string) string {
	if parts := strings.SplitN(mimeType, "/", 2); len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	return "bin"
}

func readImage(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func ownerHelp() string {
	return "⚖️ *COMANDOS DEL DUEÑO*\n\n" +
		"📊 *CONSULTAS Y CASOS:*\n" +
		"• `!casos` - Ver estadísticas\n" +
		"• `!pendientes` - Consultas sin atender\n" +
		"• `!audiencias` - Próximas audiencias\n\n" +
		"🎯 Solo tú puedes usar estos comandos"
}

func formatStats(stats entity.LedgerStats) string {
	return "📊 *ESTADÍSTICAS DEL DESPACHO*\n\n" +
		fmt.Sprintf("Consultas totales: %d\n", stats.TotalConsultations) +
		fmt.Sprintf("├─ Pendientes: %d\n", stats.PendingConsultations) +
		fmt.Sprintf("└─ Agendadas: %d\n\n", stats.ScheduledConsultations) +
		fmt.Sprintf("Casos totales: %d\n", stats.TotalCases) +
		fmt.Sprintf("├─ Activos: %d\n", stats.ActiveCases) +
		fmt.Sprintf("└─ Cerrados: %d", stats.ClosedCases)
}

func formatPending(pending []entity.Consultation) string {
	if len(pending) == 0 {
		return "✅ No hay consultas pendientes"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 *CONSULTAS PENDIENTES* (%d)\n\n", len(pending))
	for i, c := range pending {
		fmt.Fprintf(&sb, "%d. *%s*\n", i+1, c.ID)
		fmt.Fprintf(&sb, "   Cliente: %s\n", c.ClientName)
		fmt.Fprintf(&sb, "   Tel: %s\n", c.ClientPhone)
		fmt.Fprintf(&sb, "   Asunto: %s\n\n", c.Issue)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func formatHearings(hearings []entity.UpcomingHearing) string {
	if len(hearings) == 0 {
		return "✅ No hay audiencias programadas"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 *AUDIENCIAS PRÓXIMAS* (%d)\n\n", len(hearings))
	for i, h := range hearings {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, h.Date.Format("02/01/2006"))
		fmt.Fprintf(&sb, "   Caso: %s\n", h.CaseID)
		fmt.Fprintf(&sb, "   Cliente: %s\n\n", h.Client.Name)
	}

	return strings.TrimRight(sb.String(), "\n")
}
