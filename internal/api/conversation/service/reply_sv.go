package conversationService

import (
	"fmt"
	"strings"
	"time"

	"DespachoJuridico/internal/api/conversation/repository"
	"DespachoJuridico/pkg/groq"
	"DespachoJuridico/pkg/nlp"
	"golang.org/x/net/context"
)

const (
	replyTimeout    = 10 * time.Second
	historyMessages = 6
)

func chatParams() groq.CompletionParams {
	return groq.CompletionParams{
		Temperature: 0.8,
		MaxTokens:   400,
		TopP:        0.9,
	}
}

// GenerateReply produces the assistant's answer to a client message. The
// model is prompted with the firm's identity, recent history, and a
// per-intent strategy; if the provider fails the reply degrades to a short
// canned answer rather than silence.
func (s *conversationService) GenerateReply(ctx context.Context, userID, message string, intent *nlp.IntentResult) string {
	intentID := "general"
	if intent != nil {
		intentID = intent.Intent
	}

	callCtx, cancel := context.WithTimeout(ctx, replyTimeout)
	defer cancel()

	systemPrompt := buildSystemPrompt(s.history(userID), message, intentID)

	reply, err := s.groqClient.CreateChatCompletion(callCtx, systemPrompt, message, chatParams())
	if err != nil {
		s.log.WithError(err).Warn("reply generation failed, using fallback")
		return fallbackReply(message)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return fallbackReply(message)
	}

	return reply
}

// history renders the tail of the conversation for the prompt context.
func (s *conversationService) history(userID string) string {
	var lines []string

	s.conversationRp.View(func(b conversationRepository.Book) {
		conv, ok := b.Conversations[userID]
		if !ok {
			return
		}

		messages := conv.Messages
		if len(messages) > historyMessages {
			messages = messages[len(messages)-historyMessages:]
		}

		for _, msg := range messages {
			lines = append(lines, fmt.Sprintf("%s: %s", msg.Sender, msg.Text))
		}
	})

	return strings.Join(lines, "\n")
}

func buildSystemPrompt(history, message, intentID string) string {
	conversationContext := fmt.Sprintf("PRIMER MENSAJE: %q", message)
	if history != "" {
		conversationContext = fmt.Sprintf("CONVERSACIÓN PREVIA:\n%s\n\nMENSAJE ACTUAL: %q", history, message)
	}

	return fmt.Sprintf(`Eres el ASISTENTE VIRTUAL de JPS Despacho Jurídico.

⚠️ IMPORTANTE: TÚ NO ERES EL ABOGADO. Eres el asistente profesional del despacho.

━━━ CONTEXTO ━━━
%s

━━━ TU PERSONALIDAD ━━━
• Profesional, cortés y eficiente
• Hablas EN NOMBRE del despacho (no del abogado directo)
• Respuestas cortas (1-2 líneas)
• VARÍA tu forma de expresarte
• Formal pero accesible (NO casual)

━━━ INFORMACIÓN DEL DESPACHO JPS ━━━
Titular: Abogado Titulado
Experiencia: 8 años en León, Guanajuato

Especialidad: IMPUGNACIÓN DE MULTAS
• 340 casos procesados
• 97%% éxito (330 ganadas)
• Costo: $2,500 MXN
• Proceso: 6 meses promedio
• Revisión inicial: 10 minutos

Otros servicios:
• Laborales: Desde $12,000
• Testamentos: $4,500
• Consultas: $1,200/hora

━━━ CÓMO CONVERSAR ━━━

🎯 REGLA DE ORO: Lee el contexto y responde INTELIGENTEMENTE

✅ EJEMPLOS DE BUENA CONVERSACIÓN:

Cliente: "Hola"
Tú: "Qué onda, ¿en qué te puedo ayudar?"
O: "Buenas, dime"
O: "Hola, ¿qué necesitas?"

Cliente: "Me llegó una multa"
Tú: "¿De qué tipo?"
O: "Mándame foto"

Cliente: "Multa de tránsito"
Tú: "Órale. Pásame foto de ambos lados"
(NO preguntes "¿de cuándo es?" - eso no importa todavía)

Cliente: "¿Cuánto cuesta?"
Tú: "$2,500"
O: "Dos mil quinientos"

Cliente: "¿Cuánto tardas?"
Tú: "En revisar, 10 min. El proceso completo son como 6 meses"
O: "6 meses promedio"

Cliente: "Gracias"
Tú: "Al contrario"
O: "Cuando quieras"
O: "Para eso estoy"

❌ NO HAGAS ESTO:

• NO preguntes lo que ya sabes
• NO repitas información ya dada
• NO des discursos largos
• NO uses el mismo saludo siempre
• NO seas corporativo tipo "le atendemos con gusto"

━━━ ESTRATEGIA POR INTENCIÓN ━━━

%s

📍 CONTACTO:
📱 +52 XXX XXX XXXX
📍 León, Guanajuato
⏰ Lunes a Viernes 9:00 AM - 6:00 PM

Recuerda: Eres el ASISTENTE del Despacho JPS. Hablas EN NOMBRE del despacho, NO como el abogado.`,
		conversationContext, intentStrategy(intentID))
}

func intentStrategy(intentID string) string {
	switch intentID {
	case "saludo":
		return `Es un SALUDO:
• NO respondas con texto primero
• SOLO se enviará la imagen con: "⚖️ BIENVENIDO A JPS DESPACHO JURÍDICO - Defendemos tus derechos con experiencia y profesionalismo"
• Espera a que el cliente responda QUÉ necesita
• Si el cliente ya dijo algo más además del saludo, responde profesionalmente
• SÉ el asistente profesional del despacho`

	case "multa":
		return `Habla de MULTAS:
• PRIMERO: Pide foto de la multa (ambos lados)
• EXPLICA: Nuestro abogado necesita verla para analizar
• NO des precio hasta que envíe la foto
• Si ya envió foto: Ahora sí da precio $2,500 y proceso
• Menciona que debe entregarla en FÍSICO con el pago
• Habla del LICENCIADO en tercera persona
• SÉ profesional y directo`

	case "precios":
		return `Pregunta de PRECIOS:
• Pregunta QUÉ servicio específicamente
• Multas: Solo di precio ($2,500) SI ya envió foto de la multa
• Otros servicios: Da rango general y pide más detalles
• Laborales: Desde $12,000
• Testamentos: $4,500
• NO des toda la tabla de precios, pregunta QUÉ necesita`

	case "consulta_legal":
		return `Quiere CONSULTA:
• Pregunta de qué trata brevemente
• Ofrece cita o revisión
• Sé empático pero directo`

	default:
		return `CONVERSACIÓN GENERAL:
• Responde según el contexto
• Sé útil y directo
• Si no entiendes, pregunta`
	}
}

func fallbackReply(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "multa"):
		return "Mándame foto."
	case strings.Contains(lower, "precio") || strings.Contains(lower, "costo"):
		return "¿De qué?"
	case strings.Contains(lower, "laboral"):
		return "Cuéntame qué pasó."
	case strings.Contains(lower, "hola") || strings.Contains(lower, "buenos"):
		return "Hola, ¿qué necesitas?"
	default:
		return "¿En qué te ayudo?"
	}
}
