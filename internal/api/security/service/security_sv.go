package securityService

import (
	"time"

	"DespachoJuridico/internal/api/security"
	"DespachoJuridico/internal/api/security/repository"
	"DespachoJuridico/internal/entity"
	"golang.org/x/net/context"
)

// Strikes before a number is blocked without manual review.
const autoBlockThreshold = 3

// extortionKeywords covers the fraud patterns seen over WhatsApp in Mexico:
// virtual kidnapping, threats, payment demands, authority impersonation, and
// manufactured urgency.
var extortionKeywords = []string{
	"secuestrado", "secuestre", "retenido", "hospital", "accidente grave",
	"ambulancia", "emergencia familiar", "algo le paso", "tuvo un accidente",

	"amenaza", "matar", "lastimar", "hacer daño", "te vamos a",
	"cartel", "narco", "sicario", "tenemos gente", "sabemos donde vives",

	"deposita", "transfiere", "manda dinero", "necesito dinero urgente",
	"tarjeta prepagada", "oxxo", "western union", "bitcoins",

	"fiscal", "ministerio publico", "orden de aprehension", "demanda",
	"juzgado", "tribunal", "multa pendiente", "adeudo",

	"es urgente", "inmediatamente", "ahora mismo", "rapido", "no tengo tiempo",
	"antes de que", "si no", "o sino",
}

const severeWarningCopy = `🚨 *ADVERTENCIA DE SEGURIDAD*

Este mensaje ha sido identificado como un posible intento de *EXTORSIÓN o FRAUDE*.

⚠️ *NO proporciones información personal*
⚠️ *NO realices pagos*
⚠️ *NO compartas códigos o contraseñas*

🛡️ *RECOMENDACIONES:*
1. Ignora este mensaje
2. NO respondas
3. Bloquea este número
4. Reporta al 089 (Denuncia Anónima)

📱 Si necesitas asesoría legal real, contacta directamente a:
*JPS Despacho Jurídico*
📞 +52 477 724 4259

⚖️ Este es un sistema automatizado de protección.`

const mildWarningCopy = `⚠️ *AVISO DE SEGURIDAD*

Hemos detectado contenido sospechoso en tu mensaje.

Si realmente necesitas asesoría legal, contacta directamente:
📞 +52 477 724 4259

🤖 Este es un asistente automatizado de JPS Despacho Jurídico.`

const welcomeCopy = `⚖️ *BIENVENIDO A JPS DESPACHO JURÍDICO*

Soy tu asistente virtual. En la siguiente imagen te presento nuestros servicios.

¿Hay algo en lo que te pueda ayudar?`

// Inspect screens a message for extortion signals. Two or more keyword hits
// flags it; a single hit is noise from ordinary legal vocabulary.
func (s *securityService) Inspect(text string) entity.ExtortionCheck {
	if text == "" {
		return entity.ExtortionCheck{}
	}

	hits := s.nlpProcessor.CountKeywordHits(text, extortionKeywords)

	return entity.ExtortionCheck{
		Flagged:  len(hits) >= 2,
		Keywords: hits,
		Severity: len(hits),
	}
}

// ShouldRespond decides whether the bot talks to the number at all.
func (s *securityService) ShouldRespond(phone string) bool {
	blocked := false
	s.securityRp.View(func(b securityRepository.Blocklist) {
		for _, entry := range b.Blocked {
			if entry.Phone == phone {
				blocked = true
				return
			}
		}
	})
	if blocked {
		return false
	}

	if s.testMode && !s.allowedNumbers[phone] {
		return false
	}

	return true
}

func (s *securityService) Block(phone, reason string) error {
	if reason == "" {
		reason = "Manual"
	}

	return s.securityRp.Mutate(func(b *securityRepository.Blocklist) error {
		for _, entry := range b.Blocked {
			if entry.Phone == phone {
				return nil
			}
		}

		b.Blocked = append(b.Blocked, entity.BlockedNumber{
			Phone:     phone,
			Reason:    reason,
			BlockedAt: time.Now(),
		})

		s.log.WithField("phone", phone).WithField("reason", reason).Warn("Number blocked")
		return nil
	})
}

func (s *securityService) Unblock(phone string) error {
	return s.securityRp.Mutate(func(b *securityRepository.Blocklist) error {
		for i, entry := range b.Blocked {
			if entry.Phone == phone {
				b.Blocked = append(b.Blocked[:i], b.Blocked[i+1:]...)
				return nil
			}
		}
		return security.ErrNumberNotBlocked
	})
}

// MarkSuspicious records a strike against the number. Hitting the threshold
// blocks it and clears the counter.
func (s *securityService) MarkSuspicious(ctx context.Context, phone string) (bool, int64, error) {
	strikes, err := s.redisClient.IncrSuspicionCount(ctx, phone)
	if err != nil {
		return false, 0, err
	}

	if strikes < autoBlockThreshold {
		return false, strikes, nil
	}

	if err := s.Block(phone, "Auto-bloqueo por intentos de extorsión"); err != nil {
		return false, strikes, err
	}
	s.redisClient.ResetSuspicionCount(ctx, phone)

	return true, strikes, nil
}

func (s *securityService) WarningMessage(severity int) string {
	if severity >= 3 {
		return severeWarningCopy
	}
	return mildWarningCopy
}

func (s *securityService) WelcomeMessage() string {
	return welcomeCopy
}

func (s *securityService) Report() entity.SecurityReport {
	var report entity.SecurityReport

	s.securityRp.View(func(b securityRepository.Blocklist) {
		report.BlockedCount = len(b.Blocked)
		report.BlockedNumbers = append(report.BlockedNumbers, b.Blocked...)
	})

	return report
}
