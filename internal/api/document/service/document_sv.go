package documentService

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ticketService "DespachoJuridico/internal/api/ticket/service"
	"DespachoJuridico/internal/entity"
	"golang.org/x/net/context"
)

// Firm details stamped into every complaint. Fixed legal copy.
const (
	firmCourt          = "H. JUEZ ADMINISTRATIVO MUNICIPAL DE LEÓN, GTO."
	firmAddress        = "BRISAS DE SAN FELIPE 254, colonia BRISAS DE SAN NICOLÁS, en León, Gto."
	firmLeadLawyer     = "C. LIC. JOSÉ PATRICIO SÁNCHEZ MARTÍNEZ"
	firmNotifyContact  = "C. MARIANA GUADALUPE SÁNCHEZ BARAJAS"
	firmNotifyEmail    = "lic.patriciosanchez@yahoo.com"
	knowledgeLookback  = 3
)

// actDescription names the contested act with its folio, date, issuing
// officer and precinct. It recurs verbatim in three sections of the
// complaint.
func actDescription(record entity.TicketRecord, infractionDate string) string {
	return fmt.Sprintf(
		"ACTA DE INFRACCIÓN CAPTADA A TRAVÉS DE DISPOSITIVOS TECNOLÓGICOS DE FOTOMULTAS folio %s, "+
			"de fecha %s, emitida por C. Policía Vial %s, adscrito a la %s %s %s, "+
			"de la Dirección de Policía Vial de León, Guanajuato; con número de empleado %s",
		record.TicketFolio,
		infractionDate,
		record.OfficerName,
		record.Precinct,
		record.Sector,
		record.Shift,
		record.OfficerBadgeID,
	)
}

// GenerateComplaint populates the contentious-administrative complaint with
// the citation data. Sentinel values pass through untouched; a sparse record
// produces a complete document with placeholders the lawyer fills in by
// hand.
func (s *documentService) GenerateComplaint(record entity.TicketRecord, clientName string) string {
	knowledgeDate := ticketService.FormatLongDate(ticketService.BusinessDaysBefore(time.Now(), knowledgeLookback))

	infractionDate := record.InfractionDate.String()
	if record.InfractionDate.IsSet() {
		if parsed, err := time.Parse("02/01/2006", infractionDate); err == nil {
			infractionDate = ticketService.FormatUpperLongDate(parsed)
		}
	}

	act := actDescription(record, infractionDate)

	var b strings.Builder

	b.WriteString(firmCourt + "\n")
	b.WriteString("PRESENTE\n\n")

	fmt.Fprintf(&b,
		"C. %s por mi propio derecho, señalando para oír y recibir notificaciones en %s; "+
			"autorizando en términos del artículo 10 del Código de Procedimiento y Justicia Administrativa "+
			"para el Estado y los Municipios de Guanajuato (en adelante C. P. J. A.) al %s; "+
			"y para oír y recibir notificaciones a la %s; solicitando se notifique en el correo electrónico %s, "+
			"ante Usted, con el debido respeto comparezco para exponer:\n\n",
		strings.ToUpper(clientName), firmAddress, firmLeadLawyer, firmNotifyContact, firmNotifyEmail)

	b.WriteString("Se promueve demanda contencioso administrativa en la vía sumaria contra el siguiente acto administrativo:\n\n")

	b.WriteString("ACTO IMPUGNADO\n\n")
	fmt.Fprintf(&b, "1.- %s.\n\n", act)

	b.WriteString("AUTORIDADES DEMANDADAS:\n\n")
	b.WriteString("I.- El C. Policía Vial que emitió el acto impugnado.\n\n")
	b.WriteString("En la presente causa contenciosa administrativa, no existe persona alguna que tenga un derecho incompatible con la pretensión intentada.\n\n")

	b.WriteString("PRETENSIÓN INTENTADA EN TÉRMINOS DEL ARTÍCULO 255:\n\n")
	fmt.Fprintf(&b, "I.- Se declare la nulidad del %s;\n\n", act)
	fmt.Fprintf(&b,
		"II.- Se eliminen los registros de las actas de infracción relacionados con las placas de circulación "+
			"del vehículo automotor placas de circulación %s marca %s, línea %s.\n\n",
		record.PlateNumber, record.VehicleMake, record.VehicleModel)

	b.WriteString("HECHOS\n\n")
	fmt.Fprintf(&b,
		"1.- El %s tuve conocimiento del %s que se impugna, relacionado con el vehículo placas de circulación %s marca %s, línea %s.\n\n",
		knowledgeDate, act, record.PlateNumber, record.VehicleMake, record.VehicleModel)
	b.WriteString("2.- Toda vez que no estamos de acuerdo con la infracción que se imputa; se niega lisa y llanamente haber cometido la infracción.\n\n")

	b.WriteString("CONCEPTOS DE IMPUGNACIÓN\n\n")
	b.WriteString("ÚNICO.- EL ACTO IMPUGNADO CARECE DE LOS ELEMENTOS DE VALIDEZ PREVISTOS EN EL ARTÍCULO 137 DEL C. P. J. A.\n\n")
	b.WriteString("Premisa mayor\n\n")
	b.WriteString("Artículo 137. Son elementos de validez del acto administrativo: […] V. Constar por escrito, con la debida fundamentación y motivación.\n\n")
	b.WriteString("Premisa menor\n\n")
	b.WriteString("De la lectura del acto impugnado se advierte que: 1.- La autoridad omitió circunstanciar debidamente la infracción.\n\n")
	b.WriteString("Conclusión\n\n")
	b.WriteString("En ese sentido, el acto impugnado carece de los elementos de validez exigidos y procede declarar su nulidad.\n\n")

	b.WriteString("SUSPENSIÓN\n\n")
	b.WriteString("Con fundamento en el C. P. J. A. se solicita la suspensión del acto impugnado para el efecto de que no se ejecute el cobro de la multa ni se vincule a trámite vehicular alguno.\n")

	return b.String()
}

// SaveComplaint renders the complaint and persists it under the documents
// directory. Returns the document text and the path it was written to.
func (s *documentService) SaveComplaint(ctx context.Context, record entity.TicketRecord, clientName string) (string, string, error) {
	complaint := s.GenerateComplaint(record, clientName)

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return "", "", err
	}

	name := fmt.Sprintf("demanda-%s.txt", id)
	if record.TicketFolio.IsSet() {
		name = fmt.Sprintf("demanda-%s-%s.txt", sanitizeFileName(record.TicketFolio.String()), id)
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", "", err
	}

	path := filepath.Join(s.outputDir, name)
	if err := os.WriteFile(path, []byte(complaint), 0o644); err != nil {
		return "", "", err
	}

	s.log.Infof("Complaint written to %s", path)
	return complaint, path, nil
}

func (s *documentService) EmailComplaint(recipient string, complaint string) error {
	return s.smtpMailer.SendDocument(recipient, "Demanda contencioso administrativa", complaint)
}

func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}
