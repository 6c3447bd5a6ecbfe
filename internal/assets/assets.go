// Package assets maps bot situations to the firm's marketing images and
// their captions. Image files live under storage/images/marketing and are
// provided by the firm, not shipped with the binary.
package assets

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	ImageWelcome       = "BIENVENIDA"
	ImageContact       = "CONTACTO"
	ImageSchedule      = "HORARIOS"
	ImageOffice        = "OFICINA"
	ImageFineDefense   = "IMPUGNACION_MULTAS"
	ImageDivorce       = "DIVORCIOS"
	ImageWills         = "TESTAMENTOS"
	ImageLabor         = "LABORALES"
	ImageCriminal      = "PENAL"
	ImagePricing       = "PRECIOS"
	ImageCanceledFine  = "MULTA_CANCELADA"
	ImageStats         = "ESTADISTICAS"
	ImageTestimonial1  = "TESTIMONIO_1"
	ImageTestimonial2  = "TESTIMONIO_2"
	ImageBeforeAfter   = "ANTES_DESPUES"
	ImageLogoPrincipal = "LOGO_PRINCIPAL"
)

var imagePaths = map[string]string{
	ImageLogoPrincipal: "logos/logo_principal.png",
	ImageWelcome:       "bienvenida/bienvenida_principal.jpg",
	ImageContact:       "bienvenida/tarjeta_contacto.jpg",
	ImageSchedule:      "bienvenida/horarios_atencion.jpg",
	ImageOffice:        "bienvenida/despacho_oficina.jpg",
	ImageFineDefense:   "servicios/impugnacion_multas.jpg",
	ImageDivorce:       "servicios/divorcios.jpg",
	ImageWills:         "servicios/testamentos.jpg",
	ImageLabor:         "servicios/juicios_laborales.jpg",
	ImageCriminal:      "servicios/defensa_penal.jpg",
	ImagePricing:       "servicios/tabla_precios.jpg",
	ImageCanceledFine:  "casos_exito/multa_cancelada_ejemplo.jpg",
	ImageStats:         "casos_exito/estadisticas_2024.jpg",
	ImageTestimonial1:  "casos_exito/testimonio_1.jpg",
	ImageTestimonial2:  "casos_exito/testimonio_2.jpg",
	ImageBeforeAfter:   "casos_exito/antes_despues.jpg",
}

var captions = map[string]string{
	ImageWelcome: "⚖️ *BIENVENIDO A JPS DESPACHO JURÍDICO*\n\n" +
		"Defendemos tus derechos con experiencia y profesionalismo.",

	ImageFineDefense: "✅ *MULTA RECIBIDA - ANÁLISIS CONFIRMADO*\n\n" +
		"El Lic. José Patricio revisará tu caso.\n\n" +
		"💰 *INVERSIÓN:* $2,500 MXN\n" +
		"📊 *TASA DE ÉXITO:* 97% (330/340 casos ganados)\n" +
		"⏱️ *PROCESO:* 4-6 meses\n\n" +
		"📋 *PARA INICIAR NECESITAS:*\n" +
		"1️⃣ Entregar multa ORIGINAL en físico\n" +
		"2️⃣ Pago de $2,500 MXN\n" +
		"3️⃣ Copia de licencia y tarjeta de circulación\n\n" +
		"📍 *Ubicación:* León, Guanajuato\n" +
		"📱 *Contacto:* +52 477 724 4259\n\n" +
		"¿Deseas agendar cita para entregar documentos?",

	ImageCanceledFine: "✅ *ASÍ SE VE UNA MULTA CANCELADA*\n\n" +
		"🎯 Caso real de esta semana\n" +
		"⚖️ Resultado: CANCELADA\n" +
		"💰 Cliente ahorró: $3,200 MXN\n" +
		"💸 Inversión: $1,600 MXN\n\n" +
		"¿La tuya es similar? ¡Podemos ganarla!",

	ImageStats: "📊 *NUESTROS RESULTADOS 2024*\n\n" +
		"✅ 2573 Multas Impugnadas\n" +
		"🎯 99% Casos Ganados\n" +
		"💰 $384,000 MXN Ahorrados a Clientes\n\n" +
		"Los números no mienten.\n" +
		"¿Tú también quieres ganar tu caso?",

	ImageContact: "📱 *CONTACTO JPS DESPACHO JURÍDICO*\n\n" +
		"👨‍⚖️ Lic. José Patricio Sánchez\n" +
		"📞 +52 477 724 4259\n" +
		"📍 León, Guanajuato\n" +
		"⏰ Lun-Vie: 9:00 - 18:00\n" +
		"⏰ Sáb: 9:00 - 14:00\n\n" +
		"Atención personalizada y profesional.",

	ImagePricing: "💰 *NUESTROS SERVICIOS*\n\n" +
		"Precios transparentes y competitivos.\n" +
		"Primera consulta para revisar tu caso.\n\n" +
		"¿Qué servicio necesitas?",

	ImageWills: "📜 *TESTAMENTOS*\n\n" +
		"✅ Testamento Completo: $4,500 MXN\n\n" +
		"Incluye:\n" +
		"• Asesoría legal completa\n" +
		"• Elaboración del documento\n" +
		"• Trámite notarial\n" +
		"• Registro público\n\n" +
		"⏱️ Listo en 2 semanas\n\n" +
		"Protege a tu familia hoy.",
}

type keywordImage struct {
	keyword string
	image   string
}

// Ordered so the first match wins deterministically. The fine keywords sit
// on top because fines are the core service.
var keywordImages = []keywordImage{
	{"multa", ImageFineDefense},
	{"infraccion", ImageFineDefense},
	{"transito", ImageFineDefense},
	{"fotomulta", ImageFineDefense},

	{"divorcio", ImageDivorce},
	{"separacion", ImageDivorce},
	{"matrimonio", ImageDivorce},

	{"testamento", ImageWills},
	{"herencia", ImageWills},
	{"sucesion", ImageWills},

	{"patron", ImageLabor},
	{"trabajo", ImageLabor},
	{"despido", ImageLabor},
	{"liquidacion", ImageLabor},

	{"penal", ImageCriminal},
	{"delito", ImageCriminal},
	{"acusacion", ImageCriminal},

	{"precio", ImagePricing},
	{"costo", ImagePricing},
	{"cuanto", ImagePricing},

	{"contacto", ImageContact},
	{"ubicacion", ImageContact},
	{"direccion", ImageContact},
	{"horario", ImageSchedule},
}

type ICatalog interface {
	Path(key string) (string, bool)
	Caption(key string) string
	KeyForMessage(message string) (string, bool)
	Available() (available, missing []string)
}

type catalog struct {
	baseDir string
}

// NewCatalog roots the image catalog at baseDir, usually
// storage/images/marketing.
func NewCatalog(baseDir string) ICatalog {
	return &catalog{baseDir: baseDir}
}

// Path resolves the file path for an image key. The second return reports
// whether the file exists on disk; captions can still be sent without it.
func (c *catalog) Path(key string) (string, bool) {
	rel, ok := imagePaths[key]
	if !ok {
		return "", false
	}

	path := filepath.Join(c.baseDir, rel)
	if _, err := os.Stat(path); err != nil {
		return path, false
	}

	return path, true
}

func (c *catalog) Caption(key string) string {
	return captions[key]
}

// KeyForMessage finds the image matching the first keyword present in the
// client's message.
func (c *catalog) KeyForMessage(message string) (string, bool) {
	lower := strings.ToLower(message)

	for _, entry := range keywordImages {
		if strings.Contains(lower, entry.keyword) {
			return entry.image, true
		}
	}

	return "", false
}

// Available splits the catalog into images present on disk and images the
// firm still has to drop into the marketing folder.
func (c *catalog) Available() (available, missing []string) {
	for key := range imagePaths {
		if _, ok := c.Path(key); ok {
			available = append(available, key)
		} else {
			missing = append(missing, key)
		}
	}

	return available, missing
}
