package entity

// Sentinel is the placeholder the extraction contract uses for any field
// the model could not determine. It is part of the wire format consumed by
// the completeness scorer and the document generator.
const Sentinel = "Not specified"

// FieldValue distinguishes an extracted value from an unspecified one
// without resorting to string comparisons against the sentinel everywhere.
type FieldValue struct {
	value string
	set   bool
}

func Field(value string) FieldValue {
	if value == "" || value == Sentinel {
		return FieldValue{}
	}
	return FieldValue{value: value, set: true}
}

func Unspecified() FieldValue {
	return FieldValue{}
}

func (f FieldValue) IsSet() bool {
	return f.set
}

// String renders the value at the serialization boundary, substituting the
// sentinel for unspecified fields.
func (f FieldValue) String() string {
	if !f.set {
		return Sentinel
	}
	return f.value
}

// TicketRecord is the canonical structured result of a ticket analysis.
// Every field is always present; unspecified fields render as the sentinel.
// A record is built once per analysis and never mutated afterwards.
type TicketRecord struct {
	InfractorName  FieldValue
	TicketFolio    FieldValue
	InfractionDate FieldValue
	KnowledgeDate  FieldValue
	PlateNumber    FieldValue
	VehicleMake    FieldValue
	VehicleModel   FieldValue
	OfficerName    FieldValue
	OfficerBadgeID FieldValue
	Precinct       FieldValue
	Shift          FieldValue
	Sector         FieldValue
	TimeOfDay      FieldValue
	Location       FieldValue
	InfractionType FieldValue
	LegalArticle   FieldValue
	AmountDue      FieldValue
}

// TicketSchemaKeys enumerates the wire-format keys of TicketRecord in the
// order the prompt states them. The schema is fixed; it is never inferred
// from input.
var TicketSchemaKeys = []string{
	"infractor_name",
	"ticket_folio",
	"infraction_date",
	"knowledge_date",
	"plate_number",
	"vehicle_make",
	"vehicle_model",
	"officer_name",
	"officer_badge_id",
	"precinct",
	"shift",
	"sector",
	"time_of_day",
	"location",
	"infraction_type",
	"legal_article",
	"amount_due",
}

// RequiredTicketKeys is the subset counted by the completeness scorer.
// Amount, location and infraction description are informative only.
var RequiredTicketKeys = []string{
	"infractor_name",
	"ticket_folio",
	"infraction_date",
	"plate_number",
	"vehicle_make",
	"vehicle_model",
	"officer_name",
	"officer_badge_id",
	"precinct",
	"shift",
	"sector",
	"time_of_day",
}

// ByKey returns the field stored under a schema key. Unknown keys return an
// unspecified value; the schema is closed, so that only happens on caller
// bugs.
func (r TicketRecord) ByKey(key string) FieldValue {
	switch key {
	case "infractor_name":
		return r.InfractorName
	case "ticket_folio":
		return r.TicketFolio
	case "infraction_date":
		return r.InfractionDate
	case "knowledge_date":
		return r.KnowledgeDate
	case "plate_number":
		return r.PlateNumber
	case "vehicle_make":
		return r.VehicleMake
	case "vehicle_model":
		return r.VehicleModel
	case "officer_name":
		return r.OfficerName
	case "officer_badge_id":
		return r.OfficerBadgeID
	case "precinct":
		return r.Precinct
	case "shift":
		return r.Shift
	case "sector":
		return r.Sector
	case "time_of_day":
		return r.TimeOfDay
	case "location":
		return r.Location
	case "infraction_type":
		return r.InfractionType
	case "legal_article":
		return r.LegalArticle
	case "amount_due":
		return r.AmountDue
	}
	return Unspecified()
}

// ToMap serializes the full record with sentinel substitution. Every schema
// key is present in the result.
func (r TicketRecord) ToMap() map[string]string {
	out := make(map[string]string, len(TicketSchemaKeys))
	for _, key := range TicketSchemaKeys {
		out[key] = r.ByKey(key).String()
	}
	return out
}

// AllSentinelRecord is the fallback produced when model output cannot be
// parsed into the schema.
func AllSentinelRecord() TicketRecord {
	return TicketRecord{}
}

// RecordFromMap builds a record from serialized key/value pairs. Sentinel
// and empty values become unspecified; unknown keys are ignored.
func RecordFromMap(values map[string]string) TicketRecord {
	return TicketRecord{
		InfractorName:  Field(values["infractor_name"]),
		TicketFolio:    Field(values["ticket_folio"]),
		InfractionDate: Field(values["infraction_date"]),
		KnowledgeDate:  Field(values["knowledge_date"]),
		PlateNumber:    Field(values["plate_number"]),
		VehicleMake:    Field(values["vehicle_make"]),
		VehicleModel:   Field(values["vehicle_model"]),
		OfficerName:    Field(values["officer_name"]),
		OfficerBadgeID: Field(values["officer_badge_id"]),
		Precinct:       Field(values["precinct"]),
		Shift:          Field(values["shift"]),
		Sector:         Field(values["sector"]),
		TimeOfDay:      Field(values["time_of_day"]),
		Location:       Field(values["location"]),
		InfractionType: Field(values["infraction_type"]),
		LegalArticle:   Field(values["legal_article"]),
		AmountDue:      Field(values["amount_due"]),
	}
}

// CompletenessScore reports how many required fields were populated.
type CompletenessScore struct {
	Populated int `json:"populated"`
	Required  int `json:"required"`
	Percent   int `json:"percent"`
}

// AnalysisResult is the sole output of the ticket analysis pipeline.
// Either Success is true and Record/RawText/Completeness/Summary are
// populated, or Success is false and Reason carries the failure message.
type AnalysisResult struct {
	Success      bool              `json:"success"`
	Record       map[string]string `json:"record,omitempty"`
	RawText      string            `json:"raw_text,omitempty"`
	Completeness CompletenessScore `json:"completeness"`
	Summary      string            `json:"summary,omitempty"`
	Reason       string            `json:"reason,omitempty"`
}
