package domain

// Record kind names registered with the knowledge base.
const (
	KindBook      = "book"
	KindHighlight = "highlight"
)

// AttributeExternalID is the hidden unique attribute carrying the remote
// identifier. The importer matches on it so re-imported records never
// duplicate.
const AttributeExternalID = "external_id"

// RecordKind declares a record schema for the knowledge base.
// Kinds are registered once at startup.
type RecordKind struct {
	// Name is the unique kind name.
	Name string

	// Attributes are the named attributes of this kind.
	Attributes []Attribute
}

// Attribute describes a single named attribute of a record kind.
type Attribute struct {
	// Name is the attribute name.
	Name string

	// Hidden indicates the attribute is not shown to the user.
	Hidden bool

	// Unique indicates values must be unique within the kind.
	// The importer uses the unique hidden external ID for idempotent matching.
	Unique bool
}

// DefaultRecordKinds returns the two kinds Marginalia registers:
// "book" and "highlight", each with a hidden unique external identifier.
func DefaultRecordKinds() []RecordKind {
	return []RecordKind{
		{
			Name: KindBook,
			Attributes: []Attribute{
				{Name: "title"},
				{Name: "author"},
				{Name: "category"},
				{Name: "source_url"},
				{Name: "cover_url"},
				{Name: AttributeExternalID, Hidden: true, Unique: true},
			},
		},
		{
			Name: KindHighlight,
			Attributes: []Attribute{
				{Name: "text"},
				{Name: "note"},
				{Name: "location"},
				{Name: "color"},
				{Name: "highlighted_at"},
				{Name: "book"},
				{Name: AttributeExternalID, Hidden: true, Unique: true},
			},
		},
	}
}
