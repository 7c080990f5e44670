package lookup

// Field is one of the facts a lookup tries to establish
type Field int

const (
	FieldName Field = iota
	FieldWebsite
	FieldTwitter
	FieldTelegram
	FieldDexscreener

	fieldCount
)

// Fields lists every tracked field in a fixed order
var Fields = [fieldCount]Field{
	FieldName,
	FieldWebsite,
	FieldTwitter,
	FieldTelegram,
	FieldDexscreener,
}

var fieldNames = [fieldCount]string{
	FieldName:        "name",
	FieldWebsite:     "website",
	FieldTwitter:     "twitter",
	FieldTelegram:    "telegram",
	FieldDexscreener: "dexscreener",
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// Candidates holds the raw values one document offers for each field,
// in the order they appear in the document. Duplicates are kept.
type Candidates struct {
	values [fieldCount][]string
}

// NewCandidates builds Candidates from a field map; unknown fields are ignored
func NewCandidates(values map[Field][]string) Candidates {
	var c Candidates
	for f, vs := range values {
		for _, v := range vs {
			c.Add(f, v)
		}
	}
	return c
}

// Add appends a candidate value for f
func (c *Candidates) Add(f Field, value string) {
	if f < 0 || f >= fieldCount {
		return
	}
	c.values[f] = append(c.values[f], value)
}

// Values returns the candidates for f in encounter order
func (c Candidates) Values(f Field) []string {
	if f < 0 || f >= fieldCount {
		return nil
	}
	return c.values[f]
}

// Len returns the total number of candidates across all fields
func (c Candidates) Len() int {
	n := 0
	for _, vs := range c.values {
		n += len(vs)
	}
	return n
}

// Value is a resolved field: either a string or nothing at all
type Value struct {
	Text  string
	Valid bool
}

// Some wraps a present value
func Some(text string) Value {
	return Value{Text: text, Valid: true}
}

// Ptr returns nil for an absent value
func (v Value) Ptr() *string {
	if !v.Valid {
		return nil
	}
	text := v.Text
	return &text
}

// Record is the consensus answer of a lookup
type Record struct {
	Name        Value
	Website     Value
	Twitter     Value
	Telegram    Value
	Dexscreener Value
}

// Get returns the resolved value of f
func (r Record) Get(f Field) Value {
	switch f {
	case FieldName:
		return r.Name
	case FieldWebsite:
		return r.Website
	case FieldTwitter:
		return r.Twitter
	case FieldTelegram:
		return r.Telegram
	case FieldDexscreener:
		return r.Dexscreener
	default:
		return Value{}
	}
}

func (r *Record) set(f Field, v Value) {
	switch f {
	case FieldName:
		r.Name = v
	case FieldWebsite:
		r.Website = v
	case FieldTwitter:
		r.Twitter = v
	case FieldTelegram:
		r.Telegram = v
	case FieldDexscreener:
		r.Dexscreener = v
	}
}
