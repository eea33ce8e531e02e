package sheet

// Advantage is a final, sourced, displayable gameplay modifier entry:
// a proficiency, resistance, language or save advantage together with
// where it came from and how to render it.
type Advantage struct {
	Source     string     `json:"source"`
	SourceID   string     `json:"source_id,omitempty"`
	SourceType SourceType `json:"source_type"`
	Value      string     `json:"value"`
	Label      string     `json:"label"`
	Style      string     `json:"style,omitempty"`
}
