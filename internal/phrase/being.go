package phrase

// Being is one narrative entity a template can refer to: whoever performed
// the action or had it done to them.
//
// GeneralName is required: the kind of thing this is, like "store manager"
// or "copper dragon". SpecificName is the proper name, including any title,
// when the Being has one and there is a reason to show it; a specific name
// is used bare while a general name gets "the" in front. An empty
// SpecificName means the Being doesn't have one, which is the default and
// suits inanimate Beings.
//
// A Being is built by the caller for one narrative event and is never
// mutated or retained by the engine.
type Being struct {
	Gender       Gender `json:"gender,omitempty"`
	GeneralName  string `json:"general_name"`
	SpecificName string `json:"specific_name,omitempty"`
}

// DisplayName returns how the Being is named in the third person: the
// specific name when there is one, otherwise "the" and the general name.
func (b *Being) DisplayName() string {
	if b.SpecificName != "" {
		return b.SpecificName
	}
	return "the " + b.GeneralName
}
