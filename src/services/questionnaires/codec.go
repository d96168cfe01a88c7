package questionnaires

import "encoding/json"

// The option list of a question travels as a single text field holding a
// JSON-encoded array of strings. This file is the only place that touches the
// wire form; the editor and the public view only ever see []string.

// EncodeOptions renders an option list to its wire form. An empty or nil list
// encodes to "[]" so the stored field is never left undefined.
func EncodeOptions(opts []string) string {
	if len(opts) == 0 {
		return "[]"
	}
	data, err := json.Marshal(opts)
	if err != nil {
		// []string cannot fail to marshal; keep the invariant anyway.
		return "[]"
	}
	return string(data)
}

// DecodeOptions parses the wire form back into an option list. Decoding is
// total: absent or malformed text yields an empty list so one bad question
// never blocks loading the rest of the questionnaire.
func DecodeOptions(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var opts []string
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return []string{}
	}
	if opts == nil {
		// "null" decodes without error but must still normalize to empty.
		return []string{}
	}
	return opts
}
