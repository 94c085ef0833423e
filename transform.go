package fieldrules

// Normalizer is implemented by records that need to clean up their fields
// after decoding, for example trimming whitespace. [UnmarshalAndValidate]
// and [DecodeAndValidate] call Normalize before validating. Nested values
// are not walked.
type Normalizer interface {
	Normalize()
}

func normalize(v any) {
	if n, ok := v.(Normalizer); ok {
		n.Normalize()
	}
}
