package types

// Secret holds a credential that must never reach the terminal. Formatting it
// with the fmt verbs prints a mask; Reveal is the only way to read the value.
type Secret string

const secretMask = "********"

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return secretMask
}

func (s Secret) GoString() string {
	return s.String()
}

// MarshalYAML keeps the key out of dumped configs.
func (s Secret) MarshalYAML() (any, error) {
	return s.String(), nil
}

func (s Secret) Reveal() string {
	return string(s)
}

func (s Secret) IsEmpty() bool {
	return s == ""
}
