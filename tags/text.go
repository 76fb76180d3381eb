// SPDX-License-Identifier: MIT

package tags

import "encoding"

var (
	_ encoding.TextMarshaler   = HeaderField(0)
	_ encoding.TextUnmarshaler = (*HeaderField)(nil)
	_ encoding.TextMarshaler   = FieldRole(0)
	_ encoding.TextUnmarshaler = (*FieldRole)(nil)
	_ encoding.TextMarshaler   = FieldType(0)
	_ encoding.TextUnmarshaler = (*FieldType)(nil)
	_ encoding.TextMarshaler   = NormalizeMethod(0)
	_ encoding.TextUnmarshaler = (*NormalizeMethod)(nil)
	_ encoding.TextMarshaler   = NormalizeRange(0)
	_ encoding.TextUnmarshaler = (*NormalizeRange)(nil)
)

func (f HeaderField) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *HeaderField) UnmarshalText(b []byte) error {
	v, err := ParseHeaderField(string(b))
	if err != nil {
		return err
	}
	*f = v

	return nil
}

func (r FieldRole) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *FieldRole) UnmarshalText(b []byte) error {
	v, err := ParseFieldRole(string(b))
	if err != nil {
		return err
	}
	*r = v

	return nil
}

func (t FieldType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *FieldType) UnmarshalText(b []byte) error {
	v, err := ParseFieldType(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

func (m NormalizeMethod) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *NormalizeMethod) UnmarshalText(b []byte) error {
	v, err := ParseNormalizeMethod(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

func (n NormalizeRange) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *NormalizeRange) UnmarshalText(b []byte) error {
	v, err := ParseNormalizeRange(string(b))
	if err != nil {
		return err
	}
	*n = v

	return nil
}
