package decimal128

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// MarshalBSONValue writes d as a BSON decimal128 value: the low word then
// the high word, each little-endian.
func (d Decimal) MarshalBSONValue() (t bsontype.Type, data []byte, err error) {
	defer Error.WrapP(&err)

	return bson.MarshalValue(d.Primitive())
}

// UnmarshalBSONValue reads a BSON decimal128 value into d.
func (d *Decimal) UnmarshalBSONValue(t bsontype.Type, data []byte) (err error) {
	defer Error.WrapP(&err)

	if t != bsontype.Decimal128 {
		return Error.New("cannot unmarshal BSON %s into a decimal", t)
	}

	p, ok := bson.RawValue{Type: t, Value: data}.Decimal128OK()
	if !ok {
		return Error.New("short BSON decimal128 value: %d bytes", len(data))
	}

	*d = FromPrimitive(p)

	return nil
}

// MarshalText returns the String form of d.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses text with TiesToEven. Invalid text is an error here,
// unlike Parse which yields NaN.
func (d *Decimal) UnmarshalText(text []byte) error {
	v, _, ok := parse(string(text), TiesToEven)
	if !ok {
		return Error.New("invalid decimal: %q", text)
	}

	*d = v

	return nil
}

// extendedJSON is the MongoDB Extended JSON form of a decimal128.
type extendedJSON struct {
	NumberDecimal *string `json:"$numberDecimal"`
}

// MarshalJSON writes d in Extended JSON: {"$numberDecimal":"…"}.
func (d Decimal) MarshalJSON() ([]byte, error) {
	s := d.String()

	return json.Marshal(extendedJSON{NumberDecimal: &s})
}

// UnmarshalJSON reads either the Extended JSON form or a bare JSON string.
func (d *Decimal) UnmarshalJSON(data []byte) (err error) {
	defer Error.WrapP(&err)

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return d.UnmarshalText([]byte(s))
	}

	var ext extendedJSON
	if err := json.Unmarshal(data, &ext); err != nil {
		return err
	}

	if ext.NumberDecimal == nil {
		return Error.New("missing $numberDecimal in %s", data)
	}

	return d.UnmarshalText([]byte(*ext.NumberDecimal))
}
