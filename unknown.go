package assetschema

import "google.golang.org/protobuf/encoding/protowire"

// UnknownField is one wire frame whose tag is not declared in the decoder's
// schema. The raw value bytes are retained verbatim so a record decoded with
// an older schema re-encodes without losing data written by a newer sender.
type UnknownField struct {
	Num  protowire.Number
	Type protowire.Type
	Raw  []byte // value bytes exactly as read, tag excluded
}

// UnknownFields is the side mapping from unrecognized tag to raw bytes,
// ordered as encountered on the wire.
type UnknownFields []UnknownField

// appendTo re-emits the retained frames unchanged after the known fields.
func (u UnknownFields) appendTo(b []byte) []byte {
	for _, f := range u {
		b = protowire.AppendTag(b, f.Num, f.Type)
		b = append(b, f.Raw...)
	}
	return b
}

// consumeUnknown reads the value of an unrecognized (or wrongly typed) tag and
// returns its raw bytes. Returns n < 0 on a malformed frame.
func consumeUnknown(num protowire.Number, typ protowire.Type, data []byte) (UnknownField, int) {
	n := protowire.ConsumeFieldValue(num, typ, data)
	if n < 0 {
		return UnknownField{}, n
	}
	raw := make([]byte, n)
	copy(raw, data[:n])
	return UnknownField{Num: num, Type: typ, Raw: raw}, n
}
