/**
 * Copyright 2024 Voxhall Labs.
 * All rights reserved.
 */

package assetschema

import (
	"encoding/binary"
	"fmt"

	"github.com/tryfix/errors"
)

// MalformedInputError reports a framing or truncation error during decode.
// It is fatal to the single decode call that produced it; no partial record
// is returned alongside it.
type MalformedInputError struct {
	Schema string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf(`malformed input for schema [%s]: %s`, e.Schema, e.Reason)
}

func malformed(schema, reason string) *MalformedInputError {
	return &MalformedInputError{Schema: schema, Reason: reason}
}

// Codec encodes catalog records to the tag+type+length framed wire format and
// decodes the inverse, resolving tags through the Registry. A Codec is
// stateless and safe for concurrent use.
//
// The Codec assumes records handed to Encode are pre-validated; it does not
// re-check invariants such as oneof exclusivity.
type Codec struct {
	registry *Registry
}

// NewCodec returns a codec bound to the given registry.
func NewCodec(registry *Registry) *Codec {
	return &Codec{registry: registry}
}

// Encode serializes a record to bare message bytes, bit-exact with the
// catalog's historical field tags. Deprecated fields are never emitted;
// retained unknown fields are re-emitted verbatim after the known ones.
func (c *Codec) Encode(r Record) ([]byte, error) {
	if r == nil {
		return nil, errors.New(`cannot encode a nil record`)
	}

	switch v := r.(type) {
	case *Account:
		return appendAccount(nil, v), nil
	case *Element:
		return appendElement(nil, v), nil
	case *TypeInfo:
		return appendTypeInfo(nil, v), nil
	case *ModelInfo:
		return appendModelInfo(nil, v), nil
	case *ImageInfo:
		return appendImageInfo(nil, v), nil
	case *MaterialInfo:
		return appendMaterialInfo(nil, v), nil
	case *OtherInfo:
		return appendOtherInfo(nil, v), nil
	case *Format:
		return appendFormat(nil, v), nil
	case *FormatList:
		return appendFormatList(nil, v), nil
	case *FormatComplexity:
		return appendComplexity(nil, v), nil
	case *FormatScale:
		return appendScale(nil, v), nil
	case *AdminData:
		return appendAdminData(nil, v), nil
	case *RemixInfo:
		return appendRemixInfo(nil, v), nil
	case *Vector3:
		return appendVector3(nil, v), nil
	case *CameraParams:
		return appendCameraParams(nil, v), nil
	case *Asset:
		return appendAsset(nil, v), nil
	}

	return nil, errors.New(fmt.Sprintf(`cannot encode record of schema [%s]`, r.schemaName()))
}

// Decode parses bare message bytes as the named record type.
func (c *Codec) Decode(typeName string, data []byte) (Record, error) {
	switch typeName {
	case `Account`:
		return parseAccount(data)
	case `Element`:
		return parseElement(data)
	case `TypeInfo`:
		return parseTypeInfo(data)
	case `ModelInfo`:
		return parseModelInfo(data)
	case `ImageInfo`:
		return parseImageInfo(data)
	case `MaterialInfo`:
		return parseMaterialInfo(data)
	case `OtherInfo`:
		return parseOtherInfo(data)
	case `Format`:
		return parseFormat(data)
	case `FormatList`:
		return parseFormatList(data)
	case `FormatComplexity`:
		return parseComplexity(data)
	case `FormatScale`:
		return parseScale(data)
	case `AdminData`:
		return parseAdminData(data)
	case `RemixInfo`:
		return parseRemixInfo(data)
	case `Vector3`:
		return parseVector3(data)
	case `CameraParams`:
		return parseCameraParams(data)
	case `Asset`:
		return parseAsset(data)
	}

	return nil, errors.New(fmt.Sprintf(`cannot decode record of schema [%s]`, typeName))
}

// DecodeAsset parses bare message bytes as an Asset.
func (c *Codec) DecodeAsset(data []byte) (*Asset, error) {
	return parseAsset(data)
}

// DecodeAccount parses bare message bytes as an Account.
func (c *Codec) DecodeAccount(data []byte) (*Account, error) {
	return parseAccount(data)
}

// EncodeEnvelope returns the record in a self-describing frame: the schema id
// is prepended so the receiver resolves the record type without out-of-band
// knowledge.
//
//	╔════════════════════╤════════════════════╤═══════════════════════╗
//	║ magic byte(1 byte) │ schema id(4 bytes) │ wire encoded message  ║
//	╚════════════════════╧════════════════════╧═══════════════════════╝
func (c *Codec) EncodeEnvelope(r Record) ([]byte, error) {
	if r == nil {
		return nil, errors.New(`cannot encode a nil record`)
	}

	id, err := c.registry.SchemaID(r.schemaName())
	if err != nil {
		return nil, err
	}

	body, err := c.Encode(r)
	if err != nil {
		return nil, err
	}

	return append(encodePrefix(id), body...), nil
}

// DecodeEnvelope parses a self-describing frame produced by EncodeEnvelope,
// resolving the record type through the registry's schema ids.
func (c *Codec) DecodeEnvelope(data []byte) (Record, error) {
	if len(data) < 5 {
		return nil, malformed(`envelope`, `frame shorter than the 5 byte prefix`)
	}
	if data[0] != magicByte {
		return nil, malformed(`envelope`, fmt.Sprintf(`unexpected magic byte %#x`, data[0]))
	}

	name, err := c.registry.SchemaName(decodePrefix(data))
	if err != nil {
		return nil, errors.WithPrevious(err, `cannot resolve envelope schema id`)
	}

	return c.Decode(name, data[5:])
}

const magicByte = byte(0x00)

func encodePrefix(id int) []byte {
	byt := make([]byte, 5)
	binary.BigEndian.PutUint32(byt[1:], uint32(id))
	return byt
}

func decodePrefix(byt []byte) int {
	return int(binary.BigEndian.Uint32(byt[1:5]))
}
