/**
 * Copyright 2024 Voxhall Labs.
 * All rights reserved.
 */

package assetschema

import (
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// Parsing is strict about framing and lenient about content: a truncated or
// invalid frame aborts the whole decode with MalformedInputError, while tags
// that are undeclared (or declared with a different wire type) are retained
// as unknown fields and re-emitted on encode. Recognized-but-deprecated tags
// populate the Legacy sub-structs for read-only access.

func takeTag(schema string, data []byte) (protowire.Number, protowire.Type, []byte, error) {
	num, typ, n := protowire.ConsumeTag(data)
	if n < 0 {
		return 0, 0, nil, malformed(schema, `truncated or invalid field tag`)
	}
	return num, typ, data[n:], nil
}

func takeString(schema string, num protowire.Number, data []byte) (string, []byte, error) {
	v, n := protowire.ConsumeString(data)
	if n < 0 {
		return ``, nil, malformed(schema, fmt.Sprintf(`truncated string value for tag %d`, num))
	}
	return v, data[n:], nil
}

func takeBytes(schema string, num protowire.Number, data []byte) ([]byte, []byte, error) {
	v, n := protowire.ConsumeBytes(data)
	if n < 0 {
		return nil, nil, malformed(schema, fmt.Sprintf(`truncated length-delimited value for tag %d`, num))
	}
	return v, data[n:], nil
}

func takeVarint(schema string, num protowire.Number, data []byte) (uint64, []byte, error) {
	v, n := protowire.ConsumeVarint(data)
	if n < 0 {
		return 0, nil, malformed(schema, fmt.Sprintf(`truncated varint value for tag %d`, num))
	}
	return v, data[n:], nil
}

func takeDouble(schema string, num protowire.Number, data []byte) (float64, []byte, error) {
	v, n := protowire.ConsumeFixed64(data)
	if n < 0 {
		return 0, nil, malformed(schema, fmt.Sprintf(`truncated fixed64 value for tag %d`, num))
	}
	return math.Float64frombits(v), data[n:], nil
}

func takeUnknown(schema string, num protowire.Number, typ protowire.Type, data []byte, into *UnknownFields) ([]byte, error) {
	f, n := consumeUnknown(num, typ, data)
	if n < 0 {
		return nil, malformed(schema, fmt.Sprintf(`truncated value for tag %d`, num))
	}
	*into = append(*into, f)
	return data[n:], nil
}

// parseTimestamp reads the nested seconds/nanos layout. An empty body is the
// epoch; times normalize to UTC.
func parseTimestamp(schema string, body []byte) (time.Time, error) {
	var sec, nanos int64
	for len(body) > 0 {
		num, typ, rest, err := takeTag(schema, body)
		if err != nil {
			return time.Time{}, err
		}
		body = rest
		switch {
		case num == timestampTagSeconds && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, body)
			if err != nil {
				return time.Time{}, err
			}
			sec, body = int64(v), rest
		case num == timestampTagNanos && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, body)
			if err != nil {
				return time.Time{}, err
			}
			nanos, body = int64(v), rest
		default:
			n := protowire.ConsumeFieldValue(num, typ, body)
			if n < 0 {
				return time.Time{}, malformed(schema, fmt.Sprintf(`truncated timestamp value for tag %d`, num))
			}
			body = body[n:]
		}
	}
	return time.Unix(sec, nanos).UTC(), nil
}

// parseMapEntry splits one map entry into its key and raw value bytes.
func parseMapEntry(schema string, body []byte) (string, []byte, error) {
	var key string
	value := []byte{}
	for len(body) > 0 {
		num, typ, rest, err := takeTag(schema, body)
		if err != nil {
			return ``, nil, err
		}
		body = rest
		switch {
		case num == mapEntryTagKey && typ == protowire.BytesType:
			if key, body, err = takeString(schema, num, body); err != nil {
				return ``, nil, err
			}
		case num == mapEntryTagValue && typ == protowire.BytesType:
			if value, body, err = takeBytes(schema, num, body); err != nil {
				return ``, nil, err
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, body)
			if n < 0 {
				return ``, nil, malformed(schema, fmt.Sprintf(`truncated map entry value for tag %d`, num))
			}
			body = body[n:]
		}
	}
	return key, value, nil
}

func parseAccount(data []byte) (*Account, error) {
	const schema = `Account`
	a := new(Account)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == accountTagAccountID && typ == protowire.BytesType:
			if a.AccountID, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == accountTagPrivilege && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			a.Privilege, data = Privilege(int32(v)), rest
		case num == accountTagDisplayName && typ == protowire.BytesType:
			if a.DisplayName, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == accountTagFamilyName && typ == protowire.BytesType:
			if a.FamilyName, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == accountTagGivenName && typ == protowire.BytesType:
			if a.GivenName, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == accountTagPhotoURL && typ == protowire.BytesType:
			if a.PhotoURL, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == accountTagDescription && typ == protowire.BytesType:
			if a.Description, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == accountTagLocation && typ == protowire.BytesType:
			if a.Location, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == accountTagPersonID && typ == protowire.BytesType:
			if a.PersonID, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		default:
			if data, err = takeUnknown(schema, num, typ, data, &a.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

func parseModelInfo(data []byte) (*ModelInfo, error) {
	const schema = `ModelInfo`
	m := new(ModelInfo)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == modelInfoTagVertexCount && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			m.VertexCount, data = int64(v), rest
		case num == modelInfoTagHasAnimations && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			m.HasAnimations, data = v != 0, rest
		default:
			if data, err = takeUnknown(schema, num, typ, data, &m.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func parseImageInfo(data []byte) (*ImageInfo, error) {
	const schema = `ImageInfo`
	m := new(ImageInfo)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == imageInfoTagWidth && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			m.Width, data = int32(v), rest
		case num == imageInfoTagHeight && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			m.Height, data = int32(v), rest
		case num == imageInfoTagMimeType && typ == protowire.BytesType:
			if m.MimeType, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		default:
			if data, err = takeUnknown(schema, num, typ, data, &m.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func parseMaterialInfo(data []byte) (*MaterialInfo, error) {
	const schema = `MaterialInfo`
	m := new(MaterialInfo)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == materialInfoTagShaderName && typ == protowire.BytesType:
			if m.ShaderName, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == materialInfoTagDoubleSided && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			m.DoubleSided, data = v != 0, rest
		default:
			if data, err = takeUnknown(schema, num, typ, data, &m.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func parseOtherInfo(data []byte) (*OtherInfo, error) {
	const schema = `OtherInfo`
	m := new(OtherInfo)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == otherInfoTagMimeType && typ == protowire.BytesType:
			if m.MimeType, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		default:
			if data, err = takeUnknown(schema, num, typ, data, &m.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func parseTypeInfo(data []byte) (*TypeInfo, error) {
	const schema = `TypeInfo`
	t := new(TypeInfo)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == typeInfoTagModel && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if t.Model, err = parseModelInfo(body); err != nil {
				return nil, err
			}
			data = rest
		case num == typeInfoTagImage && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if t.Image, err = parseImageInfo(body); err != nil {
				return nil, err
			}
			data = rest
		case num == typeInfoTagMaterial && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if t.Material, err = parseMaterialInfo(body); err != nil {
				return nil, err
			}
			data = rest
		case num == typeInfoTagOther && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if t.Other, err = parseOtherInfo(body); err != nil {
				return nil, err
			}
			data = rest
		default:
			if data, err = takeUnknown(schema, num, typ, data, &t.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func parseElement(data []byte) (*Element, error) {
	const schema = `Element`
	e := new(Element)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == elementTagElementID && typ == protowire.BytesType:
			if e.ElementID, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == elementTagFilePath && typ == protowire.BytesType:
			if e.FilePath, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == elementTagDataURL && typ == protowire.BytesType:
			if e.DataURL, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == elementTagCreateTime && typ == protowire.BytesType:
			// deprecated, legacy read only
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if e.Legacy.CreateTime, err = parseTimestamp(schema, body); err != nil {
				return nil, err
			}
			data = rest
		case num == elementTagElementType && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			e.ElementType, data = ElementType(int32(v)), rest
		case num == elementTagTypeInfo && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if e.TypeInfo, err = parseTypeInfo(body); err != nil {
				return nil, err
			}
			data = rest
		default:
			if data, err = takeUnknown(schema, num, typ, data, &e.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return e, nil
}

func parseComplexity(data []byte) (*FormatComplexity, error) {
	const schema = `FormatComplexity`
	c := new(FormatComplexity)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == complexityTagTriangleCount && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			c.TriangleCount, data = int64(v), rest
		case num == complexityTagTexelCount && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			c.TexelCount, data = int64(v), rest
		case num == complexityTagShaderCount && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			c.ShaderCount, data = int64(v), rest
		case num == complexityTagLODHint && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			c.LODHint, data = int32(v), rest
		case num == complexityTagTextureCount && typ == protowire.VarintType:
			// deprecated, legacy read only
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			tc := int64(v)
			c.Legacy.TextureCount, data = &tc, rest
		default:
			if data, err = takeUnknown(schema, num, typ, data, &c.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func parseScale(data []byte) (*FormatScale, error) {
	const schema = `FormatScale`
	s := &FormatScale{Scaler: 1} // declared default when absent
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == scaleTagBaseUnit && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			s.BaseUnit, data = BaseUnit(int32(v)), rest
		case num == scaleTagScaler && typ == protowire.Fixed64Type:
			if s.Scaler, data, err = takeDouble(schema, num, data); err != nil {
				return nil, err
			}
		default:
			if data, err = takeUnknown(schema, num, typ, data, &s.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func parseFormat(data []byte) (*Format, error) {
	const schema = `Format`
	f := new(Format)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == formatTagRoot && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if f.Root, err = parseElement(body); err != nil {
				return nil, err
			}
			data = rest
		case num == formatTagResource && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			res, err := parseElement(body)
			if err != nil {
				return nil, err
			}
			f.Resources, data = append(f.Resources, res), rest
		case num == formatTagFormatID && typ == protowire.BytesType:
			if f.FormatID, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == formatTagComplexity && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if f.Complexity, err = parseComplexity(body); err != nil {
				return nil, err
			}
			data = rest
		case num == formatTagScale && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if f.Scale, err = parseScale(body); err != nil {
				return nil, err
			}
			data = rest
		default:
			if data, err = takeUnknown(schema, num, typ, data, &f.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func parseFormatList(data []byte) (*FormatList, error) {
	const schema = `FormatList`
	fl := new(FormatList)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == formatListTagFormat && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			f, err := parseFormat(body)
			if err != nil {
				return nil, err
			}
			fl.Formats, data = append(fl.Formats, f), rest
		default:
			if data, err = takeUnknown(schema, num, typ, data, &fl.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return fl, nil
}

func parseAdminData(data []byte) (*AdminData, error) {
	const schema = `AdminData`
	a := new(AdminData)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == adminDataTagTag && typ == protowire.BytesType:
			v, rest, err := takeString(schema, num, data)
			if err != nil {
				return nil, err
			}
			a.Tags, data = append(a.Tags, v), rest
		default:
			if data, err = takeUnknown(schema, num, typ, data, &a.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

func parseRemixInfo(data []byte) (*RemixInfo, error) {
	const schema = `RemixInfo`
	r := new(RemixInfo)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == remixInfoTagSourceAsset && typ == protowire.BytesType:
			v, rest, err := takeString(schema, num, data)
			if err != nil {
				return nil, err
			}
			r.SourceAssets, data = append(r.SourceAssets, v), rest
		default:
			if data, err = takeUnknown(schema, num, typ, data, &r.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func parseVector3(data []byte) (*Vector3, error) {
	const schema = `Vector3`
	v := new(Vector3)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == vector3TagX && typ == protowire.Fixed64Type:
			if v.X, data, err = takeDouble(schema, num, data); err != nil {
				return nil, err
			}
		case num == vector3TagY && typ == protowire.Fixed64Type:
			if v.Y, data, err = takeDouble(schema, num, data); err != nil {
				return nil, err
			}
		case num == vector3TagZ && typ == protowire.Fixed64Type:
			if v.Z, data, err = takeDouble(schema, num, data); err != nil {
				return nil, err
			}
		default:
			if data, err = takeUnknown(schema, num, typ, data, &v.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

func parseCameraParams(data []byte) (*CameraParams, error) {
	const schema = `CameraParams`
	c := new(CameraParams)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == cameraTagMatrix && typ == protowire.BytesType:
			packed, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if len(packed) != 16*8 {
				return nil, malformed(schema, fmt.Sprintf(`matrix must hold 16 doubles, got %d bytes`, len(packed)))
			}
			for i := range c.Matrix {
				bits, n := protowire.ConsumeFixed64(packed)
				if n < 0 {
					return nil, malformed(schema, `truncated matrix entry`)
				}
				c.Matrix[i], packed = math.Float64frombits(bits), packed[n:]
			}
			data = rest
		case num == cameraTagTarget && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if c.Target, err = parseVector3(body); err != nil {
				return nil, err
			}
			data = rest
		case num == cameraTagFieldOfView && typ == protowire.Fixed64Type:
			if c.FieldOfView, data, err = takeDouble(schema, num, data); err != nil {
				return nil, err
			}
		default:
			if data, err = takeUnknown(schema, num, typ, data, &c.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func parseAsset(data []byte) (*Asset, error) {
	const schema = `Asset`
	a := new(Asset)
	for len(data) > 0 {
		num, typ, rest, err := takeTag(schema, data)
		if err != nil {
			return nil, err
		}
		data = rest
		switch {
		case num == assetTagAssetID && typ == protowire.BytesType:
			if a.AssetID, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == assetTagDisplayName && typ == protowire.BytesType:
			if a.DisplayName, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == assetTagDescription && typ == protowire.BytesType:
			if a.Description, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == assetTagTag && typ == protowire.BytesType:
			v, rest, err := takeString(schema, num, data)
			if err != nil {
				return nil, err
			}
			a.Tags, data = append(a.Tags, v), rest
		case num == assetTagCreateTime && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if a.CreateTime, err = parseTimestamp(schema, body); err != nil {
				return nil, err
			}
			data = rest
		case num == assetTagUpdateTime && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if a.UpdateTime, err = parseTimestamp(schema, body); err != nil {
				return nil, err
			}
			data = rest
		case num == assetTagLegacyFormat && typ == protowire.BytesType:
			// deprecated map, legacy read only
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			key, value, err := parseMapEntry(schema, body)
			if err != nil {
				return nil, err
			}
			f, err := parseFormat(value)
			if err != nil {
				return nil, err
			}
			if a.Legacy.Formats == nil {
				a.Legacy.Formats = make(map[string]*Format)
			}
			a.Legacy.Formats[key], data = f, rest
		case num == assetTagThumbnail && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			t, err := parseElement(body)
			if err != nil {
				return nil, err
			}
			a.Thumbnails, data = append(a.Thumbnails, t), rest
		case num == assetTagAccountID && typ == protowire.BytesType:
			if a.AccountID, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == assetTagAccessLevel && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			a.AccessLevel, data = AccessLevel(int32(v)), rest
		case num == assetTagAdminData && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if a.AdminData, err = parseAdminData(body); err != nil {
				return nil, err
			}
			data = rest
		case num == assetTagRemixInfo && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if a.RemixInfo, err = parseRemixInfo(body); err != nil {
				return nil, err
			}
			data = rest
		case num == assetTagPublishedAssetID && typ == protowire.BytesType:
			if a.PublishedAssetID, data, err = takeString(schema, num, data); err != nil {
				return nil, err
			}
		case num == assetTagFormatList && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			key, value, err := parseMapEntry(schema, body)
			if err != nil {
				return nil, err
			}
			fl, err := parseFormatList(value)
			if err != nil {
				return nil, err
			}
			if a.FormatLists == nil {
				a.FormatLists = make(map[string]*FormatList)
			}
			a.FormatLists[key], data = fl, rest
		case num == assetTagLicense && typ == protowire.VarintType:
			v, rest, err := takeVarint(schema, num, data)
			if err != nil {
				return nil, err
			}
			a.License, data = License(int32(v)), rest
		case num == assetTagCameraParams && typ == protowire.BytesType:
			body, rest, err := takeBytes(schema, num, data)
			if err != nil {
				return nil, err
			}
			if a.CameraParams, err = parseCameraParams(body); err != nil {
				return nil, err
			}
			data = rest
		default:
			if data, err = takeUnknown(schema, num, typ, data, &a.Unknown); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}
