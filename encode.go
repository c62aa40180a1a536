/**
 * Copyright 2024 Voxhall Labs.
 * All rights reserved.
 */

package assetschema

import (
	"math"
	"sort"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field emission follows default-elision: zero-valued scalars, empty strings
// and enum zero values are skipped and restored as defaults on decode. Nested
// records are emitted whenever the pointer is set, even with an empty payload,
// so presence survives a round trip. All multi-byte values are fixed-width and
// platform independent.

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == `` {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendStrings(b []byte, num protowire.Number, values []string) []byte {
	for _, s := range values {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	return b
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	return appendInt64(b, num, int64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendMessage(b []byte, num protowire.Number, body []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}

// appendTimestamp emits the seconds/nanos layout; the zero time means absent.
func appendTimestamp(b []byte, num protowire.Number, t time.Time) []byte {
	if t.IsZero() {
		return b
	}
	var body []byte
	body = appendInt64(body, timestampTagSeconds, t.Unix())
	body = appendInt64(body, timestampTagNanos, int64(t.Nanosecond()))
	return appendMessage(b, num, body)
}

func appendAccount(b []byte, a *Account) []byte {
	b = appendString(b, accountTagAccountID, a.AccountID)
	b = appendInt32(b, accountTagPrivilege, int32(a.Privilege))
	b = appendString(b, accountTagDisplayName, a.DisplayName)
	b = appendString(b, accountTagFamilyName, a.FamilyName)
	b = appendString(b, accountTagGivenName, a.GivenName)
	b = appendString(b, accountTagPhotoURL, a.PhotoURL)
	b = appendString(b, accountTagDescription, a.Description)
	b = appendString(b, accountTagLocation, a.Location)
	b = appendString(b, accountTagPersonID, a.PersonID)
	return a.Unknown.appendTo(b)
}

func appendModelInfo(b []byte, m *ModelInfo) []byte {
	b = appendInt64(b, modelInfoTagVertexCount, m.VertexCount)
	b = appendBool(b, modelInfoTagHasAnimations, m.HasAnimations)
	return m.Unknown.appendTo(b)
}

func appendImageInfo(b []byte, m *ImageInfo) []byte {
	b = appendInt32(b, imageInfoTagWidth, m.Width)
	b = appendInt32(b, imageInfoTagHeight, m.Height)
	b = appendString(b, imageInfoTagMimeType, m.MimeType)
	return m.Unknown.appendTo(b)
}

func appendMaterialInfo(b []byte, m *MaterialInfo) []byte {
	b = appendString(b, materialInfoTagShaderName, m.ShaderName)
	b = appendBool(b, materialInfoTagDoubleSided, m.DoubleSided)
	return m.Unknown.appendTo(b)
}

func appendOtherInfo(b []byte, m *OtherInfo) []byte {
	b = appendString(b, otherInfoTagMimeType, m.MimeType)
	return m.Unknown.appendTo(b)
}

func appendTypeInfo(b []byte, t *TypeInfo) []byte {
	if t.Model != nil {
		b = appendMessage(b, typeInfoTagModel, appendModelInfo(nil, t.Model))
	}
	if t.Image != nil {
		b = appendMessage(b, typeInfoTagImage, appendImageInfo(nil, t.Image))
	}
	if t.Material != nil {
		b = appendMessage(b, typeInfoTagMaterial, appendMaterialInfo(nil, t.Material))
	}
	if t.Other != nil {
		b = appendMessage(b, typeInfoTagOther, appendOtherInfo(nil, t.Other))
	}
	return t.Unknown.appendTo(b)
}

// appendElement never emits the deprecated create_time (tag 4); the field is
// legacy read only.
func appendElement(b []byte, e *Element) []byte {
	b = appendString(b, elementTagElementID, e.ElementID)
	b = appendString(b, elementTagFilePath, e.FilePath)
	b = appendString(b, elementTagDataURL, e.DataURL)
	b = appendInt32(b, elementTagElementType, int32(e.ElementType))
	if e.TypeInfo != nil {
		b = appendMessage(b, elementTagTypeInfo, appendTypeInfo(nil, e.TypeInfo))
	}
	return e.Unknown.appendTo(b)
}

// appendComplexity never emits the deprecated texture_count (tag 1000).
func appendComplexity(b []byte, c *FormatComplexity) []byte {
	b = appendInt64(b, complexityTagTriangleCount, c.TriangleCount)
	b = appendInt64(b, complexityTagTexelCount, c.TexelCount)
	b = appendInt64(b, complexityTagShaderCount, c.ShaderCount)
	b = appendInt32(b, complexityTagLODHint, c.LODHint)
	return c.Unknown.appendTo(b)
}

// appendScale elides a scaler of exactly 1, the declared default; decode
// restores it. A scaler of 0 is encoded explicitly so the Validator can see it.
func appendScale(b []byte, s *FormatScale) []byte {
	b = appendInt32(b, scaleTagBaseUnit, int32(s.BaseUnit))
	if s.Scaler != 1 {
		b = protowire.AppendTag(b, scaleTagScaler, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(s.Scaler))
	}
	return s.Unknown.appendTo(b)
}

func appendFormat(b []byte, f *Format) []byte {
	if f.Root != nil {
		b = appendMessage(b, formatTagRoot, appendElement(nil, f.Root))
	}
	for _, res := range f.Resources {
		b = appendMessage(b, formatTagResource, appendElement(nil, res))
	}
	b = appendString(b, formatTagFormatID, f.FormatID)
	if f.Complexity != nil {
		b = appendMessage(b, formatTagComplexity, appendComplexity(nil, f.Complexity))
	}
	if f.Scale != nil {
		b = appendMessage(b, formatTagScale, appendScale(nil, f.Scale))
	}
	return f.Unknown.appendTo(b)
}

func appendFormatList(b []byte, fl *FormatList) []byte {
	for _, f := range fl.Formats {
		b = appendMessage(b, formatListTagFormat, appendFormat(nil, f))
	}
	return fl.Unknown.appendTo(b)
}

func appendAdminData(b []byte, a *AdminData) []byte {
	b = appendStrings(b, adminDataTagTag, a.Tags)
	return a.Unknown.appendTo(b)
}

func appendRemixInfo(b []byte, r *RemixInfo) []byte {
	b = appendStrings(b, remixInfoTagSourceAsset, r.SourceAssets)
	return r.Unknown.appendTo(b)
}

func appendVector3(b []byte, v *Vector3) []byte {
	b = appendDouble(b, vector3TagX, v.X)
	b = appendDouble(b, vector3TagY, v.Y)
	b = appendDouble(b, vector3TagZ, v.Z)
	return v.Unknown.appendTo(b)
}

// appendCameraParams always emits the full 16-entry packed matrix; the matrix
// has fixed shape, not per-entry presence.
func appendCameraParams(b []byte, c *CameraParams) []byte {
	var packed []byte
	for _, v := range c.Matrix {
		packed = protowire.AppendFixed64(packed, math.Float64bits(v))
	}
	b = appendMessage(b, cameraTagMatrix, packed)
	if c.Target != nil {
		b = appendMessage(b, cameraTagTarget, appendVector3(nil, c.Target))
	}
	b = appendDouble(b, cameraTagFieldOfView, c.FieldOfView)
	return c.Unknown.appendTo(b)
}

// appendMapEntry emits one key/value entry of a map field.
func appendMapEntry(b []byte, num protowire.Number, key string, value []byte) []byte {
	var entry []byte
	entry = appendString(entry, mapEntryTagKey, key)
	entry = appendMessage(entry, mapEntryTagValue, value)
	return appendMessage(b, num, entry)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// appendAsset never emits the deprecated format map (tag 7); format_list is
// the authoritative mapping. Map entries are emitted in sorted key order so
// encoding is deterministic.
func appendAsset(b []byte, a *Asset) []byte {
	b = appendString(b, assetTagAssetID, a.AssetID)
	b = appendString(b, assetTagDisplayName, a.DisplayName)
	b = appendString(b, assetTagDescription, a.Description)
	b = appendStrings(b, assetTagTag, a.Tags)
	b = appendTimestamp(b, assetTagCreateTime, a.CreateTime)
	b = appendTimestamp(b, assetTagUpdateTime, a.UpdateTime)
	for _, t := range a.Thumbnails {
		b = appendMessage(b, assetTagThumbnail, appendElement(nil, t))
	}
	b = appendString(b, assetTagAccountID, a.AccountID)
	b = appendInt32(b, assetTagAccessLevel, int32(a.AccessLevel))
	if a.AdminData != nil {
		b = appendMessage(b, assetTagAdminData, appendAdminData(nil, a.AdminData))
	}
	if a.RemixInfo != nil {
		b = appendMessage(b, assetTagRemixInfo, appendRemixInfo(nil, a.RemixInfo))
	}
	b = appendString(b, assetTagPublishedAssetID, a.PublishedAssetID)
	for _, key := range sortedKeys(a.FormatLists) {
		b = appendMapEntry(b, assetTagFormatList, key, appendFormatList(nil, a.FormatLists[key]))
	}
	b = appendInt32(b, assetTagLicense, int32(a.License))
	if a.CameraParams != nil {
		b = appendMessage(b, assetTagCameraParams, appendCameraParams(nil, a.CameraParams))
	}
	return a.Unknown.appendTo(b)
}
