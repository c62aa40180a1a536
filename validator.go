/**
 * Copyright 2024 Voxhall Labs.
 * All rights reserved.
 */

package assetschema

import (
	"fmt"
	"math"
	"strings"

	"github.com/tryfix/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// ViolationKind classifies a single validation finding.
type ViolationKind uint8

const (
	MissingRequiredField ViolationKind = iota
	OneofExclusivityViolation
	// UnknownEnumValue is informational: an out-of-range enum value from a
	// newer sender is reported, not treated as corruption.
	UnknownEnumValue
	RangeViolation
	MalformedReference
	// DeprecatedFieldWrite is emitted in strict mode only, when a legacy
	// field new code must not populate carries a value.
	DeprecatedFieldWrite
)

func (k ViolationKind) String() string {
	switch k {
	case MissingRequiredField:
		return `MissingRequiredField`
	case OneofExclusivityViolation:
		return `OneofExclusivityViolation`
	case UnknownEnumValue:
		return `UnknownEnumValue`
	case RangeViolation:
		return `RangeViolation`
	case MalformedReference:
		return `MalformedReference`
	case DeprecatedFieldWrite:
		return `DeprecatedFieldWrite`
	}
	return `unknown`
}

// Violation is one validation finding. FieldPath is rooted at the validated
// record's type name, e.g. `Format.root` or `Asset.format_list[OBJ].format[0].root`.
type Violation struct {
	FieldPath string
	Kind      ViolationKind
	Detail    string
}

func (v Violation) String() string {
	return fmt.Sprintf(`%s{%s}`, v.Kind, v.FieldPath)
}

// ValidatorOption is a type to host NewValidator configurations.
type ValidatorOption func(*Validator)

// Strict returns a configuration that additionally flags populated deprecated
// fields as DeprecatedFieldWrite. Legacy reads stay violation-free outside
// strict mode.
func Strict() ValidatorOption {
	return func(v *Validator) {
		v.strict = true
	}
}

// Validator walks records and collects Violations. It never mutates its input,
// performs no I/O and short-circuits nothing: the returned list is complete so
// callers can report every problem in one pass. Checks run in a fixed order
// (required, oneof, enum range, numeric sanity, reference shape, then nested
// records in tag order with map keys sorted), so output is stable and diffable.
//
// Policy is external: the Validator reports, callers decide whether to reject,
// log or quarantine.
type Validator struct {
	registry *Registry
	strict   bool
}

// NewValidator returns a validator resolving field names through the given registry.
func NewValidator(registry *Registry, opts ...ValidatorOption) *Validator {
	v := &Validator{registry: registry}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks the record's invariants and returns every violation found.
// Running it twice over the same record yields identical lists.
func (v *Validator) Validate(r Record) ([]Violation, error) {
	if r == nil {
		return nil, errors.New(`cannot validate a nil record`)
	}

	var out []Violation
	prefix := r.schemaName()

	switch rec := r.(type) {
	case *Account:
		v.validateAccount(prefix, rec, &out)
	case *Element:
		v.validateElement(prefix, rec, &out)
	case *TypeInfo:
		v.validateTypeInfo(prefix, rec, &out)
	case *ModelInfo, *ImageInfo, *MaterialInfo, *OtherInfo, *AdminData, *Vector3:
		// no invariants of their own
	case *Format:
		v.validateFormat(prefix, rec, &out)
	case *FormatList:
		v.validateFormatList(prefix, rec, &out)
	case *FormatComplexity:
		v.validateComplexity(prefix, rec, &out)
	case *FormatScale:
		v.validateScale(prefix, rec, &out)
	case *RemixInfo:
		v.validateRemixInfo(prefix, rec, &out)
	case *CameraParams:
		v.validateCameraParams(prefix, rec, &out)
	case *Asset:
		v.validateAsset(prefix, rec, &out)
	default:
		return nil, errors.New(fmt.Sprintf(`cannot validate record of schema [%s]`, r.schemaName()))
	}

	return out, nil
}

func (v *Validator) path(prefix, typeName string, num protowire.Number) string {
	return prefix + `.` + v.registry.fieldName(typeName, num)
}

func (v *Validator) checkEnum(out *[]Violation, path string, value, max int32) {
	if value < 0 || value > max {
		*out = append(*out, Violation{
			FieldPath: path,
			Kind:      UnknownEnumValue,
			Detail:    fmt.Sprintf(`undeclared enum value %d`, value),
		})
	}
}

func (v *Validator) checkNonNegative(out *[]Violation, path string, value int64) {
	if value < 0 {
		*out = append(*out, Violation{
			FieldPath: path,
			Kind:      RangeViolation,
			Detail:    fmt.Sprintf(`count must be non-negative, got %d`, value),
		})
	}
}

func (v *Validator) validateAccount(prefix string, a *Account, out *[]Violation) {
	if a.AccountID == `` {
		*out = append(*out, Violation{FieldPath: v.path(prefix, `Account`, accountTagAccountID), Kind: MissingRequiredField})
	}
	if a.PersonID == `` {
		*out = append(*out, Violation{FieldPath: v.path(prefix, `Account`, accountTagPersonID), Kind: MissingRequiredField})
	}
	v.checkEnum(out, v.path(prefix, `Account`, accountTagPrivilege), int32(a.Privilege), int32(PrivilegeAdmin))
}

func (v *Validator) validateElement(prefix string, e *Element, out *[]Violation) {
	if e.ElementID == `` {
		*out = append(*out, Violation{FieldPath: v.path(prefix, `Element`, elementTagElementID), Kind: MissingRequiredField})
	}
	if e.FilePath == `` {
		*out = append(*out, Violation{FieldPath: v.path(prefix, `Element`, elementTagFilePath), Kind: MissingRequiredField})
	}
	if e.DataURL == `` {
		*out = append(*out, Violation{FieldPath: v.path(prefix, `Element`, elementTagDataURL), Kind: MissingRequiredField})
	}
	if e.ElementType == ElementTypeUnknown {
		*out = append(*out, Violation{FieldPath: v.path(prefix, `Element`, elementTagElementType), Kind: MissingRequiredField})
	} else {
		v.checkEnum(out, v.path(prefix, `Element`, elementTagElementType), int32(e.ElementType), int32(ElementTypeBlob))
	}
	if v.strict && !e.Legacy.CreateTime.IsZero() {
		*out = append(*out, Violation{FieldPath: v.path(prefix, `Element`, elementTagCreateTime), Kind: DeprecatedFieldWrite})
	}
	if e.TypeInfo != nil {
		v.validateTypeInfo(v.path(prefix, `Element`, elementTagTypeInfo), e.TypeInfo, out)
	}
}

func (v *Validator) validateTypeInfo(path string, t *TypeInfo, out *[]Violation) {
	branches := t.branches()
	if len(branches) == 1 {
		return
	}
	detail := `no branch populated`
	if len(branches) > 1 {
		detail = `populated branches: ` + strings.Join(branches, `, `)
	}
	*out = append(*out, Violation{FieldPath: path, Kind: OneofExclusivityViolation, Detail: detail})
}

func (v *Validator) validateComplexity(prefix string, c *FormatComplexity, out *[]Violation) {
	v.checkNonNegative(out, v.path(prefix, `FormatComplexity`, complexityTagTriangleCount), c.TriangleCount)
	v.checkNonNegative(out, v.path(prefix, `FormatComplexity`, complexityTagTexelCount), c.TexelCount)
	v.checkNonNegative(out, v.path(prefix, `FormatComplexity`, complexityTagShaderCount), c.ShaderCount)
	v.checkNonNegative(out, v.path(prefix, `FormatComplexity`, complexityTagLODHint), int64(c.LODHint))
	if v.strict && c.Legacy.TextureCount != nil {
		*out = append(*out, Violation{FieldPath: v.path(prefix, `FormatComplexity`, complexityTagTextureCount), Kind: DeprecatedFieldWrite})
	}
}

func (v *Validator) validateScale(prefix string, s *FormatScale, out *[]Violation) {
	v.checkEnum(out, v.path(prefix, `FormatScale`, scaleTagBaseUnit), int32(s.BaseUnit), int32(BaseUnitNauticalMile))
	if s.BaseUnit != BaseUnitUnknown {
		if s.Scaler == 0 || math.IsNaN(s.Scaler) || math.IsInf(s.Scaler, 0) {
			*out = append(*out, Violation{
				FieldPath: v.path(prefix, `FormatScale`, scaleTagScaler),
				Kind:      RangeViolation,
				Detail:    `scaler must be finite and non-zero when the base unit is known`,
			})
		}
	}
}

func (v *Validator) validateFormat(prefix string, f *Format, out *[]Violation) {
	if f.Root == nil {
		*out = append(*out, Violation{FieldPath: v.path(prefix, `Format`, formatTagRoot), Kind: MissingRequiredField})
	} else {
		v.validateElement(v.path(prefix, `Format`, formatTagRoot), f.Root, out)
	}
	for i, res := range f.Resources {
		path := fmt.Sprintf(`%s[%d]`, v.path(prefix, `Format`, formatTagResource), i)
		if res == nil {
			*out = append(*out, Violation{FieldPath: path, Kind: MalformedReference, Detail: `nil resource element`})
			continue
		}
		v.validateElement(path, res, out)
	}
	if f.Complexity != nil {
		v.validateComplexity(v.path(prefix, `Format`, formatTagComplexity), f.Complexity, out)
	}
	if f.Scale != nil {
		v.validateScale(v.path(prefix, `Format`, formatTagScale), f.Scale, out)
	}
}

func (v *Validator) validateFormatList(prefix string, fl *FormatList, out *[]Violation) {
	for i, f := range fl.Formats {
		path := fmt.Sprintf(`%s[%d]`, v.path(prefix, `FormatList`, formatListTagFormat), i)
		if f == nil {
			*out = append(*out, Violation{FieldPath: path, Kind: MalformedReference, Detail: `nil format`})
			continue
		}
		v.validateFormat(path, f, out)
	}
}

func (v *Validator) validateRemixInfo(prefix string, r *RemixInfo, out *[]Violation) {
	for i, src := range r.SourceAssets {
		if strings.TrimSpace(src) == `` {
			*out = append(*out, Violation{
				FieldPath: fmt.Sprintf(`%s[%d]`, v.path(prefix, `RemixInfo`, remixInfoTagSourceAsset), i),
				Kind:      MalformedReference,
				Detail:    `empty source asset id`,
			})
		}
	}
}

func (v *Validator) validateCameraParams(prefix string, c *CameraParams, out *[]Violation) {
	for _, entry := range c.Matrix {
		if math.IsNaN(entry) || math.IsInf(entry, 0) {
			*out = append(*out, Violation{
				FieldPath: v.path(prefix, `CameraParams`, cameraTagMatrix),
				Kind:      RangeViolation,
				Detail:    `matrix entries must be finite`,
			})
			break
		}
	}
	if c.FieldOfView != 0 {
		if math.IsNaN(c.FieldOfView) || math.IsInf(c.FieldOfView, 0) || c.FieldOfView < 0 || c.FieldOfView >= 360 {
			*out = append(*out, Violation{
				FieldPath: v.path(prefix, `CameraParams`, cameraTagFieldOfView),
				Kind:      RangeViolation,
				Detail:    fmt.Sprintf(`field of view must be within (0, 360) degrees, got %v`, c.FieldOfView),
			})
		}
	}
}

// validateAsset runs the record's own checks first, then descends into nested
// records in tag order. An unset access level is the private default, not a
// missing required field.
func (v *Validator) validateAsset(prefix string, a *Asset, out *[]Violation) {
	if a.AssetID == `` {
		*out = append(*out, Violation{FieldPath: v.path(prefix, `Asset`, assetTagAssetID), Kind: MissingRequiredField})
	}
	v.checkEnum(out, v.path(prefix, `Asset`, assetTagAccessLevel), int32(a.AccessLevel), int32(AccessPublic))
	v.checkEnum(out, v.path(prefix, `Asset`, assetTagLicense), int32(a.License), int32(LicenseAllRightsReserved))
	if !a.CreateTime.IsZero() && !a.UpdateTime.IsZero() && a.UpdateTime.Before(a.CreateTime) {
		*out = append(*out, Violation{
			FieldPath: v.path(prefix, `Asset`, assetTagUpdateTime),
			Kind:      RangeViolation,
			Detail:    `update_time must not precede create_time`,
		})
	}
	if a.PublishedAssetID != `` && strings.TrimSpace(a.PublishedAssetID) == `` {
		*out = append(*out, Violation{
			FieldPath: v.path(prefix, `Asset`, assetTagPublishedAssetID),
			Kind:      MalformedReference,
			Detail:    `blank published asset id`,
		})
	}
	if v.strict && len(a.Legacy.Formats) > 0 {
		*out = append(*out, Violation{FieldPath: v.path(prefix, `Asset`, assetTagLegacyFormat), Kind: DeprecatedFieldWrite})
	}

	for i, t := range a.Thumbnails {
		path := fmt.Sprintf(`%s[%d]`, v.path(prefix, `Asset`, assetTagThumbnail), i)
		if t == nil {
			*out = append(*out, Violation{FieldPath: path, Kind: MalformedReference, Detail: `nil thumbnail element`})
			continue
		}
		v.validateElement(path, t, out)
	}
	if a.RemixInfo != nil {
		v.validateRemixInfo(v.path(prefix, `Asset`, assetTagRemixInfo), a.RemixInfo, out)
	}
	for _, key := range sortedKeys(a.FormatLists) {
		path := fmt.Sprintf(`%s[%s]`, v.path(prefix, `Asset`, assetTagFormatList), key)
		fl := a.FormatLists[key]
		if fl == nil {
			*out = append(*out, Violation{FieldPath: path, Kind: MalformedReference, Detail: `nil format list`})
			continue
		}
		v.validateFormatList(path, fl, out)
	}
	if a.CameraParams != nil {
		v.validateCameraParams(v.path(prefix, `Asset`, assetTagCameraParams), a.CameraParams, out)
	}
}
