package assetschema

import "google.golang.org/protobuf/encoding/protowire"

// Kind is the semantic type of a field on the wire.
type Kind uint8

const (
	KindString Kind = iota
	KindInt32
	KindInt64
	KindBool
	KindDouble
	KindEnum
	KindTimestamp
	KindMessage
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return `string`
	case KindInt32:
		return `int32`
	case KindInt64:
		return `int64`
	case KindBool:
		return `bool`
	case KindDouble:
		return `double`
	case KindEnum:
		return `enum`
	case KindTimestamp:
		return `timestamp`
	case KindMessage:
		return `message`
	case KindMap:
		return `map`
	}
	return `unknown`
}

// Cardinality describes how many values a field carries.
type Cardinality uint8

const (
	CardinalityOptional Cardinality = iota
	CardinalityRequired
	CardinalityRepeated
)

func (c Cardinality) String() string {
	switch c {
	case CardinalityRequired:
		return `required`
	case CardinalityRepeated:
		return `repeated`
	}
	return `optional`
}

// FieldDescriptor is the canonical definition of one field of a record type.
// The numeric tag is the stable wire key and must never be reused or renumbered.
type FieldDescriptor struct {
	Name        string
	Number      protowire.Number
	Kind        Kind
	Cardinality Cardinality
	Deprecated  bool
	// OneofGroup names the tagged union the field belongs to; empty for
	// plain fields. At most one member of a group may be populated.
	OneofGroup string
	// TypeName is the record type of message/map-value fields.
	TypeName string
}

// Schema ids, the stable numeric key carried in the envelope prefix.
const (
	schemaIDAccount          = 1
	schemaIDElement          = 2
	schemaIDTypeInfo         = 3
	schemaIDModelInfo        = 4
	schemaIDImageInfo        = 5
	schemaIDMaterialInfo     = 6
	schemaIDOtherInfo        = 7
	schemaIDFormat           = 8
	schemaIDFormatList       = 9
	schemaIDFormatComplexity = 10
	schemaIDFormatScale      = 11
	schemaIDAdminData        = 12
	schemaIDRemixInfo        = 13
	schemaIDVector3          = 14
	schemaIDCameraParams     = 15
	schemaIDAsset            = 16
)

// Wire tags. These are bit-exact with the catalog's historical encoding and
// must be preserved for interoperability with existing data.
const (
	accountTagAccountID   = 1
	accountTagPrivilege   = 2
	accountTagDisplayName = 3
	accountTagFamilyName  = 4
	accountTagGivenName   = 5
	accountTagPhotoURL    = 6
	accountTagDescription = 7
	accountTagLocation    = 8
	accountTagPersonID    = 9

	elementTagElementID   = 1
	elementTagFilePath    = 2
	elementTagDataURL     = 3
	elementTagCreateTime  = 4 // deprecated
	elementTagElementType = 5
	elementTagTypeInfo    = 6

	typeInfoTagModel    = 1
	typeInfoTagImage    = 2
	typeInfoTagMaterial = 3
	typeInfoTagOther    = 4

	modelInfoTagVertexCount   = 1
	modelInfoTagHasAnimations = 2

	imageInfoTagWidth    = 1
	imageInfoTagHeight   = 2
	imageInfoTagMimeType = 3

	materialInfoTagShaderName  = 1
	materialInfoTagDoubleSided = 2

	otherInfoTagMimeType = 1

	formatTagRoot       = 1
	formatTagResource   = 2
	formatTagFormatID   = 3
	formatTagComplexity = 4
	formatTagScale      = 5

	formatListTagFormat = 1

	complexityTagTriangleCount = 1
	complexityTagTexelCount    = 2
	complexityTagShaderCount   = 3
	complexityTagLODHint       = 4
	complexityTagTextureCount  = 1000 // deprecated

	scaleTagBaseUnit = 1
	scaleTagScaler   = 2

	adminDataTagTag = 1

	remixInfoTagSourceAsset = 1

	vector3TagX = 1
	vector3TagY = 2
	vector3TagZ = 3

	cameraTagMatrix      = 1
	cameraTagTarget      = 2
	cameraTagFieldOfView = 3

	assetTagAssetID          = 1
	assetTagDisplayName      = 2
	assetTagDescription      = 3
	assetTagTag              = 4
	assetTagCreateTime       = 5
	assetTagUpdateTime       = 6
	assetTagLegacyFormat     = 7 // deprecated
	assetTagThumbnail        = 8
	assetTagAccountID        = 9
	assetTagAccessLevel      = 10
	assetTagAdminData        = 11
	assetTagRemixInfo        = 12
	assetTagPublishedAssetID = 13
	assetTagFormatList       = 14
	assetTagLicense          = 15
	assetTagCameraParams     = 16

	// Timestamps are nested messages in the common seconds/nanos layout.
	timestampTagSeconds = 1
	timestampTagNanos   = 2

	// Map fields are repeated key/value entry messages.
	mapEntryTagKey   = 1
	mapEntryTagValue = 2
)

// schemaTable is the static, build-time definition of every record type.
var schemaTable = map[string]struct {
	id     int
	fields []FieldDescriptor
}{
	`Account`: {schemaIDAccount, []FieldDescriptor{
		{Name: `account_id`, Number: accountTagAccountID, Kind: KindString, Cardinality: CardinalityRequired},
		{Name: `privilege`, Number: accountTagPrivilege, Kind: KindEnum},
		{Name: `display_name`, Number: accountTagDisplayName, Kind: KindString},
		{Name: `family_name`, Number: accountTagFamilyName, Kind: KindString},
		{Name: `given_name`, Number: accountTagGivenName, Kind: KindString},
		{Name: `photo_url`, Number: accountTagPhotoURL, Kind: KindString},
		{Name: `description`, Number: accountTagDescription, Kind: KindString},
		{Name: `location`, Number: accountTagLocation, Kind: KindString},
		{Name: `person_id`, Number: accountTagPersonID, Kind: KindString, Cardinality: CardinalityRequired},
	}},
	`Element`: {schemaIDElement, []FieldDescriptor{
		{Name: `element_id`, Number: elementTagElementID, Kind: KindString, Cardinality: CardinalityRequired},
		{Name: `file_path`, Number: elementTagFilePath, Kind: KindString, Cardinality: CardinalityRequired},
		{Name: `data_url`, Number: elementTagDataURL, Kind: KindString, Cardinality: CardinalityRequired},
		{Name: `create_time`, Number: elementTagCreateTime, Kind: KindTimestamp, Deprecated: true},
		{Name: `element_type`, Number: elementTagElementType, Kind: KindEnum, Cardinality: CardinalityRequired},
		{Name: `type_info`, Number: elementTagTypeInfo, Kind: KindMessage, TypeName: `TypeInfo`},
	}},
	`TypeInfo`: {schemaIDTypeInfo, []FieldDescriptor{
		{Name: `model`, Number: typeInfoTagModel, Kind: KindMessage, OneofGroup: `info`, TypeName: `ModelInfo`},
		{Name: `image`, Number: typeInfoTagImage, Kind: KindMessage, OneofGroup: `info`, TypeName: `ImageInfo`},
		{Name: `material`, Number: typeInfoTagMaterial, Kind: KindMessage, OneofGroup: `info`, TypeName: `MaterialInfo`},
		{Name: `other`, Number: typeInfoTagOther, Kind: KindMessage, OneofGroup: `info`, TypeName: `OtherInfo`},
	}},
	`ModelInfo`: {schemaIDModelInfo, []FieldDescriptor{
		{Name: `vertex_count`, Number: modelInfoTagVertexCount, Kind: KindInt64},
		{Name: `has_animations`, Number: modelInfoTagHasAnimations, Kind: KindBool},
	}},
	`ImageInfo`: {schemaIDImageInfo, []FieldDescriptor{
		{Name: `width`, Number: imageInfoTagWidth, Kind: KindInt32},
		{Name: `height`, Number: imageInfoTagHeight, Kind: KindInt32},
		{Name: `mime_type`, Number: imageInfoTagMimeType, Kind: KindString},
	}},
	`MaterialInfo`: {schemaIDMaterialInfo, []FieldDescriptor{
		{Name: `shader_name`, Number: materialInfoTagShaderName, Kind: KindString},
		{Name: `double_sided`, Number: materialInfoTagDoubleSided, Kind: KindBool},
	}},
	`OtherInfo`: {schemaIDOtherInfo, []FieldDescriptor{
		{Name: `mime_type`, Number: otherInfoTagMimeType, Kind: KindString},
	}},
	`Format`: {schemaIDFormat, []FieldDescriptor{
		{Name: `root`, Number: formatTagRoot, Kind: KindMessage, Cardinality: CardinalityRequired, TypeName: `Element`},
		{Name: `resource`, Number: formatTagResource, Kind: KindMessage, Cardinality: CardinalityRepeated, TypeName: `Element`},
		{Name: `format_id`, Number: formatTagFormatID, Kind: KindString},
		{Name: `format_complexity`, Number: formatTagComplexity, Kind: KindMessage, TypeName: `FormatComplexity`},
		{Name: `format_scale`, Number: formatTagScale, Kind: KindMessage, TypeName: `FormatScale`},
	}},
	`FormatList`: {schemaIDFormatList, []FieldDescriptor{
		{Name: `format`, Number: formatListTagFormat, Kind: KindMessage, Cardinality: CardinalityRepeated, TypeName: `Format`},
	}},
	`FormatComplexity`: {schemaIDFormatComplexity, []FieldDescriptor{
		{Name: `triangle_count`, Number: complexityTagTriangleCount, Kind: KindInt64},
		{Name: `texel_count`, Number: complexityTagTexelCount, Kind: KindInt64},
		{Name: `shader_count`, Number: complexityTagShaderCount, Kind: KindInt64},
		{Name: `lod_hint`, Number: complexityTagLODHint, Kind: KindInt32},
		{Name: `texture_count`, Number: complexityTagTextureCount, Kind: KindInt64, Deprecated: true},
	}},
	`FormatScale`: {schemaIDFormatScale, []FieldDescriptor{
		{Name: `base_unit`, Number: scaleTagBaseUnit, Kind: KindEnum},
		{Name: `scaler`, Number: scaleTagScaler, Kind: KindDouble},
	}},
	`AdminData`: {schemaIDAdminData, []FieldDescriptor{
		{Name: `tag`, Number: adminDataTagTag, Kind: KindString, Cardinality: CardinalityRepeated},
	}},
	`RemixInfo`: {schemaIDRemixInfo, []FieldDescriptor{
		{Name: `source_asset`, Number: remixInfoTagSourceAsset, Kind: KindString, Cardinality: CardinalityRepeated},
	}},
	`Vector3`: {schemaIDVector3, []FieldDescriptor{
		{Name: `x`, Number: vector3TagX, Kind: KindDouble},
		{Name: `y`, Number: vector3TagY, Kind: KindDouble},
		{Name: `z`, Number: vector3TagZ, Kind: KindDouble},
	}},
	`CameraParams`: {schemaIDCameraParams, []FieldDescriptor{
		{Name: `matrix`, Number: cameraTagMatrix, Kind: KindDouble, Cardinality: CardinalityRepeated},
		{Name: `target`, Number: cameraTagTarget, Kind: KindMessage, TypeName: `Vector3`},
		{Name: `field_of_view`, Number: cameraTagFieldOfView, Kind: KindDouble},
	}},
	`Asset`: {schemaIDAsset, []FieldDescriptor{
		{Name: `asset_id`, Number: assetTagAssetID, Kind: KindString, Cardinality: CardinalityRequired},
		{Name: `display_name`, Number: assetTagDisplayName, Kind: KindString},
		{Name: `description`, Number: assetTagDescription, Kind: KindString},
		{Name: `tag`, Number: assetTagTag, Kind: KindString, Cardinality: CardinalityRepeated},
		{Name: `create_time`, Number: assetTagCreateTime, Kind: KindTimestamp},
		{Name: `update_time`, Number: assetTagUpdateTime, Kind: KindTimestamp},
		{Name: `format`, Number: assetTagLegacyFormat, Kind: KindMap, Deprecated: true, TypeName: `Format`},
		{Name: `thumbnail`, Number: assetTagThumbnail, Kind: KindMessage, Cardinality: CardinalityRepeated, TypeName: `Element`},
		{Name: `account_id`, Number: assetTagAccountID, Kind: KindString},
		{Name: `access_level`, Number: assetTagAccessLevel, Kind: KindEnum},
		{Name: `admin_data`, Number: assetTagAdminData, Kind: KindMessage, TypeName: `AdminData`},
		{Name: `remix_info`, Number: assetTagRemixInfo, Kind: KindMessage, TypeName: `RemixInfo`},
		{Name: `published_asset_id`, Number: assetTagPublishedAssetID, Kind: KindString},
		{Name: `format_list`, Number: assetTagFormatList, Kind: KindMap, TypeName: `FormatList`},
		{Name: `license`, Number: assetTagLicense, Kind: KindEnum},
		{Name: `camera_params`, Number: assetTagCameraParams, Kind: KindMessage, TypeName: `CameraParams`},
	}},
}
