package assetschema

import (
	"time"

	"github.com/google/uuid"
)

// Record is implemented by every catalog record type this package can encode,
// decode and validate. The interface is sealed; the set of record types is
// fixed by the schema.
type Record interface {
	schemaName() string
}

// Privilege is the moderation privilege of an Account.
type Privilege int32

const (
	PrivilegeNone Privilege = iota
	PrivilegeModerator
	PrivilegeAdmin
)

func (p Privilege) String() string {
	switch p {
	case PrivilegeNone:
		return `none`
	case PrivilegeModerator:
		return `moderator`
	case PrivilegeAdmin:
		return `admin`
	}
	return `unknown`
}

// ElementType describes the payload category of an Element.
type ElementType int32

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeModel
	ElementTypeImage
	ElementTypeMaterial
	ElementTypeBlob
)

func (e ElementType) String() string {
	switch e {
	case ElementTypeModel:
		return `model`
	case ElementTypeImage:
		return `image`
	case ElementTypeMaterial:
		return `material`
	case ElementTypeBlob:
		return `blob`
	}
	return `unknown`
}

// BaseUnit is the real-world unit a Format's geometry is expressed in.
type BaseUnit int32

const (
	BaseUnitUnknown BaseUnit = iota
	BaseUnitMeter
	BaseUnitFoot
	BaseUnitNauticalMile
)

// AccessLevel controls asset visibility. The zero value is AccessPrivate, so a
// record with the field unset is closed by default, never silently open.
type AccessLevel int32

const (
	AccessPrivate AccessLevel = iota
	AccessUnlisted
	AccessPublic
)

func (a AccessLevel) String() string {
	switch a {
	case AccessPrivate:
		return `private`
	case AccessUnlisted:
		return `unlisted`
	case AccessPublic:
		return `public`
	}
	return `unknown`
}

// License is the content license attached to an Asset.
type License int32

const (
	LicenseUnknown License = iota
	LicenseCreativeCommonsBy
	LicenseCreativeCommonsByNd
	LicenseAllRightsReserved
)

// Account is an identity/profile record. AccountID and PersonID are required;
// PersonID is a weak reference into an external identity provider.
type Account struct {
	AccountID   string
	Privilege   Privilege
	DisplayName string
	FamilyName  string
	GivenName   string
	PhotoURL    string
	Description string
	Location    string
	PersonID    string

	Unknown UnknownFields
}

func (*Account) schemaName() string { return `Account` }

// ModelInfo describes mesh geometry payloads.
type ModelInfo struct {
	VertexCount   int64
	HasAnimations bool

	Unknown UnknownFields
}

func (*ModelInfo) schemaName() string { return `ModelInfo` }

// ImageInfo describes texture/image payloads.
type ImageInfo struct {
	Width    int32
	Height   int32
	MimeType string

	Unknown UnknownFields
}

func (*ImageInfo) schemaName() string { return `ImageInfo` }

// MaterialInfo describes material definition payloads.
type MaterialInfo struct {
	ShaderName  string
	DoubleSided bool

	Unknown UnknownFields
}

func (*MaterialInfo) schemaName() string { return `MaterialInfo` }

// OtherInfo describes opaque blob payloads.
type OtherInfo struct {
	MimeType string

	Unknown UnknownFields
}

func (*OtherInfo) schemaName() string { return `OtherInfo` }

// TypeInfo is a tagged union: exactly one branch must be populated. The Codec
// assumes a pre-validated value; exclusivity is enforced by the Validator.
type TypeInfo struct {
	Model    *ModelInfo
	Image    *ImageInfo
	Material *MaterialInfo
	Other    *OtherInfo

	Unknown UnknownFields
}

func (*TypeInfo) schemaName() string { return `TypeInfo` }

// branches returns the names of the populated oneof branches in tag order.
func (t *TypeInfo) branches() []string {
	var set []string
	if t.Model != nil {
		set = append(set, `model`)
	}
	if t.Image != nil {
		set = append(set, `image`)
	}
	if t.Material != nil {
		set = append(set, `material`)
	}
	if t.Other != nil {
		set = append(set, `other`)
	}
	return set
}

// ElementLegacy holds deprecated Element fields populated by decode for
// read-only legacy access. New code must not set them; encode never emits them.
type ElementLegacy struct {
	CreateTime time.Time // wire tag 4, superseded by Asset-level timestamps
}

// Element is an immutable content primitive (mesh, texture, material or opaque
// blob). Dependents referencing stale data create a new Element rather than
// editing in place.
type Element struct {
	ElementID   string
	FilePath    string
	DataURL     string
	ElementType ElementType
	TypeInfo    *TypeInfo

	Legacy  ElementLegacy
	Unknown UnknownFields
}

func (*Element) schemaName() string { return `Element` }

// ComplexityLegacy holds the deprecated texture_count (wire tag 1000), kept
// readable for records written before texel/shader counts replaced it.
type ComplexityLegacy struct {
	TextureCount *int64
}

// FormatComplexity carries sizing hints for a Format. Counts are non-negative;
// LODHint 0 is the most detailed level.
type FormatComplexity struct {
	TriangleCount int64
	TexelCount    int64
	ShaderCount   int64
	LODHint       int32

	Legacy  ComplexityLegacy
	Unknown UnknownFields
}

func (*FormatComplexity) schemaName() string { return `FormatComplexity` }

// FormatScale maps geometry units to the real world. A missing scaler decodes
// as 1; NewFormatScale applies the same default.
type FormatScale struct {
	BaseUnit BaseUnit
	Scaler   float64

	Unknown UnknownFields
}

func (*FormatScale) schemaName() string { return `FormatScale` }

// NewFormatScale returns a FormatScale with the default scaler of 1.
func NewFormatScale(unit BaseUnit) *FormatScale {
	return &FormatScale{BaseUnit: unit, Scaler: 1}
}

// Format is one encoding of an Asset's content, e.g. an OBJ or a proprietary
// binary. Root is always present; Resources are the Elements the root depends on.
type Format struct {
	Root       *Element
	Resources  []*Element
	FormatID   string
	Complexity *FormatComplexity
	Scale      *FormatScale

	Unknown UnknownFields
}

func (*Format) schemaName() string { return `Format` }

// FormatList is an ordered collection of interchangeable Formats of the same
// logical content.
type FormatList struct {
	Formats []*Format

	Unknown UnknownFields
}

func (*FormatList) schemaName() string { return `FormatList` }

// AdminData carries moderator-only tags, kept separate from user-authored
// Asset tags to preserve the trust boundary.
type AdminData struct {
	Tags []string

	Unknown UnknownFields
}

func (*AdminData) schemaName() string { return `AdminData` }

// RemixInfo lists the asset ids this asset was remixed from. Entries are weak
// references, provenance edges rather than ownership; a source asset may have
// been deleted independently.
type RemixInfo struct {
	SourceAssets []string

	Unknown UnknownFields
}

func (*RemixInfo) schemaName() string { return `RemixInfo` }

// Vector3 is a point or direction in asset space.
type Vector3 struct {
	X float64
	Y float64
	Z float64

	Unknown UnknownFields
}

func (*Vector3) schemaName() string { return `Vector3` }

// CameraParams captures the viewpoint an asset's thumbnail was rendered from.
type CameraParams struct {
	Matrix      [16]float64 // row-major view matrix
	Target      *Vector3
	FieldOfView float64 // degrees

	Unknown UnknownFields
}

func (*CameraParams) schemaName() string { return `CameraParams` }

// AssetLegacy holds the deprecated single-Format map (wire tag 7), superseded
// by Asset.FormatLists. Populated by decode only.
type AssetLegacy struct {
	Formats map[string]*Format
}

// Asset is the aggregate root: all Formats, metadata and access control for
// one piece of content. It owns its Elements, FormatLists and AdminData by
// value; AccountID, PublishedAssetID and RemixInfo entries are weak references
// resolved by an external store.
type Asset struct {
	AssetID          string
	DisplayName      string
	Description      string
	Tags             []string
	CreateTime       time.Time
	UpdateTime       time.Time
	Thumbnails       []*Element
	AccountID        string
	AccessLevel      AccessLevel
	AdminData        *AdminData
	RemixInfo        *RemixInfo
	PublishedAssetID string
	FormatLists      map[string]*FormatList
	License          License
	CameraParams     *CameraParams

	Legacy  AssetLegacy
	Unknown UnknownFields
}

func (*Asset) schemaName() string { return `Asset` }

// NewAssetID returns a fresh unique asset id.
func NewAssetID() string { return `assets/` + uuid.NewString() }

// NewElementID returns a fresh unique element id.
func NewElementID() string { return `elements/` + uuid.NewString() }
