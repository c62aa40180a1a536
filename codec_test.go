package assetschema

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

func setupCodec() *Codec {
	return NewCodec(NewRegistry())
}

func testElement(id string) *Element {
	return &Element{
		ElementID:   id,
		FilePath:    `model/scene.obj`,
		DataURL:     `https://blobs.example.com/` + id,
		ElementType: ElementTypeModel,
		TypeInfo: &TypeInfo{
			Model: &ModelInfo{VertexCount: 1204, HasAnimations: true},
		},
	}
}

func testAsset() *Asset {
	return &Asset{
		AssetID:     `assets/a1`,
		DisplayName: `Lighthouse`,
		Description: `A lighthouse on a rocky shore.`,
		Tags:        []string{`sea`, `architecture`},
		CreateTime:  time.Unix(1700000000, 123000000).UTC(),
		UpdateTime:  time.Unix(1700000600, 0).UTC(),
		Thumbnails: []*Element{{
			ElementID:   `elements/thumb-1`,
			FilePath:    `thumb.png`,
			DataURL:     `https://blobs.example.com/thumb.png`,
			ElementType: ElementTypeImage,
			TypeInfo:    &TypeInfo{Image: &ImageInfo{Width: 512, Height: 512, MimeType: `image/png`}},
		}},
		AccountID:        `accounts/owner-1`,
		AccessLevel:      AccessPublic,
		AdminData:        &AdminData{Tags: []string{`curated`}},
		RemixInfo:        &RemixInfo{SourceAssets: []string{`assets/src-1`, `assets/src-2`}},
		PublishedAssetID: `assets/published-1`,
		FormatLists: map[string]*FormatList{
			`GLTF`: {Formats: []*Format{{
				Root:      testElement(`elements/root-gltf`),
				Resources: []*Element{testElement(`elements/texture-1`)},
				FormatID:  `gltf-v2`,
				Complexity: &FormatComplexity{
					TriangleCount: 4096,
					TexelCount:    1 << 20,
					ShaderCount:   3,
					LODHint:       1,
				},
				Scale: NewFormatScale(BaseUnitMeter),
			}}},
			`OBJ`: {Formats: []*Format{{
				Root:     testElement(`elements/root-obj`),
				FormatID: `obj-v1`,
				Scale:    &FormatScale{BaseUnit: BaseUnitFoot, Scaler: 0.3048},
			}}},
		},
		License: LicenseCreativeCommonsBy,
		CameraParams: &CameraParams{
			Matrix: [16]float64{
				1, 0, 0, 0,
				0, 1, 0, 0,
				0, 0, 1, 0,
				0.5, -2.25, 10, 1,
			},
			Target:      &Vector3{X: 0.5, Y: 1.5, Z: -3},
			FieldOfView: 45,
		},
	}
}

func TestCodec_AssetRoundTrip(t *testing.T) {
	codec := setupCodec()
	in := testAsset()

	byt, err := codec.Encode(in)
	if err != nil {
		t.Fatal(err)
	}

	out, err := codec.DecodeAsset(byt)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(in, out) {
		t.Errorf(`need %+v, have %+v`, in, out)
	}
}

func TestCodec_AccountRoundTrip(t *testing.T) {
	codec := setupCodec()
	in := &Account{
		AccountID:   `accounts/acc-1`,
		Privilege:   PrivilegeModerator,
		DisplayName: `Ada`,
		FamilyName:  `Lovelace`,
		GivenName:   `Ada`,
		PhotoURL:    `https://blobs.example.com/ada.png`,
		Description: `builds things`,
		Location:    `London`,
		PersonID:    `people/p-1`,
	}

	byt, err := codec.Encode(in)
	if err != nil {
		t.Fatal(err)
	}

	out, err := codec.DecodeAccount(byt)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(in, out) {
		t.Errorf(`need %+v, have %+v`, in, out)
	}
}

func TestCodec_EncodeIsDeterministic(t *testing.T) {
	codec := setupCodec()
	in := testAsset()

	first, err := codec.Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	second, err := codec.Encode(in)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error(`map fields must encode in sorted key order`)
	}
}

func TestCodec_UnknownFieldPassthrough(t *testing.T) {
	codec := setupCodec()
	in := &Account{AccountID: `accounts/acc-1`, PersonID: `people/p-1`}

	byt, err := codec.Encode(in)
	if err != nil {
		t.Fatal(err)
	}

	// A frame written by a newer schema version this decoder does not know.
	frame := protowire.AppendTag(nil, 99, protowire.BytesType)
	frame = protowire.AppendString(frame, `from-the-future`)
	byt = append(byt, frame...)

	out, err := codec.DecodeAccount(byt)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Unknown) != 1 || out.Unknown[0].Num != 99 {
		t.Fatalf(`unknown frame not retained: %+v`, out.Unknown)
	}

	reencoded, err := codec.Encode(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(reencoded, frame) {
		t.Error(`unknown frame must be re-emitted unchanged`)
	}

	again, err := codec.DecodeAccount(reencoded)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, again) {
		t.Errorf(`need %+v, have %+v`, out, again)
	}
}

func TestCodec_LegacyTextureCountReadOnly(t *testing.T) {
	codec := setupCodec()

	// texture_count (tag 1000) populated, texel_count absent.
	byt := protowire.AppendTag(nil, complexityTagTextureCount, protowire.VarintType)
	byt = protowire.AppendVarint(byt, 8)

	rec, err := codec.Decode(`FormatComplexity`, byt)
	if err != nil {
		t.Fatal(err)
	}
	c := rec.(*FormatComplexity)
	if c.Legacy.TextureCount == nil || *c.Legacy.TextureCount != 8 {
		t.Fatalf(`legacy texture_count not readable: %+v`, c.Legacy)
	}
	if c.TexelCount != 0 {
		t.Errorf(`texel_count must stay absent, have %d`, c.TexelCount)
	}

	reencoded, err := codec.Encode(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(reencoded) != 0 {
		t.Errorf(`re-encode must not emit deprecated tag 1000, have % x`, reencoded)
	}
}

func TestCodec_LegacyElementCreateTimeReadOnly(t *testing.T) {
	codec := setupCodec()

	var ts []byte
	ts = protowire.AppendTag(ts, timestampTagSeconds, protowire.VarintType)
	ts = protowire.AppendVarint(ts, 1500000000)

	byt := protowire.AppendTag(nil, elementTagElementID, protowire.BytesType)
	byt = protowire.AppendString(byt, `elements/e-1`)
	byt = protowire.AppendTag(byt, elementTagCreateTime, protowire.BytesType)
	byt = protowire.AppendBytes(byt, ts)

	rec, err := codec.Decode(`Element`, byt)
	if err != nil {
		t.Fatal(err)
	}
	e := rec.(*Element)
	if !e.Legacy.CreateTime.Equal(time.Unix(1500000000, 0)) {
		t.Fatalf(`legacy create_time not readable: %v`, e.Legacy.CreateTime)
	}

	reencoded, err := codec.Encode(e)
	if err != nil {
		t.Fatal(err)
	}
	out, err := codec.Decode(`Element`, reencoded)
	if err != nil {
		t.Fatal(err)
	}
	if !out.(*Element).Legacy.CreateTime.IsZero() {
		t.Error(`re-encode must not emit deprecated create_time`)
	}
}

func TestCodec_LegacyFormatMapReadOnly(t *testing.T) {
	codec := setupCodec()

	format, err := codec.Encode(&Format{Root: testElement(`elements/root-1`), FormatID: `obj-v1`})
	if err != nil {
		t.Fatal(err)
	}

	var entry []byte
	entry = protowire.AppendTag(entry, mapEntryTagKey, protowire.BytesType)
	entry = protowire.AppendString(entry, `OBJ`)
	entry = protowire.AppendTag(entry, mapEntryTagValue, protowire.BytesType)
	entry = protowire.AppendBytes(entry, format)

	byt := protowire.AppendTag(nil, assetTagAssetID, protowire.BytesType)
	byt = protowire.AppendString(byt, `assets/a1`)
	byt = protowire.AppendTag(byt, assetTagLegacyFormat, protowire.BytesType)
	byt = protowire.AppendBytes(byt, entry)

	a, err := codec.DecodeAsset(byt)
	if err != nil {
		t.Fatal(err)
	}
	if a.Legacy.Formats[`OBJ`] == nil || a.Legacy.Formats[`OBJ`].FormatID != `obj-v1` {
		t.Fatalf(`legacy format map not readable: %+v`, a.Legacy)
	}

	reencoded, err := codec.Encode(a)
	if err != nil {
		t.Fatal(err)
	}
	out, err := codec.DecodeAsset(reencoded)
	if err != nil {
		t.Fatal(err)
	}
	if out.Legacy.Formats != nil {
		t.Error(`re-encode must not emit the deprecated format map`)
	}
}

func TestCodec_ScalerDefault(t *testing.T) {
	codec := setupCodec()

	// base_unit only; a missing scaler decodes as the declared default of 1.
	byt := protowire.AppendTag(nil, scaleTagBaseUnit, protowire.VarintType)
	byt = protowire.AppendVarint(byt, uint64(BaseUnitMeter))

	rec, err := codec.Decode(`FormatScale`, byt)
	if err != nil {
		t.Fatal(err)
	}
	if s := rec.(*FormatScale); s.Scaler != 1 {
		t.Errorf(`need scaler 1, have %v`, s.Scaler)
	}
}

func TestCodec_TruncatedInput(t *testing.T) {
	codec := setupCodec()

	// Tag for a length-delimited field with the length byte missing.
	byt := protowire.AppendTag(nil, assetTagAssetID, protowire.BytesType)

	rec, err := codec.DecodeAsset(byt)
	if err == nil {
		t.Fatal(`truncated frame must fail`)
	}
	if _, ok := err.(*MalformedInputError); !ok {
		t.Fatalf(`need MalformedInputError, have %T`, err)
	}
	if rec != nil {
		t.Error(`no partial record on malformed input`)
	}
}

func TestCodec_TruncatedNestedFrame(t *testing.T) {
	codec := setupCodec()

	byt := protowire.AppendTag(nil, assetTagRemixInfo, protowire.BytesType)
	byt = protowire.AppendVarint(byt, 100) // declared length exceeds the payload
	byt = append(byt, 0x0a)

	if _, err := codec.DecodeAsset(byt); err == nil {
		t.Fatal(`truncated nested frame must fail`)
	}
}

func TestCodec_Envelope(t *testing.T) {
	codec := setupCodec()
	in := testAsset()

	payload, err := codec.EncodeEnvelope(in)
	if err != nil {
		t.Fatal(err)
	}
	if payload[0] != magicByte {
		t.Fatalf(`bad magic byte %#x`, payload[0])
	}
	if id := decodePrefix(payload); id != schemaIDAsset {
		t.Fatalf(`need schema id %d, have %d`, schemaIDAsset, id)
	}

	out, err := codec.DecodeEnvelope(payload)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(Record(in), out) {
		t.Errorf(`need %+v, have %+v`, in, out)
	}
}

func TestCodec_EnvelopeUnknownSchemaID(t *testing.T) {
	codec := setupCodec()

	payload := encodePrefix(9999)
	if _, err := codec.DecodeEnvelope(payload); err == nil {
		t.Fatal(`unregistered schema id must fail`)
	}
}

func TestCodec_EnvelopeTooShort(t *testing.T) {
	codec := setupCodec()

	_, err := codec.DecodeEnvelope([]byte{0x00, 0x00})
	if _, ok := err.(*MalformedInputError); !ok {
		t.Fatalf(`need MalformedInputError, have %T`, err)
	}
}

func TestCodec_NegativeCountRoundTrip(t *testing.T) {
	// Negative counts are a validation matter, not a codec one; the wire
	// layer must carry them through unchanged.
	codec := setupCodec()
	in := &FormatComplexity{TriangleCount: -5}

	byt, err := codec.Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := codec.Decode(`FormatComplexity`, byt)
	if err != nil {
		t.Fatal(err)
	}
	if out.(*FormatComplexity).TriangleCount != -5 {
		t.Errorf(`need -5, have %d`, out.(*FormatComplexity).TriangleCount)
	}
}
