package assetschema

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func setupValidator(opts ...ValidatorOption) *Validator {
	return NewValidator(NewRegistry(), opts...)
}

func TestValidator_ValidAssetHasNoViolations(t *testing.T) {
	validator := setupValidator()

	violations, err := validator.Validate(testAsset())
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 0 {
		t.Errorf(`need no violations, have %v`, violations)
	}
}

func TestValidator_FormatMissingRoot(t *testing.T) {
	validator := setupValidator()

	violations, err := validator.Validate(&Format{})
	if err != nil {
		t.Fatal(err)
	}

	want := []Violation{{FieldPath: `Format.root`, Kind: MissingRequiredField}}
	if !reflect.DeepEqual(violations, want) {
		t.Errorf(`need %v, have %v`, want, violations)
	}
}

func TestValidator_OneofZeroBranches(t *testing.T) {
	validator := setupValidator()

	violations, err := validator.Validate(&TypeInfo{})
	if err != nil {
		t.Fatal(err)
	}

	if len(violations) != 1 {
		t.Fatalf(`need exactly one violation, have %v`, violations)
	}
	if violations[0].Kind != OneofExclusivityViolation || violations[0].FieldPath != `TypeInfo` {
		t.Errorf(`unexpected violation %v`, violations[0])
	}
}

func TestValidator_OneofTwoBranches(t *testing.T) {
	validator := setupValidator()

	// Constructed directly, bypassing normal builders.
	violations, err := validator.Validate(&TypeInfo{
		Model: &ModelInfo{},
		Image: &ImageInfo{},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(violations) != 1 {
		t.Fatalf(`need exactly one violation, have %v`, violations)
	}
	v := violations[0]
	if v.Kind != OneofExclusivityViolation {
		t.Fatalf(`unexpected kind %v`, v.Kind)
	}
	if !strings.Contains(v.Detail, `model`) || !strings.Contains(v.Detail, `image`) {
		t.Errorf(`detail must name both branches, have %q`, v.Detail)
	}
}

func TestValidator_NegativeTriangleCount(t *testing.T) {
	validator := setupValidator()

	violations, err := validator.Validate(&FormatComplexity{TriangleCount: -5})
	if err != nil {
		t.Fatal(err)
	}

	if len(violations) != 1 {
		t.Fatalf(`need exactly one violation, have %v`, violations)
	}
	if violations[0].Kind != RangeViolation || violations[0].FieldPath != `FormatComplexity.triangle_count` {
		t.Errorf(`unexpected violation %v`, violations[0])
	}
}

func TestValidator_AccessLevelUnsetIsPrivateDefault(t *testing.T) {
	// An unset access_level decodes to the private default; the record is
	// closed by default, so no MissingRequiredField is reported.
	codec := setupCodec()
	validator := setupValidator()

	byt, err := codec.Encode(&Asset{AssetID: `a1`})
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := codec.DecodeAsset(byt)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.AccessLevel != AccessPrivate {
		t.Fatalf(`need private default, have %v`, decoded.AccessLevel)
	}

	violations, err := validator.Validate(decoded)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 0 {
		t.Errorf(`need no violations, have %v`, violations)
	}
}

func TestValidator_UnknownEnumValueIsInformational(t *testing.T) {
	validator := setupValidator()

	violations, err := validator.Validate(&Account{
		AccountID: `accounts/acc-1`,
		PersonID:  `people/p-1`,
		Privilege: Privilege(9),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(violations) != 1 {
		t.Fatalf(`need exactly one violation, have %v`, violations)
	}
	if violations[0].Kind != UnknownEnumValue || violations[0].FieldPath != `Account.privilege` {
		t.Errorf(`unexpected violation %v`, violations[0])
	}
}

func TestValidator_UpdateTimeBeforeCreateTime(t *testing.T) {
	validator := setupValidator()

	violations, err := validator.Validate(&Asset{
		AssetID:    `a1`,
		CreateTime: time.Unix(2000, 0).UTC(),
		UpdateTime: time.Unix(1000, 0).UTC(),
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []Violation{{
		FieldPath: `Asset.update_time`,
		Kind:      RangeViolation,
		Detail:    `update_time must not precede create_time`,
	}}
	if !reflect.DeepEqual(violations, want) {
		t.Errorf(`need %v, have %v`, want, violations)
	}
}

func TestValidator_ScalerZeroWithKnownUnit(t *testing.T) {
	validator := setupValidator()

	violations, err := validator.Validate(&FormatScale{BaseUnit: BaseUnitMeter, Scaler: 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 1 || violations[0].Kind != RangeViolation {
		t.Fatalf(`need one RangeViolation, have %v`, violations)
	}

	// With the unit unknown a zero scaler carries no meaning to check.
	violations, err = validator.Validate(&FormatScale{})
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 0 {
		t.Errorf(`need no violations, have %v`, violations)
	}
}

func TestValidator_EmptyRemixSource(t *testing.T) {
	validator := setupValidator()

	violations, err := validator.Validate(&Asset{
		AssetID:   `a1`,
		RemixInfo: &RemixInfo{SourceAssets: []string{`assets/src-1`, ` `}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(violations) != 1 {
		t.Fatalf(`need exactly one violation, have %v`, violations)
	}
	if violations[0].Kind != MalformedReference || violations[0].FieldPath != `Asset.remix_info.source_asset[1]` {
		t.Errorf(`unexpected violation %v`, violations[0])
	}
}

func TestValidator_DeterministicOrder(t *testing.T) {
	validator := setupValidator()

	asset := &Asset{
		CreateTime: time.Unix(2000, 0).UTC(),
		UpdateTime: time.Unix(1000, 0).UTC(),
		FormatLists: map[string]*FormatList{
			`OBJ`:  {Formats: []*Format{{}}},
			`GLTF`: {Formats: []*Format{{}}},
		},
	}

	violations, err := validator.Validate(asset)
	if err != nil {
		t.Fatal(err)
	}

	wantPaths := []string{
		`Asset.asset_id`,
		`Asset.update_time`,
		`Asset.format_list[GLTF].format[0].root`,
		`Asset.format_list[OBJ].format[0].root`,
	}
	if len(violations) != len(wantPaths) {
		t.Fatalf(`need %d violations, have %v`, len(wantPaths), violations)
	}
	for i, want := range wantPaths {
		if violations[i].FieldPath != want {
			t.Errorf(`violation %d: need path %q, have %q`, i, want, violations[i].FieldPath)
		}
	}

	// Idempotence: a second run yields the identical list.
	again, err := validator.Validate(asset)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(violations, again) {
		t.Errorf(`need %v, have %v`, violations, again)
	}
}

func TestValidator_StrictFlagsDeprecatedWrites(t *testing.T) {
	strict := setupValidator(Strict())
	lenient := setupValidator()

	tc := int64(8)
	c := &FormatComplexity{Legacy: ComplexityLegacy{TextureCount: &tc}}

	violations, err := lenient.Validate(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 0 {
		t.Fatalf(`legacy read must not violate outside strict mode, have %v`, violations)
	}

	violations, err = strict.Validate(c)
	if err != nil {
		t.Fatal(err)
	}
	want := []Violation{{FieldPath: `FormatComplexity.texture_count`, Kind: DeprecatedFieldWrite}}
	if !reflect.DeepEqual(violations, want) {
		t.Errorf(`need %v, have %v`, want, violations)
	}
}

func TestValidator_ElementRequiredFields(t *testing.T) {
	validator := setupValidator()

	violations, err := validator.Validate(&Element{})
	if err != nil {
		t.Fatal(err)
	}

	wantPaths := []string{
		`Element.element_id`,
		`Element.file_path`,
		`Element.data_url`,
		`Element.element_type`,
	}
	if len(violations) != len(wantPaths) {
		t.Fatalf(`need %d violations, have %v`, len(wantPaths), violations)
	}
	for i, want := range wantPaths {
		if violations[i].Kind != MissingRequiredField || violations[i].FieldPath != want {
			t.Errorf(`violation %d: need MissingRequiredField at %q, have %v`, i, want, violations[i])
		}
	}
}

func TestValidator_NeverMutates(t *testing.T) {
	validator := setupValidator()

	in := testAsset()
	want := testAsset()

	if _, err := validator.Validate(in); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, want) {
		t.Error(`validation must not mutate the record`)
	}
}
