package main

import (
	"fmt"
	"time"

	"github.com/tryfix/log"

	assetschema "github.com/voxhall/assetschema"
)

func main() {
	logger := log.NewLog().Log(log.WithLevel(log.DEBUG))

	registry := assetschema.NewRegistry(assetschema.WithLogger(logger))
	registry.Print()

	codec := assetschema.NewCodec(registry)
	validator := assetschema.NewValidator(registry)

	root := &assetschema.Element{
		ElementID:   assetschema.NewElementID(),
		FilePath:    `piano.obj`,
		DataURL:     `https://blobs.example.com/piano.obj`,
		ElementType: assetschema.ElementTypeModel,
		TypeInfo: &assetschema.TypeInfo{
			Model: &assetschema.ModelInfo{VertexCount: 5400},
		},
	}

	now := time.Now().UTC()
	asset := &assetschema.Asset{
		AssetID:     assetschema.NewAssetID(),
		DisplayName: `Grand Piano`,
		Description: `A concert grand, remixed from the upright piano.`,
		Tags:        []string{`music`, `instrument`},
		CreateTime:  now,
		UpdateTime:  now,
		AccountID:   `accounts/demo`,
		AccessLevel: assetschema.AccessPublic,
		License:     assetschema.LicenseCreativeCommonsBy,
		FormatLists: map[string]*assetschema.FormatList{
			`OBJ`: {Formats: []*assetschema.Format{{
				Root:       root,
				FormatID:   `obj-v1`,
				Complexity: &assetschema.FormatComplexity{TriangleCount: 1800},
				Scale:      assetschema.NewFormatScale(assetschema.BaseUnitMeter),
			}}},
		},
	}

	violations, err := validator.Validate(asset)
	if err != nil {
		log.Fatal(err)
	}
	for _, violation := range violations {
		logger.Warn(fmt.Sprintf(`validation: %s`, violation))
	}
	if len(violations) > 0 {
		log.Fatal(`refusing to encode an invalid asset`)
	}

	payload, err := codec.EncodeEnvelope(asset)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info(fmt.Sprintf(`asset encoded into %d bytes`, len(payload)))

	decoded, err := codec.DecodeEnvelope(payload)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%+v\n", decoded.(*assetschema.Asset).DisplayName)
}
