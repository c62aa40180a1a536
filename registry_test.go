package assetschema

import (
	"testing"

	"github.com/tryfix/log"
)

func TestRegistry_Describe(t *testing.T) {
	reg := NewRegistry()

	fields, err := reg.Describe(`Asset`)
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 16 {
		t.Fatalf(`need 16 fields, have %d`, len(fields))
	}

	// Descriptors come back in tag order.
	for i := 1; i < len(fields); i++ {
		if fields[i].Number <= fields[i-1].Number {
			t.Fatalf(`fields out of tag order at %d: %v`, i, fields)
		}
	}

	if fields[0].Name != `asset_id` || fields[0].Cardinality != CardinalityRequired {
		t.Errorf(`unexpected first descriptor %+v`, fields[0])
	}
}

func TestRegistry_DescribeDeprecated(t *testing.T) {
	reg := NewRegistry()

	fields, err := reg.Describe(`FormatComplexity`)
	if err != nil {
		t.Fatal(err)
	}

	last := fields[len(fields)-1]
	if last.Name != `texture_count` || last.Number != 1000 || !last.Deprecated {
		t.Errorf(`deprecated texture_count not described: %+v`, last)
	}
}

func TestRegistry_DescribeOneofGroup(t *testing.T) {
	reg := NewRegistry()

	fields, err := reg.Describe(`TypeInfo`)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range fields {
		if f.OneofGroup != `info` {
			t.Errorf(`field %s must belong to the info oneof, have %q`, f.Name, f.OneofGroup)
		}
	}
}

func TestRegistry_DescribeUnknownType(t *testing.T) {
	reg := NewRegistry()

	if _, err := reg.Describe(`Nope`); err == nil {
		t.Fatal(`unregistered schema must fail`)
	}
}

func TestRegistry_DescribeReturnsCopy(t *testing.T) {
	reg := NewRegistry()

	fields, err := reg.Describe(`Account`)
	if err != nil {
		t.Fatal(err)
	}
	fields[0].Name = `mutated`

	again, err := reg.Describe(`Account`)
	if err != nil {
		t.Fatal(err)
	}
	if again[0].Name != `account_id` {
		t.Error(`Describe must return a copy, registry state mutated`)
	}
}

func TestRegistry_SchemaIDs(t *testing.T) {
	reg := NewRegistry()

	id, err := reg.SchemaID(`Asset`)
	if err != nil {
		t.Fatal(err)
	}
	name, err := reg.SchemaName(id)
	if err != nil {
		t.Fatal(err)
	}
	if name != `Asset` {
		t.Errorf(`need Asset, have %s`, name)
	}

	if _, err := reg.SchemaID(`Nope`); err == nil {
		t.Error(`unregistered schema must fail`)
	}
	if _, err := reg.SchemaName(9999); err == nil {
		t.Error(`unregistered schema id must fail`)
	}
}

func TestRegistry_SchemaIDsAreUnique(t *testing.T) {
	reg := NewRegistry()

	seen := make(map[int]string)
	for name := range schemaTable {
		id, err := reg.SchemaID(name)
		if err != nil {
			t.Fatal(err)
		}
		if prev, ok := seen[id]; ok {
			t.Fatalf(`schema id %d shared by %s and %s`, id, prev, name)
		}
		seen[id] = name
	}
}

func TestRegistry_Print(t *testing.T) {
	reg := NewRegistry(WithLogger(log.NewNoopLogger()))
	reg.Print() // must not panic on a fully loaded table
}
