package assetschema

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/tryfix/errors"
	"github.com/tryfix/log"
	"google.golang.org/protobuf/encoding/protowire"
)

type options struct {
	logger log.Logger
}

// Option is a type to host NewRegistry configurations.
type Option func(*options)

// WithLogger returns a configuration to create a NewRegistry with the given logger.
// The default is a noop logger; only the registry logs, codec and validator stay pure.
func WithLogger(logger log.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

// Registry holds the canonical schema of every catalog record type: field
// descriptors keyed by type name plus the stable schema ids used in the
// self-describing envelope. Loading is static; a Registry is read-only after
// construction and safe for concurrent use.
type Registry struct {
	byName map[string][]FieldDescriptor
	idMap  map[int]string
	ids    map[string]int
	logger log.Logger
}

// NewRegistry returns a registry loaded with the built-in catalog schema.
func NewRegistry(opts ...Option) *Registry {
	options := new(options)
	for _, opt := range opts {
		opt(options)
	}

	if options.logger == nil {
		options.logger = log.NewNoopLogger()
	}

	r := &Registry{
		byName: make(map[string][]FieldDescriptor),
		idMap:  make(map[int]string),
		ids:    make(map[string]int),
		logger: options.logger,
	}

	for name, sch := range schemaTable {
		fields := make([]FieldDescriptor, len(sch.fields))
		copy(fields, sch.fields)
		sort.Slice(fields, func(i, j int) bool { return fields[i].Number < fields[j].Number })
		r.byName[name] = fields
		r.idMap[sch.id] = name
		r.ids[name] = sch.id
	}

	r.logger.Debug(fmt.Sprintf(`registry loaded with %d schemas`, len(r.byName)))

	return r
}

// Describe returns the field descriptors of the named record type in tag order.
// The returned slice is a copy; callers may not mutate registry state.
func (r *Registry) Describe(typeName string) ([]FieldDescriptor, error) {
	fields, ok := r.byName[typeName]
	if !ok {
		return nil, errors.New(fmt.Sprintf(`unregistered schema [%s]`, typeName))
	}

	out := make([]FieldDescriptor, len(fields))
	copy(out, fields)
	return out, nil
}

// SchemaID returns the stable envelope id of the named record type.
func (r *Registry) SchemaID(typeName string) (int, error) {
	id, ok := r.ids[typeName]
	if !ok {
		return 0, errors.New(fmt.Sprintf(`unregistered schema [%s]`, typeName))
	}
	return id, nil
}

// SchemaName returns the record type registered under the given envelope id.
func (r *Registry) SchemaName(id int) (string, error) {
	name, ok := r.idMap[id]
	if !ok {
		return ``, errors.New(fmt.Sprintf(`unregistered schema id [%d]`, id))
	}
	return name, nil
}

// fieldName resolves a wire tag of a type to its declared field name. Used to
// build stable violation paths; unknown tags fall back to the raw number.
func (r *Registry) fieldName(typeName string, num protowire.Number) string {
	for _, f := range r.byName[typeName] {
		if f.Number == num {
			return f.Name
		}
	}
	return fmt.Sprintf(`#%d`, num)
}

func (r *Registry) fieldPath(typeName string, num protowire.Number) string {
	return typeName + `.` + r.fieldName(typeName, num)
}

// Print renders the descriptor tables through the registry logger.
func (r *Registry) Print() {
	b := new(bytes.Buffer)
	table := tablewriter.NewWriter(b)
	table.SetHeader([]string{`Schema Id`, `Type`, `Field`, `Tag`, `Kind`, `Cardinality`, `Flags`})
	table.SetAutoFormatHeaders(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return r.ids[names[i]] < r.ids[names[j]] })

	for _, name := range names {
		for _, f := range r.byName[name] {
			var flags string
			if f.Deprecated {
				flags = `deprecated`
			}
			if f.OneofGroup != `` {
				flags = `oneof:` + f.OneofGroup
			}
			table.Append([]string{
				fmt.Sprint(r.ids[name]),
				name,
				f.Name,
				fmt.Sprint(f.Number),
				f.Kind.String(),
				f.Cardinality.String(),
				flags,
			})
		}
	}
	table.Render()
	r.logger.Info(fmt.Sprintf("schemas\n%s", b.String()))
}
