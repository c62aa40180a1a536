/*
Package assetschema implements the schema-validating, versioned serialization core for
the asset catalog data model: accounts, assets and their encoded geometry, material and
image formats.

It is built from three cooperating layers:

  - Registry holds the canonical field descriptors (stable numeric tags, cardinality,
    deprecation status, oneof groups) for every record type. Descriptors are fixed at
    build time.
  - Codec encodes records to a tag+type+length framed byte sequence and decodes the
    inverse. Unknown tags survive a decode/encode cycle verbatim, so records round-trip
    through older and newer schema versions without losing data.
  - Validator walks a record and returns a complete, order-stable list of Violations
    (missing required fields, oneof exclusivity, enum range, numeric sanity, reference
    shape) instead of failing on the first problem.

The wire format uses protobuf wire primitives (varints, fixed64 doubles, length-delimited
frames), see https://protobuf.dev/programming-guides/encoding/ for the underlying scheme.

Transport, persistence and reference resolution are external collaborators consuming the
byte sequences this package produces; the package itself performs no I/O.
*/
package assetschema
