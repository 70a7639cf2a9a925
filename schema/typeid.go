package schema

// TypeID is a sealed identity tag for a concrete schema type, standing in
// for the source protocol's runtime type identity used to key the child
// factory (spec design note "Polymorphism by type-identity token"). Each
// generated concrete schema owns one constant TypeID; the factory is a
// total function from TypeID to a constructor of the matching variant.
//
// Subtype assignment (e.g. a Bot stored in a field declared to hold an
// Entity) is modeled by the field's declared TypeID admitting any TypeID
// whose variant is convertible to it — in practice, by a concrete
// schema's Factory method covering every TypeID its subtypes introduce,
// and by its accessor chain delegating upward through embedding.
type TypeID uint16

// TypeNone marks a field table entry with no child schema identity (a
// primitive field, or a container of primitives rather than schemas).
const TypeNone TypeID = 0
