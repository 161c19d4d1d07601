// Package source exposes input labels to the resolver through one
// capability interface.
//
// A Source locates containers by path; a Container lists the entries of a
// given name in document order; an Entry carries values, units and
// attributes. Three implementations exist:
//
//   - PVL: object/group/keyword trees, multi-valued keywords with per-value units
//   - XML: etree documents, one text value per element plus attributes
//   - JSON: ojg-parsed documents, arrays act as repeated containers
//
// Locating never fails with an error: an empty result means "not found"
// and the resolver moves on to the next candidate path.
package source
