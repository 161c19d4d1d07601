// Package export drives whole-label exports from a cube.
//
// An exporter runs a configured list of stages, each an Auto pass of one
// translation table over the cube label, then adds the pixel description
// computed from the cube itself. Pds4Exporter builds an XML label,
// reorders the top-level areas and normalizes units; Pds3Exporter builds
// a flat PVL label with an IMAGE object. Any stage failure aborts the
// export with a message naming the stage, and no output file is written.
package export
