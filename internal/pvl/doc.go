// Package pvl reads and writes Parameter Value Language labels: the
// hierarchical object/group/keyword text format used for cube labels,
// PDS3 labels, translation tables and unit configuration files.
//
// A document is a tree of *Object values. The root has KindRoot; nested
// containers are KindObject or KindGroup. Keywords hold an ordered list of
// values, each with an optional unit:
//
//	Object = IsisCube
//	  Group = Instrument
//	    SpacecraftName = "MARS RECONNAISSANCE ORBITER"
//	    ExposureDuration = 1.5 <ms>
//	    FilterName = (RED, BLUE)
//	  End_Group
//	End_Object
//	End
//
// Keywords without a value ("Auto") are legal and carry no values.
// Name lookups are case-insensitive, as in PVL itself.
package pvl
