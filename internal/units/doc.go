// Package units rewrites unit attributes of an output XML label to their
// canonical PDS4 spelling.
//
// A unit config lists, per group, the canonical PDS4_Unit and the
// ISIS_Units aliases historically used for it:
//
//	Object = UnitTranslation
//	  Group = Kilometers
//	    PDS4_Unit = km
//	    ISIS_Units = (kilometers, kilometer)
//	  End_Group
//	End_Object
//
// The same content may be written as YAML:
//
//	units:
//	  - pds4_unit: km
//	    isis_units: [kilometers, kilometer]
package units
