// Package mapping provides the translation table model: the parsed form of
// the documents that describe how each output keyword is located in an input
// label and rewritten.
//
// A table is a list of groups, one per output keyword. Tables are written in
// PVL (the native format) or YAML; both produce the same model.
//
// # PVL form
//
//	Group = InstrumentId
//	  Auto
//	  InputPosition  = (IsisCube, Instrument)
//	  InputPosition  = (Instrument)
//	  InputKey       = InstrumentId
//	  InputDefault   = UNKNOWN
//	  OutputName     = INSTRUMENT_ID
//	  OutputPosition = (Object, IsisCube, Group, Instrument)
//	  Translation    = (HIRISE, "HiRISE")
//	  Translation    = (*, *)
//	End_Group
//
// # YAML form
//
//	version: "1"
//	groups:
//	  InstrumentId:
//	    auto: true
//	    input_position: [[IsisCube, Instrument], [Instrument]]
//	    input_key: InstrumentId
//	    translation: [[HIRISE, HiRISE], ["*", "*"]]
//
// A YAML sequence of sequences stands for a repeated PVL keyword. Keyword
// names match regardless of case and separators.
//
// # Search order
//
// InputPosition keywords are search candidates in declaration order; the
// legacy InputGroup = "A,B" form is appended after them. Translation pairs
// are matched first-match-in-declaration-order, "*" matching anything.
//
// # Specification strings
//
// Several keywords hold small specification strings split on '@' and '|'
// (never on ':', which namespace-qualified tags use):
//
//   - "new@Bin" forces a fresh output container
//   - "att@type" targets an attribute instead of an element
//   - "att@type|B" and "tag@name|value" are input key dependencies
//   - "unit|km" in OutputAttributes and OutputSiblings is a name/value pair
package mapping
