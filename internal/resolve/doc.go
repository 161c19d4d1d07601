// Package resolve turns one translation group into one output value.
//
// The Resolver walks a group's InputPosition candidates in declaration
// order against a source.Source. Within a candidate every located
// container is searched in document order, and within a container every
// entry named InputKey, until one satisfies all InputKeyDependencies.
// The first accepted entry wins; later candidates are never consulted.
//
// A missing input falls back to InputDefault. The raw value then goes
// through the group's translation pairs, first match wins, and "*" as the
// output passes the raw value through.
//
// Failures are *Error values wrapping one of the Err* sentinels, so
// callers can test them with errors.Is.
package resolve
