// Package output builds output labels from resolved translation groups
// and writes them to disk.
//
// FlatBuilder fills a pvl.Object tree; XMLBuilder fills an etree
// document. Both run the Auto pass: every group flagged Auto is resolved
// in table order, an Optional group whose input is missing is skipped,
// and any other failure stops the pass. Each "find or create" step returns the
// container it settled on, so no node is mutated through an alias.
package output
