package common

// UnknownStr is returned by String methods for values outside their enum.
const UnknownStr = "unknown"

// RootName is the reserved container name addressing the document root.
const RootName = "ROOT"
