package domain

// UnknownTargetID is reported as the missing node id when an option declares
// neither a next node nor an outcome.
const UnknownTargetID = "unknown"

// DefaultStartID is used by loaders when a tree does not declare its entry node.
const DefaultStartID = "start"
