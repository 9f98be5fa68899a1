package marker

// Error codes for marker declarations.
const (
	// CodeInvalidMarker is returned when a declared marker is nil or has no struct tag.
	CodeInvalidMarker = "INVALID_MARKER"

	// CodeDuplicateTag is returned when two different markers are declared with the same struct tag.
	CodeDuplicateTag = "DUPLICATE_MARKER_TAG"
)
