package facecard

// InvalidLayoutDocumentError reports an import payload that is not
// structurally a PipLayout. The caller's in-memory layout must be
// left unchanged when this is returned.
type InvalidLayoutDocumentError struct {
	Reason string
}

func (e *InvalidLayoutDocumentError) Error() string {
	return "invalid layout document: " + e.Reason
}
