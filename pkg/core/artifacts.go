package core

// Attachment is a debug artifact saved when a step fails.
type Attachment struct {
	Name        string `json:"name"`        // screenshot, source
	ContentType string `json:"contentType"` // image/png, application/xml
	Path        string `json:"path"`        // File the artifact was written to
}

// Attachment names
const (
	AttachmentScreenshot = "screenshot"
	AttachmentSource     = "source"
)

// Content types
const (
	ContentTypePNG = "image/png"
	ContentTypeXML = "application/xml"
)

// ArtifactCollector is implemented by drivers that can capture the current
// screen. The runner uses it to attach screen state to failed steps.
type ArtifactCollector interface {
	// Screenshot returns the screen as PNG data.
	Screenshot() ([]byte, error)

	// Source returns the UI hierarchy as XML.
	Source() (string, error)
}

// ShouldCapture reports whether a step that ended with status gets artifacts.
func ShouldCapture(status StepStatus) bool {
	return status == StatusFailed || status == StatusErrored
}
