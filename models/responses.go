package models

// VersionResponse describes the running build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewVersionResponse builds a [VersionResponse] from build metadata.
func NewVersionResponse(info AppBuildInfo) VersionResponse {
	return VersionResponse{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}
}

// ViewResponse carries the button flags of one UI view.
type ViewResponse struct {
	// View is the view identifier, e.g. "chat".
	View string `json:"view"`

	// Buttons maps button identifiers to their visibility.
	Buttons map[string]bool `json:"buttons"`

	// AnyVisible reports whether at least one button of the view is shown,
	// so clients can hide an empty toolbar.
	AnyVisible bool `json:"anyVisible"`
}
