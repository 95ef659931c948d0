package draft

// ImageRef tracks the image slot of a step or the cover. It is in exactly
// one of three states:
//
//   - empty: no image
//   - new upload: File names a local file chosen for upload
//   - remote: URL points at an image already stored server-side (edit mode)
//
// File and URL are mutually exclusive; Attach and Clear maintain that.
// Clearing never brings a replaced URL back.
type ImageRef struct {
	File string `yaml:"file,omitempty"`
	URL  string `yaml:"url,omitempty"`
}

// Remote returns an ImageRef in the remote state.
func Remote(url string) ImageRef {
	return ImageRef{URL: url}
}

// Attach puts the ref into the new-upload state, discarding any remote URL.
func (r *ImageRef) Attach(path string) {
	r.File = path
	r.URL = ""
}

// Clear resets the ref to the empty state.
func (r *ImageRef) Clear() {
	r.File = ""
	r.URL = ""
}

// None reports whether the slot is empty.
func (r ImageRef) None() bool {
	return r.File == "" && r.URL == ""
}

// NewUpload reports whether the slot carries a local file to upload. This is
// the flag the encoder serializes as with_file.
func (r ImageRef) NewUpload() bool {
	return r.File != ""
}
