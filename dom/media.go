package dom

import (
	"bytes"

	"containfit/media"
)

// Event types fired by media elements when their intrinsic dimensions
// become known.
const (
	EventLoad           = "load"           // img
	EventLoadedMetadata = "loadedmetadata" // video
)

// mediaData holds the intrinsic dimensions of an img or video element.
// Both stay zero until the element's content has loaded.
type mediaData struct {
	intrinsicWidth  int
	intrinsicHeight int
}

// IsImage reports whether the element is an img element.
func (e *Element) IsImage() bool {
	return e.LocalName() == "img"
}

// IsVideo reports whether the element is a video element.
func (e *Element) IsVideo() bool {
	return e.LocalName() == "video"
}

// IsMedia reports whether the element is an img or video element.
func (e *Element) IsMedia() bool {
	return e.IsImage() || e.IsVideo()
}

// LoadEventType returns the event type that signals the element's
// dimensions are available: "load" for images, "loadedmetadata" for
// videos. Returns the empty string for non-media elements.
func (e *Element) LoadEventType() string {
	switch {
	case e.IsImage():
		return EventLoad
	case e.IsVideo():
		return EventLoadedMetadata
	default:
		return ""
	}
}

func (e *Element) mediaData() *mediaData {
	data := e.data()
	if data.media == nil {
		data.media = &mediaData{}
	}
	return data.media
}

// IntrinsicSize returns the element's intrinsic width and height.
// Both are zero until the media content has loaded, and always zero
// for non-media elements.
func (e *Element) IntrinsicSize() (width, height int) {
	if !e.IsMedia() {
		return 0, 0
	}
	md := e.mediaData()
	return md.intrinsicWidth, md.intrinsicHeight
}

// NaturalWidth returns the intrinsic width of an image, or zero.
func (e *Element) NaturalWidth() int {
	w, _ := e.IntrinsicSize()
	return w
}

// NaturalHeight returns the intrinsic height of an image, or zero.
func (e *Element) NaturalHeight() int {
	_, h := e.IntrinsicSize()
	return h
}

// VideoWidth returns the intrinsic width of a video, or zero.
func (e *Element) VideoWidth() int {
	if !e.IsVideo() {
		return 0
	}
	w, _ := e.IntrinsicSize()
	return w
}

// VideoHeight returns the intrinsic height of a video, or zero.
func (e *Element) VideoHeight() int {
	if !e.IsVideo() {
		return 0
	}
	_, h := e.IntrinsicSize()
	return h
}

// SetIntrinsicSize records the media element's intrinsic dimensions and
// fires the element's load event ("load" for img, "loadedmetadata" for
// video). It is a no-op on non-media elements.
func (e *Element) SetIntrinsicSize(width, height int) {
	eventType := e.LoadEventType()
	if eventType == "" {
		return
	}
	md := e.mediaData()
	md.intrinsicWidth = width
	md.intrinsicHeight = height
	e.DispatchEvent(eventType)
}

// LoadImageBytes decodes the intrinsic dimensions from encoded image
// data and records them, firing the load event on success. Decode
// failures leave the dimensions untouched.
func (e *Element) LoadImageBytes(data []byte) error {
	if !e.IsImage() {
		return media.ErrNotMedia
	}
	w, h, err := media.SniffSize(bytes.NewReader(data))
	if err != nil {
		return err
	}
	e.SetIntrinsicSize(w, h)
	return nil
}
