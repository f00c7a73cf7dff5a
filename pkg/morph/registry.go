package morph

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// liveImages is the process-wide monotonic counter of allocated Images,
// incremented on allocation and decremented on release (§5). It exists for
// diagnostics only and is not part of engine correctness.
var liveImages int64

// nextID hands out the diagnostic id embedded in each Image.
var nextID uint64

// registerImage increments the live-image counter and stamps the image
// with a diagnostic id. Unlike the teacher's Md5ThenHex/HashUUID helpers,
// which derive a UUID from content, image ids come from a process-wide
// sequence assigned at allocation time, since two structurally identical
// images are still distinct containers.
func registerImage(img *Image) {
	img.id = atomic.AddUint64(&nextID, 1)
	atomic.AddInt64(&liveImages, 1)
}

// Release decrements the live-image counter. Callers that want deterministic
// diagnostics (rather than relying on GC) should call this once an Image is
// no longer needed; it is not required for correctness.
func (img *Image) Release() {
	atomic.AddInt64(&liveImages, -1)
}

// LiveImages returns the number of Images currently allocated and not yet
// Released.
func LiveImages() int64 {
	return atomic.LoadInt64(&liveImages)
}

// DiagnosticTag returns a stable per-process UUID derived from the image's
// allocation id, suitable for correlating log lines across an engine call
// without leaking pixel content.
func (img *Image) DiagnosticTag() string {
	return uuid.NewSHA1(diagnosticNamespace, []byte{
		byte(img.id), byte(img.id >> 8), byte(img.id >> 16), byte(img.id >> 24),
		byte(img.id >> 32), byte(img.id >> 40), byte(img.id >> 48), byte(img.id >> 56),
	}).String()
}

var diagnosticNamespace = uuid.MustParse("6f6d6f72-7068-2d69-6d61-676500000000")
