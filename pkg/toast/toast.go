package toast

// Kind represents the notification kind.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Position names a screen placement for a notification container.
//
// The engine treats positions as opaque strings: an unrecognized value
// still yields a usable container keyed by that string, it just won't
// match any placement rule in the stylesheet.
type Position string

const (
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	TopRight     Position = "top-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
	BottomRight  Position = "bottom-right"
)

// Class hooks consumed by the external stylesheet. The engine decides
// structure; the stylesheet decides everything visual.
const (
	classContainer = "toastkit-container"
	classToast     = "toastkit-toast"
	classIcon      = "toastkit-icon"
	classContent   = "toastkit-content"
	classTitle     = "toastkit-title"
	classMessage   = "toastkit-message"
	classProgress  = "toastkit-progress"
	classHide      = "toastkit-hide"
)

// classPrefix namespaces per-position and per-kind class hooks
// (toastkit-top-right, toastkit-success, ...). Also the container id
// namespace.
const classPrefix = "toastkit-"
