package dom

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	ElementNode NodeKind = iota // <div>, <span>, etc.
	TextNode                    // Plain text, escaped on render
	RawNode                     // Raw HTML, rendered verbatim (dangerous)
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case RawNode:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Document is the capability toastkit requires from its host.
//
// Implementations must behave like a single-threaded DOM: mutations
// made through one call are visible to the next. The in-memory
// implementation returned by NewDocument is both the default document
// and the test double; pkg/remotedom implements Document against a
// live browser.
type Document interface {
	// CreateElement creates a detached element with the given tag.
	CreateElement(tag string) Element

	// CreateText creates a detached text node. Its content is escaped
	// when rendered.
	CreateText(text string) Element

	// CreateRawHTML creates a detached node whose content is rendered
	// verbatim. Use with caution - can lead to XSS if content is
	// user-provided.
	CreateRawHTML(html string) Element

	// Body returns the document's root container. Never nil.
	Body() Element

	// ElementByID returns the attached element with the given id, or
	// nil if none exists.
	ElementByID(id string) Element
}

// Element is one node in a Document.
type Element interface {
	// Kind reports the node type.
	Kind() NodeKind

	// Tag returns the element tag name ("" for text and raw nodes).
	Tag() string

	// Text returns the content of a text or raw node ("" for elements).
	Text() string

	// SetAttr sets an attribute. Setting "id" makes the element
	// addressable via Document.ElementByID once attached.
	SetAttr(key, value string)

	// Attr returns the attribute value and whether it is set.
	Attr(key string) (string, bool)

	// Attrs returns a copy of the element's attributes.
	Attrs() map[string]string

	// AddClass appends classes to the class attribute.
	AddClass(classes ...string)

	// AppendChild attaches child as the last child of this element.
	// A child already attached elsewhere is moved.
	AppendChild(child Element)

	// PrependChild attaches child as the first child of this element.
	// A child already attached elsewhere is moved.
	PrependChild(child Element)

	// Remove detaches this element from its parent. Removing an
	// already-detached element is a no-op.
	Remove()

	// Parent returns the parent element, or nil when detached.
	Parent() Element

	// Children returns the current children, oldest first.
	Children() []Element

	// On registers a handler for an event name (e.g. "click").
	On(event string, handler func())

	// Dispatch synchronously invokes the handlers registered for the
	// event on this element. Unknown events are a no-op.
	Dispatch(event string)
}

// Click dispatches a "click" event on el. Shorthand for tests and
// remote event routing.
func Click(el Element) {
	if el != nil {
		el.Dispatch("click")
	}
}
