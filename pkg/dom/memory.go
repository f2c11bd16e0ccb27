package dom

import "strings"

// memDocument is the in-memory Document implementation.
type memDocument struct {
	body *memElement
}

// NewDocument creates an empty in-memory document.
//
// The returned document is not safe for concurrent use; callers that
// share it across goroutines must serialize access (the toast Notifier
// does this with its own mutex).
func NewDocument() Document {
	return &memDocument{
		body: &memElement{kind: ElementNode, tag: "body"},
	}
}

func (d *memDocument) CreateElement(tag string) Element {
	return &memElement{kind: ElementNode, tag: tag}
}

func (d *memDocument) CreateText(text string) Element {
	return &memElement{kind: TextNode, text: text}
}

func (d *memDocument) CreateRawHTML(html string) Element {
	return &memElement{kind: RawNode, text: html}
}

func (d *memDocument) Body() Element {
	return d.body
}

func (d *memDocument) ElementByID(id string) Element {
	if id == "" {
		return nil
	}
	if found := d.body.findByID(id); found != nil {
		return found
	}
	return nil
}

// memElement is one node in a memDocument.
type memElement struct {
	kind     NodeKind
	tag      string
	text     string
	attrs    map[string]string
	parent   *memElement
	children []*memElement
	handlers map[string][]func()
}

func (e *memElement) Kind() NodeKind { return e.kind }
func (e *memElement) Tag() string    { return e.tag }
func (e *memElement) Text() string   { return e.text }

func (e *memElement) SetAttr(key, value string) {
	if key == "" {
		return
	}
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[key] = value
}

func (e *memElement) Attr(key string) (string, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

func (e *memElement) Attrs() map[string]string {
	out := make(map[string]string, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

func (e *memElement) AddClass(classes ...string) {
	if len(classes) == 0 {
		return
	}
	existing, _ := e.Attr("class")
	joined := strings.Join(classes, " ")
	if existing == "" {
		e.SetAttr("class", joined)
		return
	}
	e.SetAttr("class", existing+" "+joined)
}

func (e *memElement) AppendChild(child Element) {
	c := asMem(child)
	if c == nil || c == e {
		return
	}
	c.Remove()
	c.parent = e
	e.children = append(e.children, c)
}

func (e *memElement) PrependChild(child Element) {
	c := asMem(child)
	if c == nil || c == e {
		return
	}
	c.Remove()
	c.parent = e
	e.children = append([]*memElement{c}, e.children...)
}

func (e *memElement) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == e {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

func (e *memElement) Parent() Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *memElement) Children() []Element {
	out := make([]Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *memElement) On(event string, handler func()) {
	if event == "" || handler == nil {
		return
	}
	if e.handlers == nil {
		e.handlers = make(map[string][]func())
	}
	e.handlers[event] = append(e.handlers[event], handler)
}

func (e *memElement) Dispatch(event string) {
	// Copy first: a handler may mutate the tree or re-register.
	hs := append([]func(){}, e.handlers[event]...)
	for _, h := range hs {
		h()
	}
}

// findByID searches the subtree rooted at e, depth-first.
func (e *memElement) findByID(id string) *memElement {
	if e.attrs["id"] == id {
		return e
	}
	for _, c := range e.children {
		if found := c.findByID(id); found != nil {
			return found
		}
	}
	return nil
}

// asMem unwraps an Element into its memElement, nil if foreign.
func asMem(el Element) *memElement {
	if el == nil {
		return nil
	}
	m, _ := el.(*memElement)
	return m
}
