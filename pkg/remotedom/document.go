package remotedom

import (
	"log/slog"
	"strconv"
	"sync"

	"github.com/toastkit-dev/toastkit/pkg/dom"
)

// bodyID is the reserved id the client maps to document.body.
const bodyID = "body"

// Document is a dom.Document whose mutations are mirrored into an
// in-memory tree and streamed to a remote client as ops.
//
// Safe for concurrent use: one mutex serializes tree access and op
// queueing. Event handlers are invoked outside that mutex, so a
// handler may freely mutate the document.
type Document struct {
	mu      sync.Mutex
	inner   dom.Document
	body    *Element
	wrap    map[dom.Element]*Element
	next    int
	pending []Op
	sink    Sink
	logger  *slog.Logger
}

// NewDocument creates a remote document. Ops buffer until a sink is
// attached with SetSink.
func NewDocument(logger *slog.Logger) *Document {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Document{
		inner:  dom.NewDocument(),
		wrap:   make(map[dom.Element]*Element),
		logger: logger,
	}
	d.body = &Element{doc: d, inner: d.inner.Body(), id: bodyID}
	d.wrap[d.inner.Body()] = d.body
	return d
}

// SetSink attaches the op sink and flushes everything buffered so
// far. A freshly connected client receives the whole current tree.
func (d *Document) SetSink(sink Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sink = sink
	d.flushLocked()
}

// Flush writes any buffered ops to the sink.
func (d *Document) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.flushLocked()
}

func (d *Document) flushLocked() {
	if d.sink == nil || len(d.pending) == 0 {
		return
	}
	ops := d.pending
	d.pending = nil
	if err := d.sink.WriteOps(ops); err != nil {
		d.logger.Error("remotedom: op write failed", "error", err, "ops", len(ops))
	}
}

func (d *Document) queueLocked(op Op) {
	d.pending = append(d.pending, op)
	d.flushLocked()
}

func (d *Document) newElementLocked(inner dom.Element, op Op) *Element {
	d.next++
	id := "t" + strconv.Itoa(d.next)
	el := &Element{doc: d, inner: inner, id: id}
	d.wrap[inner] = el
	op.ID = id
	d.queueLocked(op)
	return el
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.newElementLocked(d.inner.CreateElement(tag), Op{Code: OpCreateElement, Tag: tag})
}

// CreateText implements dom.Document.
func (d *Document) CreateText(text string) dom.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.newElementLocked(d.inner.CreateText(text), Op{Code: OpCreateText, Text: text})
}

// CreateRawHTML implements dom.Document.
func (d *Document) CreateRawHTML(html string) dom.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.newElementLocked(d.inner.CreateRawHTML(html), Op{Code: OpCreateRaw, Text: html})
}

// Body implements dom.Document.
func (d *Document) Body() dom.Element {
	return d.body
}

// ElementByID implements dom.Document.
func (d *Document) ElementByID(id string) dom.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	inner := d.inner.ElementByID(id)
	if inner == nil {
		return nil
	}
	if el := d.wrap[inner]; el != nil {
		return el
	}
	return nil
}

// DispatchEvent routes a client event frame to the element's
// handlers. Unknown ids are ignored: the element may have been
// removed while the event was in flight.
func (d *Document) DispatchEvent(id, event string) {
	d.mu.Lock()
	var target *Element
	if id == bodyID {
		target = d.body
	} else {
		for _, el := range d.wrap {
			if el.id == id {
				target = el
				break
			}
		}
	}
	d.mu.Unlock()

	if target != nil {
		target.Dispatch(event)
	}
}

// releaseLocked drops the wrapper mappings for a detached subtree.
func (d *Document) releaseLocked(inner dom.Element) {
	delete(d.wrap, inner)
	for _, c := range inner.Children() {
		d.releaseLocked(c)
	}
}

// Element is a node of a remote Document.
type Element struct {
	doc      *Document
	inner    dom.Element
	id       string
	handlers map[string][]func()
}

// ID returns the element's wire id.
func (e *Element) ID() string { return e.id }

// Kind implements dom.Element.
func (e *Element) Kind() dom.NodeKind { return e.inner.Kind() }

// Tag implements dom.Element.
func (e *Element) Tag() string { return e.inner.Tag() }

// Text implements dom.Element.
func (e *Element) Text() string { return e.inner.Text() }

// SetAttr implements dom.Element.
func (e *Element) SetAttr(key, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.inner.SetAttr(key, value)
	e.doc.queueLocked(Op{Code: OpSetAttr, ID: e.id, Key: key, Value: value})
}

// Attr implements dom.Element.
func (e *Element) Attr(key string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.inner.Attr(key)
}

// Attrs implements dom.Element.
func (e *Element) Attrs() map[string]string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.inner.Attrs()
}

// AddClass implements dom.Element. The client receives the merged
// class attribute as a SetAttr op.
func (e *Element) AddClass(classes ...string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.inner.AddClass(classes...)
	merged, _ := e.inner.Attr("class")
	e.doc.queueLocked(Op{Code: OpSetAttr, ID: e.id, Key: "class", Value: merged})
}

// AppendChild implements dom.Element. Foreign elements are ignored.
func (e *Element) AppendChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok || c.doc != e.doc {
		return
	}
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.inner.AppendChild(c.inner)
	e.doc.queueLocked(Op{Code: OpAppend, ID: c.id, Parent: e.id})
}

// PrependChild implements dom.Element. Foreign elements are ignored.
func (e *Element) PrependChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok || c.doc != e.doc {
		return
	}
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.inner.PrependChild(c.inner)
	e.doc.queueLocked(Op{Code: OpPrepend, ID: c.id, Parent: e.id})
}

// Remove implements dom.Element. The detached subtree's wrappers are
// released; toastkit never reattaches removed elements.
func (e *Element) Remove() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if e.inner.Parent() == nil {
		return
	}
	e.inner.Remove()
	e.doc.releaseLocked(e.inner)
	e.doc.queueLocked(Op{Code: OpRemove, ID: e.id})
}

// Parent implements dom.Element.
func (e *Element) Parent() dom.Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	p := e.inner.Parent()
	if p == nil {
		return nil
	}
	if el := e.doc.wrap[p]; el != nil {
		return el
	}
	return nil
}

// Children implements dom.Element.
func (e *Element) Children() []dom.Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	inner := e.inner.Children()
	out := make([]dom.Element, 0, len(inner))
	for _, c := range inner {
		if el := e.doc.wrap[c]; el != nil {
			out = append(out, el)
		}
	}
	return out
}

// On implements dom.Element. The first handler for an event also
// tells the client to attach a forwarding listener.
func (e *Element) On(event string, handler func()) {
	if event == "" || handler == nil {
		return
	}
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if e.handlers == nil {
		e.handlers = make(map[string][]func())
	}
	first := len(e.handlers[event]) == 0
	e.handlers[event] = append(e.handlers[event], handler)
	if first {
		e.doc.queueLocked(Op{Code: OpListen, ID: e.id, Event: event})
	}
}

// Dispatch implements dom.Element. Handlers run outside the document
// lock so they may mutate the tree.
func (e *Element) Dispatch(event string) {
	e.doc.mu.Lock()
	hs := append([]func(){}, e.handlers[event]...)
	e.doc.mu.Unlock()
	for _, h := range hs {
		h()
	}
}
