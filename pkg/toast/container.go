package toast

import "github.com/toastkit-dev/toastkit/pkg/dom"

// ContainerID returns the document id of the container for a position.
// The id combines the toastkit namespace with the position value, so
// distinct positions always map to distinct containers.
func ContainerID(p Position) string {
	return classPrefix + string(p)
}

// container returns the document's container for the position,
// creating and attaching it when absent. Lookup goes through the
// document itself rather than a side table, so repeated calls are
// idempotent even if the host mutated the tree in between.
func (n *Notifier) container(p Position) dom.Element {
	n.positions[p] = struct{}{}

	id := ContainerID(p)
	if el := n.doc.ElementByID(id); el != nil {
		return el
	}

	el := n.doc.CreateElement("div")
	el.SetAttr("id", id)
	el.AddClass(classContainer, classPrefix+string(p))
	n.doc.Body().AppendChild(el)
	return el
}
