// Package dom defines the document capability toastkit renders into.
//
// The core never touches a browser directly. It talks to a Document,
// a small interface covering element creation, lookup by id, and tree
// mutation, so the same engine can drive an in-memory document in
// tests, an HTML snapshot for server-side rendering, or a real browser
// through a remote driver.
//
// # Quick Start
//
//	doc := dom.NewDocument()
//	el := doc.CreateElement("div")
//	el.AddClass("toastkit-toast")
//	doc.Body().AppendChild(el)
//	html := dom.RenderHTML(doc.Body())
//
// # Events
//
// Elements carry handlers registered with On. Dispatch invokes them
// synchronously, which is how tests simulate a user click:
//
//	el.On("click", func() { dismissed = true })
//	dom.Click(el)
package dom
