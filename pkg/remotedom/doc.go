// Package remotedom implements dom.Document against a live browser.
//
// The document tree lives in Go, mirrored in memory; every mutation is
// also encoded as a small operation and streamed to a thin JavaScript
// client over a WebSocket, which applies it to the real DOM. Browser
// events registered with On travel the other way as event frames and
// are dispatched back onto the originating element.
//
//	srv := remotedom.NewServer(func(doc *remotedom.Document) {
//	    n := toast.New(doc)
//	    n.Info("Connected", "")
//	})
//	mux.Handle("/ws", srv)
//
// The wire format is one JSON frame per direction: {"type":"ops",
// "ops":[...]} outbound, {"type":"event","event":"click","id":"t3"}
// inbound. The client is served by ClientScript.
package remotedom
