package remotedom

import _ "embed"

// ClientScript is the thin browser client. It connects to the
// WebSocket endpoint, applies op frames to the real DOM, and forwards
// listened events back as event frames.
//
// Serve it at a path of your choosing and load it with:
//
//	<script src="/toastkit.js" data-ws="/ws"></script>
//
//go:embed toastkit.js
var ClientScript []byte
