package toast

import (
	"strconv"

	"github.com/toastkit-dev/toastkit/pkg/dom"
)

// build constructs the element tree for one notification:
//
//	div.toastkit-toast.toastkit-<kind>
//	    span.toastkit-icon        (ShowIcon and an icon exists for kind)
//	    div.toastkit-content
//	        div.toastkit-title    (title non-empty)
//	        div.toastkit-message  (message non-empty)
//	    div.toastkit-progress     (AutoClose and ProgressBar)
//
// The progress element carries the configured duration; the depletion
// animation itself belongs to the stylesheet.
func build(doc dom.Document, kind Kind, title, message string, cfg Config) dom.Element {
	root := doc.CreateElement("div")
	root.AddClass(classToast, classPrefix+string(kind))
	root.SetAttr("role", "status")

	if cfg.ShowIcon {
		if icon, ok := cfg.Icons[kind]; ok {
			root.AppendChild(buildIcon(doc, icon))
		}
	}

	content := doc.CreateElement("div")
	content.AddClass(classContent)
	if title != "" {
		el := doc.CreateElement("div")
		el.AddClass(classTitle)
		el.AppendChild(doc.CreateText(title))
		content.AppendChild(el)
	}
	if message != "" {
		el := doc.CreateElement("div")
		el.AddClass(classMessage)
		el.AppendChild(doc.CreateText(message))
		content.AppendChild(el)
	}
	root.AppendChild(content)

	if cfg.AutoClose && cfg.ProgressBar {
		root.AppendChild(buildProgress(doc, cfg))
	}

	return root
}

// buildIcon wraps the icon token in its span. Markup icons pass
// through unescaped; callers supplying markup are trusted.
func buildIcon(doc dom.Document, icon Icon) dom.Element {
	el := doc.CreateElement("span")
	el.AddClass(classIcon)
	if icon.HTML {
		el.AppendChild(doc.CreateRawHTML(icon.Content))
	} else {
		el.AppendChild(doc.CreateText(icon.Content))
	}
	return el
}

// buildProgress encodes the auto-close duration for the stylesheet's
// depletion animation.
func buildProgress(doc dom.Document, cfg Config) dom.Element {
	ms := strconv.FormatInt(cfg.Duration.Milliseconds(), 10)
	el := doc.CreateElement("div")
	el.AddClass(classProgress)
	el.SetAttr("data-duration", ms)
	el.SetAttr("style", "animation-duration: "+ms+"ms")
	return el
}
