package dom

import (
	"sort"
	"strings"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// RenderHTML renders el and its subtree to an HTML string.
//
// Text nodes are escaped; raw nodes are emitted verbatim. Attributes
// are written in sorted order so output is deterministic.
func RenderHTML(el Element) string {
	var buf strings.Builder
	renderNode(&buf, el)
	return buf.String()
}

func renderNode(buf *strings.Builder, el Element) {
	if el == nil {
		return
	}

	switch el.Kind() {
	case TextNode:
		buf.WriteString(escapeHTML(el.Text()))
		return
	case RawNode:
		buf.WriteString(el.Text())
		return
	}

	tag := el.Tag()
	buf.WriteByte('<')
	buf.WriteString(tag)
	renderAttrs(buf, el)

	if IsVoidElement(tag) {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')

	for _, child := range el.Children() {
		renderNode(buf, child)
	}

	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
}

func renderAttrs(buf *strings.Builder, el Element) {
	attrs := el.Attrs()
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		buf.WriteByte(' ')
		buf.WriteString(key)
		buf.WriteString(`="`)
		buf.WriteString(escapeAttr(attrs[key]))
		buf.WriteByte('"')
	}
}

// escapeHTML escapes text for safe inclusion in HTML content.
// It converts special characters to their HTML entity equivalents
// to prevent XSS attacks.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard HTML entities, it also escapes
// whitespace characters that could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
