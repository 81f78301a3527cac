package svgdom

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

const indentStep = "  "

// WriteIndented serializes the subtree rooted at n, one tag per line,
// indented by two spaces per nesting depth. Text and attribute values are
// escaped, so markup characters inside them never reach the output raw.
func (n *Node) WriteIndented(w io.Writer) error {
	var buf bytes.Buffer
	writeNode(&buf, n, 0)
	_, err := w.Write(buf.Bytes())
	return err
}

// String returns the indented serialization of the subtree rooted at n.
func (n *Node) String() string {
	var buf bytes.Buffer
	writeNode(&buf, n, 0)
	return buf.String()
}

func writeNode(buf *bytes.Buffer, n *Node, depth int) {
	indent := strings.Repeat(indentStep, depth)
	switch n.Kind {
	case TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return
		}
		buf.WriteString(indent)
		escapeInto(buf, text)
		buf.WriteByte('\n')
	case CommentNode:
		buf.WriteString(indent)
		buf.WriteString("<!--")
		buf.WriteString(n.Data)
		buf.WriteString("-->\n")
	case ElementNode:
		buf.WriteString(indent)
		buf.WriteByte('<')
		buf.WriteString(n.Tag)
		for _, a := range n.Attrs {
			buf.WriteByte(' ')
			buf.WriteString(a.Name)
			buf.WriteString(`="`)
			escapeInto(buf, a.Value)
			buf.WriteByte('"')
		}
		if len(n.Children) == 0 {
			buf.WriteString("/>\n")
			return
		}
		if text, ok := n.textOnly(); ok {
			buf.WriteByte('>')
			escapeInto(buf, text)
			buf.WriteString("</")
			buf.WriteString(n.Tag)
			buf.WriteString(">\n")
			return
		}
		buf.WriteString(">\n")
		for _, child := range n.Children {
			writeNode(buf, child, depth+1)
		}
		buf.WriteString(indent)
		buf.WriteString("</")
		buf.WriteString(n.Tag)
		buf.WriteString(">\n")
	}
}

// textOnly reports whether the element contains nothing but character data,
// and returns that data trimmed. Elements like <title> keep their content on
// a single line this way.
func (n *Node) textOnly() (string, bool) {
	var sb strings.Builder
	for _, child := range n.Children {
		if child.Kind != TextNode {
			return "", false
		}
		sb.WriteString(child.Data)
	}
	return strings.TrimSpace(sb.String()), true
}

func escapeInto(buf *bytes.Buffer, s string) {
	// xml.EscapeText never fails on a bytes.Buffer
	xml.EscapeText(buf, []byte(s)) //nolint:errcheck
}
