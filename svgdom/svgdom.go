// Package svgdom provides a small mutable document tree for SVG files.
// Documents are decoded from an XML token stream and may be mutated
// (attributes, children) before being serialized back with WriteIndented.
package svgdom

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// NodeKind discriminates the node variants stored in a document tree.
type NodeKind uint8

const (
	ElementNode NodeKind = iota
	TextNode
	CommentNode
)

// Attr is a single XML attribute, with the name as written in the source
// (prefix included for xmlns and xlink attributes).
type Attr struct {
	Name  string
	Value string
}

// Node is one node of the document tree. Element nodes carry Tag, Attrs and
// Children; text and comment nodes carry Data only.
type Node struct {
	Kind     NodeKind
	Tag      string
	Attrs    []Attr
	Children []*Node
	Data     string
}

// Attr returns the value of the named attribute, and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing an existing value or appending
// a new attribute at the end of the list.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// RemoveAttr deletes the named attribute, reporting whether it was present.
func (n *Node) RemoveAttr(name string) bool {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Walk visits every element node of the subtree rooted at n, in document
// order, n included.
func (n *Node) Walk(fn func(*Node)) {
	if n.Kind == ElementNode {
		fn(n)
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// wellKnownPrefixes seeds the URI-to-prefix table with namespaces whose
// prefix is fixed by convention even without a matching declaration.
var wellKnownPrefixes = map[string]string{
	"http://www.w3.org/1999/xlink":         "xlink",
	"http://www.w3.org/XML/1998/namespace": "xml",
}

// attrName rebuilds the source spelling of an attribute name from the
// namespace-resolved form reported by the decoder. prefixes maps the
// namespace URIs declared in scope back to their prefix, so attributes like
// inkscape:version keep their prefix instead of collapsing onto the local
// name of an unrelated attribute. An attribute in a namespace no prefix can
// express is dropped (ok false), keeping the serialized document well-formed.
func attrName(name xml.Name, prefixes map[string]string) (string, bool) {
	switch name.Space {
	case "":
		return name.Local, true
	case "xmlns":
		return "xmlns:" + name.Local, true
	}
	if prefix, ok := prefixes[name.Space]; ok {
		return prefix + ":" + name.Local, true
	}
	if strings.Contains(name.Space, "://") {
		return "", false
	}
	// an undeclared prefix reaches us unresolved; keep it as written
	return name.Space + ":" + name.Local, true
}

// nsBinding records the previous state of one URI-to-prefix entry so a
// declaration can be unwound when the element carrying it closes.
type nsBinding struct {
	uri, prefix string
	bound       bool
}

// declarePrefixes records the xmlns:* declarations of one start element and
// returns the bindings needed to restore the enclosing scope.
func declarePrefixes(prefixes map[string]string, attrs []xml.Attr) []nsBinding {
	var undo []nsBinding
	for _, a := range attrs {
		if a.Name.Space != "xmlns" {
			continue
		}
		prev, bound := prefixes[a.Value]
		undo = append(undo, nsBinding{uri: a.Value, prefix: prev, bound: bound})
		prefixes[a.Value] = a.Name.Local
	}
	return undo
}

func undoPrefixes(prefixes map[string]string, undo []nsBinding) {
	for i := len(undo) - 1; i >= 0; i-- {
		b := undo[i]
		if b.bound {
			prefixes[b.uri] = b.prefix
		} else {
			delete(prefixes, b.uri)
		}
	}
}

// Decode reads an XML document from stream and returns its root element.
// The decoder follows charset labels in the XML prolog, so non-UTF-8
// documents decode transparently.
func Decode(stream io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	prefixes := make(map[string]string, len(wellKnownPrefixes)+2)
	for uri, prefix := range wellKnownPrefixes {
		prefixes[uri] = prefix
	}

	var root *Node
	var stack []*Node
	var scopes [][]nsBinding
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			scopes = append(scopes, declarePrefixes(prefixes, se.Attr))
			node := &Node{Kind: ElementNode, Tag: se.Name.Local}
			for _, a := range se.Attr {
				name, ok := attrName(a.Name, prefixes)
				if !ok {
					continue
				}
				node.Attrs = append(node.Attrs, Attr{Name: name, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			// the decoder guarantees matching end elements in strict mode
			stack = stack[:len(stack)-1]
			undoPrefixes(prefixes, scopes[len(scopes)-1])
			scopes = scopes[:len(scopes)-1]
		case xml.CharData:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, &Node{Kind: TextNode, Data: string(se)})
			}
		case xml.Comment:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, &Node{Kind: CommentNode, Data: string(se)})
			}
		}
	}
	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}
