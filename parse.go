package svgadapt

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/svgadapt/svgdom"
)

// ParseError reports a failure to read or understand an input document:
// missing or unreadable file, empty content, malformed XML, or a root
// element that is not svg.
type ParseError struct {
	Msg   string
	Cause error
}

func (e *ParseError) Error() string { return e.Msg }

func (e *ParseError) Unwrap() error { return e.Cause }

func parseErrorf(cause error, format string, args ...interface{}) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// Parsed is the output of the parsing stage: the live document tree plus the
// graphic elements found in it, in document order.
type Parsed struct {
	Root     *svgdom.Node
	Elements []*ElementInfo
}

// ParseFile reads and parses the SVG file at path.
// I/O failures are reported distinctly from XML failures, with the offending
// path in the message.
func ParseFile(path string) (*Parsed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, parseErrorf(err, "file not found: %s", path)
		case os.IsPermission(err):
			return nil, parseErrorf(err, "permission denied: %s", path)
		}
		return nil, parseErrorf(err, "reading %s: %v", path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, parseErrorf(nil, "empty file: %s", path)
	}
	return parseBytes(data)
}

// Parse parses an SVG document from stream.
func Parse(stream io.Reader) (*Parsed, error) {
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, parseErrorf(err, "reading input: %v", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, parseErrorf(nil, "empty input")
	}
	return parseBytes(data)
}

func parseBytes(data []byte) (*Parsed, error) {
	root, err := svgdom.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, parseErrorf(err, "malformed XML: %v", err)
	}
	if root.Tag != "svg" {
		return nil, parseErrorf(nil, "not SVG: %s", root.Tag)
	}
	return &Parsed{Root: root, Elements: collectElements(root)}, nil
}

// collectElements gathers every graphic element of the tree, nested groups
// included, preserving document order. Document order determines paint
// z-order and later drives id numbering.
func collectElements(root *svgdom.Node) []*ElementInfo {
	var elements []*ElementInfo
	root.Walk(func(node *svgdom.Node) {
		if shapeTags[node.Tag] {
			elements = append(elements, newElementInfo(node))
		}
	})
	return elements
}
