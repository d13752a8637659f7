package xmp

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Node is a generic XML element tree. Lightroom side-car metadata arrives
// as arbitrary RDF/XMP documents, so the tree keeps names, attributes, and
// children without any schema knowledge.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []Node     `xml:",any"`
	Text     string     `xml:",chardata"`
}

// Parse decodes an XML document into a Node tree. Content after the root
// element is ignored.
func Parse(data []byte) (*Node, error) {
	var root Node
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		return nil, fmt.Errorf("parse xmp: %w", err)
	}
	return &root, nil
}

// Child returns the first child element whose local name matches, ignoring
// namespace prefixes. A nil receiver or a missing child both return nil, so
// lookups chain safely over malformed trees.
func (n *Node) Child(local string) *Node {
	if n == nil {
		return nil
	}
	for i := range n.Children {
		if n.Children[i].XMLName.Local == local {
			return &n.Children[i]
		}
	}
	return nil
}

// EachChild visits every child element with the given local name.
func (n *Node) EachChild(local string, fn func(*Node) bool) {
	if n == nil {
		return
	}
	for i := range n.Children {
		if n.Children[i].XMLName.Local == local {
			if !fn(&n.Children[i]) {
				return
			}
		}
	}
}

// Attr returns the value of the attribute with the given local name. The
// boolean reports whether the attribute was present. Nil receivers report
// absence.
func (n *Node) Attr(local string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attrs {
		if attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}

// Is reports whether the element's local name matches.
func (n *Node) Is(local string) bool {
	return n != nil && n.XMLName.Local == local
}
