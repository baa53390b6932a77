package manifest

import (
	"bytes"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// MaxQueryNodes bounds the number of nodes a single query returns
const MaxQueryNodes = 1000

// QueryNode is one node selected by an XPath expression
type QueryNode struct {
	Type  string `json:"type"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value"`
	XML   string `json:"xml,omitempty"`
}

// QueryResult holds either the selected nodes or the scalar value of an expression
type QueryResult struct {
	Expression string      `json:"expression"`
	Nodes      []QueryNode `json:"nodes,omitempty"`
	Value      interface{} `json:"value,omitempty"`
	Truncated  bool        `json:"truncated,omitempty"`
}

// Query evaluates expr against an MPD document. Element names match by local
// name, so "//Representation/@bandwidth" works without namespace prefixes.
func Query(data []byte, expr string) (*QueryResult, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	result := &QueryResult{Expression: expr}

	switch v := compiled.Evaluate(xmlquery.CreateXPathNavigator(doc)).(type) {
	case *xpath.NodeIterator:
		result.Nodes = []QueryNode{}
		for v.MoveNext() {
			if len(result.Nodes) == MaxQueryNodes {
				result.Truncated = true
				break
			}
			result.Nodes = append(result.Nodes, queryNode(v.Current()))
		}
	default:
		result.Value = v
	}

	return result, nil
}

func queryNode(nav xpath.NodeNavigator) QueryNode {
	n := QueryNode{
		Name:  nav.LocalName(),
		Value: nav.Value(),
	}

	switch nav.NodeType() {
	case xpath.ElementNode:
		n.Type = "element"
		if x, ok := nav.(*xmlquery.NodeNavigator); ok {
			n.XML = x.Current().OutputXML(true)
		}
	case xpath.AttributeNode:
		n.Type = "attribute"
	case xpath.TextNode:
		n.Type = "text"
		n.Name = ""
	default:
		n.Type = "other"
	}

	return n
}
