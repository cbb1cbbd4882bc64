// Package config loads the two skeleton configuration layers from KDL
// documents: the shared skeleton layer (skeleton.kdl, with its scanned
// content tree) and the per-project override layer (.skeleton.kdl).
//
// All direct contact with the KDL parser API is confined to this file; the
// loaders work in terms of the small helpers below.
package config

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/arthur-debert/skel/pkg/errors"
)

// parseDocument parses KDL configuration text. Parse failures surface as
// CONFIG_PARSE with the parser's own message as the cause.
func parseDocument(text string) (*document.Document, error) {
	doc, err := kdl.Parse(strings.NewReader(text))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "configuration is not a well-formed KDL document")
	}
	return doc, nil
}

// nodeName returns the name of a node as plain text.
func nodeName(node *document.Node) string {
	return node.Name.String()
}

// findNode returns the first top-level node with the given name, or nil.
func findNode(doc *document.Document, name string) *document.Node {
	for _, node := range doc.Nodes {
		if nodeName(node) == name {
			return node
		}
	}
	return nil
}

// asString unpacks a value that must be a string.
func asString(value *document.Value) (string, bool) {
	s, ok := value.Value.(string)
	return s, ok
}

// valueText coerces any KDL scalar to its textual form: strings pass
// through, numbers and booleans stringify, null becomes the literal "null".
func valueText(value *document.Value) string {
	switch v := value.Value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case *big.Int:
		return v.String()
	case *big.Float:
		return v.Text('f', -1)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// valueScalar normalizes a KDL scalar to the binding types used by the
// variables map: string, int64, float64, bool or nil.
func valueScalar(value *document.Value) (interface{}, error) {
	switch v := value.Value.(type) {
	case nil, string, bool, int64, float64:
		return v, nil
	case int:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case *big.Int:
		return v.Int64(), nil
	case *big.Float:
		f, acc := v.Float64()
		if acc != big.Exact && acc != big.Below && acc != big.Above {
			return nil, errors.Newf(errors.ErrInvalidFloat, "float value %s is not representable", v.String())
		}
		return f, nil
	default:
		return valueText(value), nil
	}
}

// propertyStrings collects every named entry on a node into a map, with
// values coerced to text. Positional entries are not included.
func propertyStrings(node *document.Node) map[string]string {
	vars := make(map[string]string, len(node.Properties))
	for _, prop := range node.Properties {
		vars[prop.Name.String()] = valueText(prop.Value)
	}
	return vars
}

// firstStringArg returns the first positional argument of the named
// top-level node, which must be a string. When the node is absent the
// fallback value is returned instead.
func firstStringArg(doc *document.Document, docText, name string, fallback func() (string, error)) (string, error) {
	node := findNode(doc, name)
	if node == nil {
		return fallback()
	}
	return nodeStringArg(node, docText)
}

// nodeStringArg returns a node's first positional argument, requiring it to
// exist and to be a string.
func nodeStringArg(node *document.Node, docText string) (string, error) {
	if len(node.Arguments) == 0 {
		return "", errors.NewConfig(errors.ErrMissingArgument, nodeName(node), docText, "missing required argument")
	}
	value, ok := asString(node.Arguments[0])
	if !ok {
		return "", errors.NewConfig(errors.ErrInvalidString, nodeName(node), docText, "argument must be a string")
	}
	return value, nil
}

// variablesFrom builds the variable bindings from the document's single
// top-level "variables" node. Each child's name binds the child's first
// positional scalar; a child with no entry is an error. A document without
// a variables node yields an empty binding set.
func variablesFrom(doc *document.Document, docText string) (map[string]interface{}, error) {
	variables := make(map[string]interface{})

	node := findNode(doc, "variables")
	if node == nil {
		return variables, nil
	}

	for _, child := range node.Children {
		name := nodeName(child)
		if len(child.Arguments) == 0 {
			return nil, errors.NewConfig(errors.ErrMissingArgument, name, docText, "variable has no value")
		}
		value, err := valueScalar(child.Arguments[0])
		if err != nil {
			return nil, err
		}
		variables[name] = value
	}

	return variables, nil
}
