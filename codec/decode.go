package codec

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Key that holds the text of an element that has both text and child elements.
const mixedTextKey = "_"

// Decode parses a body under its declared content type.
//
// An empty body is always BodyNone, whatever the content type. JSON and XML bodies become
// BodyValue; malformed ones produce a CodecError. Any other content type, including none, gives
// BodyText with the data unchanged.
//
// XML is converted the way xml2js does with explicitArray disabled: the result is an object whose
// only key is the root element name, an element with only text becomes a string, and repeated
// child elements become an array. Use Elements to read a collection that may have one item or
// several.
func Decode(data []byte, contentType string) (Body, error) {
	if len(data) == 0 {
		return NoBody(), nil
	}
	switch ResolveMediaType(contentType) {
	case JSON:
		var v ldvalue.Value
		if err := json.Unmarshal(data, &v); err != nil {
			return Body{}, &CodecError{Op: "decode", ContentType: contentType, Err: err}
		}
		return Body{Kind: BodyValue, Value: v, raw: string(data)}, nil
	case XML:
		v, err := decodeXML(data)
		if err != nil {
			return Body{}, &CodecError{Op: "decode", ContentType: contentType, Err: err}
		}
		return Body{Kind: BodyValue, Value: v, raw: string(data)}, nil
	default:
		return Body{Kind: BodyText, Text: string(data), raw: string(data)}, nil
	}
}

// Elements returns the items of a decoded collection. A JSON array or a repeated XML element gives
// all of its items, a single XML element gives a list of one, and null or an empty element gives
// an empty list.
func Elements(v ldvalue.Value) []ldvalue.Value {
	switch v.Type() {
	case ldvalue.NullType:
		return nil
	case ldvalue.ArrayType:
		ret := make([]ldvalue.Value, 0, v.Count())
		for i := 0; i < v.Count(); i++ {
			ret = append(ret, v.GetByIndex(i))
		}
		return ret
	case ldvalue.StringType:
		if v.StringValue() == "" {
			return nil
		}
	}
	return []ldvalue.Value{v}
}

type xmlNode struct {
	name     string
	text     strings.Builder
	children []*xmlNode
}

func decodeXML(data []byte) (ldvalue.Value, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var stack []*xmlNode
	var root *xmlNode
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ldvalue.Null(), err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if root != nil {
				return ldvalue.Null(), errors.New("document has more than one root element")
			}
			stack = append(stack, &xmlNode{name: t.Name.Local})
		case xml.EndElement:
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, node)
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			} else if len(bytes.TrimSpace(t)) != 0 {
				return ldvalue.Null(), fmt.Errorf("unexpected text outside of the root element: %q", string(t))
			}
		}
	}
	if root == nil {
		return ldvalue.Null(), errors.New("document has no root element")
	}
	return ldvalue.ObjectBuild().Set(root.name, root.value()).Build(), nil
}

func (n *xmlNode) value() ldvalue.Value {
	if len(n.children) == 0 {
		return ldvalue.String(n.text.String())
	}
	var names []string
	grouped := make(map[string][]ldvalue.Value)
	for _, c := range n.children {
		if _, ok := grouped[c.name]; !ok {
			names = append(names, c.name)
		}
		grouped[c.name] = append(grouped[c.name], c.value())
	}
	b := ldvalue.ObjectBuild()
	if text := strings.TrimSpace(n.text.String()); text != "" {
		b.Set(mixedTextKey, ldvalue.String(text))
	}
	for _, name := range names {
		if values := grouped[name]; len(values) == 1 {
			b.Set(name, values[0])
		} else {
			b.Set(name, ldvalue.ArrayOf(values...))
		}
	}
	return b.Build()
}
