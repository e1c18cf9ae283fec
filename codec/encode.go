package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const todoElement = "todo"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
	"\r", "&#xD;",
)

// Fields that come first, in this order, when a todo is written as XML. Any other fields follow
// in name order.
var leadingFields = []string{"id", "title", "description", "doneStatus"}

// Encode serializes a record under the declared content type. For XML the record must be an
// object, and it becomes a single <todo> element with one child element per field.
func Encode(record ldvalue.Value, contentType string) ([]byte, error) {
	switch ResolveMediaType(contentType) {
	case JSON:
		data, err := json.Marshal(record)
		if err != nil {
			return nil, &CodecError{Op: "encode", ContentType: contentType, Err: err}
		}
		return data, nil
	case XML:
		if record.Type() != ldvalue.ObjectType {
			return nil, &CodecError{Op: "encode", ContentType: contentType,
				Err: fmt.Errorf("record must be an object, got %s", record.JSONString())}
		}
		data, err := MarshalXMLElement(todoElement, record)
		if err != nil {
			return nil, &CodecError{Op: "encode", ContentType: contentType, Err: err}
		}
		return data, nil
	default:
		return nil, &CodecError{Op: "encode", ContentType: contentType, Err: ErrUnsupportedContentType}
	}
}

// MarshalXMLElement writes a value as an XML element with the given name. Object fields become
// child elements, and an array inside an object becomes repeated elements of the same name, so
// {"todo": [a, b]} under "todos" is written as <todos><todo>a</todo><todo>b</todo></todos>.
func MarshalXMLElement(name string, v ldvalue.Value) ([]byte, error) {
	if v.Type() == ldvalue.ArrayType {
		return nil, errors.New("the root of an XML document cannot be an array")
	}
	var buf bytes.Buffer
	if err := writeXMLElement(&buf, name, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeXMLElement(buf *bytes.Buffer, name string, v ldvalue.Value) error {
	if v.Type() == ldvalue.ArrayType {
		for i := 0; i < v.Count(); i++ {
			if err := writeXMLElement(buf, name, v.GetByIndex(i)); err != nil {
				return err
			}
		}
		return nil
	}
	if !isXMLName(name) {
		return fmt.Errorf("%q is not a valid XML element name", name)
	}
	buf.WriteString("<" + name + ">")
	switch v.Type() {
	case ldvalue.NullType:
	case ldvalue.BoolType:
		buf.WriteString(strconv.FormatBool(v.BoolValue()))
	case ldvalue.NumberType:
		if v.IsInt() {
			buf.WriteString(strconv.Itoa(v.IntValue()))
		} else {
			buf.WriteString(strconv.FormatFloat(v.Float64Value(), 'f', -1, 64))
		}
	case ldvalue.StringType:
		if err := checkXMLText(name, v.StringValue()); err != nil {
			return err
		}
		buf.WriteString(xmlEscaper.Replace(v.StringValue()))
	case ldvalue.ObjectType:
		for _, field := range fieldOrder(v) {
			if err := writeXMLElement(buf, field, v.GetByKey(field)); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("cannot write %s as XML", v.JSONString())
	}
	buf.WriteString("</" + name + ">")
	return nil
}

func checkXMLText(name, s string) error {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return fmt.Errorf("field %q is not valid UTF-8", name)
			}
		}
		if !isXMLChar(r) {
			return fmt.Errorf("field %q contains a character that XML cannot represent: %U", name, r)
		}
	}
	return nil
}

// isXMLChar follows the Char production of XML 1.0.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}

func fieldOrder(v ldvalue.Value) []string {
	m, _ := v.AsArbitraryValue().(map[string]interface{})
	ret := make([]string, 0, len(m))
	for _, f := range leadingFields {
		if _, ok := m[f]; ok {
			ret = append(ret, f)
		}
	}
	var rest []string
	for k := range m {
		if !isLeadingField(k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(ret, rest...)
}

func isLeadingField(name string) bool {
	for _, f := range leadingFields {
		if f == name {
			return true
		}
	}
	return false
}

func isXMLName(name string) bool {
	if name == "" {
		return false
	}
	for i, ch := range name {
		switch {
		case ch == '_' || ch == ':',
			ch >= 'a' && ch <= 'z',
			ch >= 'A' && ch <= 'Z':
		case i > 0 && (ch == '-' || ch == '.' || ch >= '0' && ch <= '9'):
		default:
			return false
		}
	}
	return true
}
