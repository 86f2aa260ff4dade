package scope

import "encoding/json"

// Style selects the textual rendering used by SetSerialized.
type Style int

const (
	// StyleCompact renders the value on a single line.
	StyleCompact Style = iota
	// StylePretty renders the value indented for human consumption.
	StylePretty
)

// Serializer converts a property value to its textual form. The core
// treats serialization as a black box; swap implementations via
// Scope.WithSerializer when JSON is not the desired wire shape.
type Serializer interface {
	Serialize(v any, style Style) (string, error)
}

// JSON is the default Serializer, backed by encoding/json.
var JSON Serializer = jsonSerializer{}

type jsonSerializer struct{}

func (jsonSerializer) Serialize(v any, style Style) (string, error) {
	var (
		data []byte
		err  error
	)
	if style == StylePretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
