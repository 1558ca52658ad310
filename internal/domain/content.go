package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// Document bodies arrive in three shapes: the structured editor format
// (object/array), legacy plain-text notes, and nothing at all. EncodeContent
// and DecodeContent are the only two places that translate between the wire
// shape and the stored column, and they must stay inverses of each other:
// a client that sends an object gets the same object back, and a client
// that sends a legacy plain string gets that exact string back.

var emptyObject = datatypes.JSON([]byte("{}"))

// Content is a document body at the storage boundary: either a structured
// JSON value or legacy text that does not decode.
type Content struct {
	structured any
	legacyText string
	legacy     bool
}

func StructuredContent(v any) Content {
	return Content{structured: v}
}

func LegacyContent(text string) Content {
	return Content{legacyText: text, legacy: true}
}

func (c Content) IsLegacy() bool { return c.legacy }

// Value returns the decoded body: any JSON value for structured content,
// the raw text for legacy content.
func (c Content) Value() any {
	if c.legacy {
		return c.legacyText
	}
	return c.structured
}

func (c Content) MarshalJSON() ([]byte, error) {
	if c.legacy {
		return json.Marshal(c.legacyText)
	}
	return json.Marshal(c.structured)
}

// EncodeContent normalizes an incoming body for storage:
//
//  1. absent or empty-string content becomes an empty object;
//  2. a structured value (object/array/primitive) is stored as its JSON text;
//  3. a non-empty string that itself parses as JSON is stored verbatim,
//     otherwise the string is stored re-encoded as a JSON string value.
//
// Branch 3 keeps pre-structured-editor plain-text notes readable without
// double-wrapping them on every save.
func EncodeContent(raw json.RawMessage) datatypes.JSON {
	if len(bytes.TrimSpace(raw)) == 0 {
		return emptyObject
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		// Not JSON at all. Store the raw text as a string value.
		enc, _ := json.Marshal(string(raw))
		return datatypes.JSON(enc)
	}

	switch s := v.(type) {
	case nil:
		return emptyObject
	case string:
		if strings.TrimSpace(s) == "" {
			return emptyObject
		}
		if json.Valid([]byte(s)) {
			// The client serialized the document itself; keep its text.
			return datatypes.JSON([]byte(s))
		}
		return datatypes.JSON(raw)
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return datatypes.JSON(raw)
		}
		return datatypes.JSON(buf.Bytes())
	}
}

// DecodeContent is the inverse of EncodeContent: stored text is parsed back
// to a structured value, and text that fails to parse (legacy rows) is
// surfaced unchanged.
func DecodeContent(stored datatypes.JSON) Content {
	if len(stored) == 0 {
		return StructuredContent(map[string]any{})
	}
	var v any
	if err := json.Unmarshal(stored, &v); err != nil {
		return LegacyContent(string(stored))
	}
	return StructuredContent(v)
}
