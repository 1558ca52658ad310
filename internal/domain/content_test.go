package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/nikov/simplenote-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestEncodeContent(t *testing.T) {
	tests := []struct {
		name string
		raw  json.RawMessage
		want string
	}{
		{
			name: "absent content becomes empty object",
			raw:  nil,
			want: `{}`,
		},
		{
			name: "empty string becomes empty object",
			raw:  json.RawMessage(`""`),
			want: `{}`,
		},
		{
			name: "whitespace string becomes empty object",
			raw:  json.RawMessage(`"   "`),
			want: `{}`,
		},
		{
			name: "null becomes empty object",
			raw:  json.RawMessage(`null`),
			want: `{}`,
		},
		{
			name: "object stored as its JSON text",
			raw:  json.RawMessage(`{"type": "doc", "blocks": [1, 2]}`),
			want: `{"type":"doc","blocks":[1,2]}`,
		},
		{
			name: "array stored as its JSON text",
			raw:  json.RawMessage(`[1, 2, 3]`),
			want: `[1,2,3]`,
		},
		{
			name: "string holding JSON stored verbatim",
			raw:  json.RawMessage(`"{\"a\": 1}"`),
			want: `{"a": 1}`,
		},
		{
			name: "plain string stored as JSON string value",
			raw:  json.RawMessage(`"plain text"`),
			want: `"plain text"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.EncodeContent(tt.raw)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecodeContent(t *testing.T) {
	t.Run("empty column decodes to empty object", func(t *testing.T) {
		c := domain.DecodeContent(nil)
		assert.False(t, c.IsLegacy())
		assert.Equal(t, map[string]any{}, c.Value())
	})

	t.Run("object decodes to structured value", func(t *testing.T) {
		c := domain.DecodeContent(datatypes.JSON(`{"a":1}`))
		assert.False(t, c.IsLegacy())
		assert.Equal(t, map[string]any{"a": float64(1)}, c.Value())
	})

	t.Run("stored string value decodes to the string", func(t *testing.T) {
		c := domain.DecodeContent(datatypes.JSON(`"plain text"`))
		assert.False(t, c.IsLegacy())
		assert.Equal(t, "plain text", c.Value())
	})

	t.Run("unparseable legacy text surfaces unchanged", func(t *testing.T) {
		c := domain.DecodeContent(datatypes.JSON(`just some old note`))
		assert.True(t, c.IsLegacy())
		assert.Equal(t, "just some old note", c.Value())
	})
}

func TestContentRoundTrip(t *testing.T) {
	t.Run("structured content round-trips by shape", func(t *testing.T) {
		stored := domain.EncodeContent(json.RawMessage(`{"a": 1, "b": ["x"]}`))
		got := domain.DecodeContent(stored)
		assert.Equal(t, map[string]any{"a": float64(1), "b": []any{"x"}}, got.Value())
	})

	t.Run("legacy plain string round-trips without re-wrapping", func(t *testing.T) {
		stored := domain.EncodeContent(json.RawMessage(`"plain text"`))
		got := domain.DecodeContent(stored)
		assert.Equal(t, "plain text", got.Value())

		// A second save of what the client got back must not wrap it again.
		again := domain.EncodeContent(json.RawMessage(`"plain text"`))
		assert.Equal(t, string(stored), string(again))
	})
}

func TestContentMarshalJSON(t *testing.T) {
	t.Run("structured content marshals as its value", func(t *testing.T) {
		out, err := json.Marshal(domain.StructuredContent(map[string]any{"a": 1}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(out))
	})

	t.Run("legacy content marshals as a JSON string", func(t *testing.T) {
		out, err := json.Marshal(domain.LegacyContent("old note"))
		require.NoError(t, err)
		assert.Equal(t, `"old note"`, string(out))
	})
}
