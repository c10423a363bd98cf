package schema_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TylerBromley/bindkit/core/schema"
)

func TestInstanceMarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("preserves field order", func(t *testing.T) {
		t.Parallel()

		inst := schema.NewInstance()
		inst.Put("zebra", "z", schema.PresenceSeen)
		inst.Put("alpha", int64(1), schema.PresenceSeen)
		inst.Put("mid", nil, 0)

		raw, err := json.Marshal(inst)
		require.NoError(t, err)
		assert.Equal(t, `{"zebra":"z","alpha":1,"mid":null}`, string(raw))
	})

	t.Run("nested instances encode recursively", func(t *testing.T) {
		t.Parallel()

		child := schema.NewInstance()
		child.Put("url", "https://example.com/a.png", schema.PresenceSeen)
		child.Put("name", "a", schema.PresenceSeen)

		inst := schema.NewInstance()
		inst.Put("name", "Foo", schema.PresenceSeen)
		inst.Put("images", []any{child}, schema.PresenceSeen)

		raw, err := json.Marshal(inst)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Foo","images":[{"url":"https://example.com/a.png","name":"a"}]}`, string(raw))
	})

	t.Run("put keeps original position on overwrite", func(t *testing.T) {
		t.Parallel()

		inst := schema.NewInstance()
		inst.Put("a", 1, schema.PresenceSeen)
		inst.Put("b", 2, schema.PresenceSeen)
		inst.Put("a", 3, schema.PresenceDefaultApplied)

		assert.Equal(t, []string{"a", "b"}, inst.Names())
		assert.Equal(t, 3, inst.Value("a"))
		assert.False(t, inst.Seen("a"))
	})
}
