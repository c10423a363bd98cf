package response_test

import (
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TylerBromley/bindkit/core/response"
	"github.com/TylerBromley/bindkit/core/schema"
)

func testItem() *schema.Instance {
	inst := schema.NewInstance()
	inst.Put("name", "Foo", schema.PresenceSeen)
	inst.Put("description", nil, 0)
	inst.Put("price", 50.2, schema.PresenceSeen)
	inst.Put("tax", 10.5, schema.PresenceDefaultApplied)
	return inst
}

func TestPolicyApply(t *testing.T) {
	t.Parallel()

	t.Run("all fields keeps everything in order", func(t *testing.T) {
		t.Parallel()

		out := response.AllFields().Apply(testItem())
		assert.Equal(t, []string{"name", "description", "price", "tax"}, out.Names())
	})

	t.Run("exclude unset drops defaults and absences", func(t *testing.T) {
		t.Parallel()

		out := response.ExcludeUnset().Apply(testItem())
		assert.Equal(t, []string{"name", "price"}, out.Names())

		raw, err := json.Marshal(out)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"Foo","price":50.2}`, string(raw))
	})

	t.Run("exclude unset keeps explicit nulls", func(t *testing.T) {
		t.Parallel()

		inst := testItem()
		inst.Put("description", nil, schema.PresenceSeen|schema.PresenceWasNull)

		out := response.ExcludeUnset().Apply(inst)
		assert.Equal(t, []string{"name", "description", "price"}, out.Names())
	})

	t.Run("include only filters by name", func(t *testing.T) {
		t.Parallel()

		out := response.IncludeOnly("name", "description").Apply(testItem())
		assert.Equal(t, []string{"name", "description"}, out.Names())
	})

	t.Run("exclude only drops by name", func(t *testing.T) {
		t.Parallel()

		out := response.ExcludeOnly("tax").Apply(testItem())
		assert.Equal(t, []string{"name", "description", "price"}, out.Names())
	})

	t.Run("apply never mutates the input", func(t *testing.T) {
		t.Parallel()

		inst := testItem()
		_ = response.IncludeOnly("name").Apply(inst)
		assert.Equal(t, []string{"name", "description", "price", "tax"}, inst.Names())
	})
}

func TestJSONWithStatus(t *testing.T) {
	t.Parallel()

	t.Run("writes body and status", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)
		err := response.JSONWithStatus(map[string]string{"status": "ok"}, 201)(w, r)
		require.NoError(t, err)

		assert.Equal(t, 201, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("204 has no body", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest("DELETE", "/", nil)
		err := response.JSONWithStatus(nil, 0)(w, r)
		require.NoError(t, err)

		assert.Equal(t, 204, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestConvertError(t *testing.T) {
	t.Parallel()

	t.Run("validation errors become 422 with full detail list", func(t *testing.T) {
		t.Parallel()

		errs := schema.Errors{
			{Source: schema.SourcePath, Path: []string{"item_id"}, Kind: schema.TypeMismatch, Message: "value is not a valid integer"},
			{Source: schema.SourceQuery, Path: []string{"needy"}, Kind: schema.Missing, Message: "field is required"},
		}

		httpErr := response.ConvertError(errs)
		assert.Equal(t, 422, httpErr.Status)
		assert.Equal(t, "validation_failed", httpErr.Code)

		details, ok := httpErr.Details.([]map[string]any)
		require.True(t, ok)
		require.Len(t, details, 2)
		assert.Equal(t, []string{"item_id"}, details[0]["path"])
		assert.Equal(t, []string{"needy"}, details[1]["path"])
	})

	t.Run("http errors pass through", func(t *testing.T) {
		t.Parallel()

		httpErr := response.ConvertError(response.ErrNotFound)
		assert.Equal(t, 404, httpErr.Status)
	})

	t.Run("unknown errors become 500", func(t *testing.T) {
		t.Parallel()

		httpErr := response.ConvertError(assert.AnError)
		assert.Equal(t, 500, httpErr.Status)
	})
}
