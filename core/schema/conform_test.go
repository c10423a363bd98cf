package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TylerBromley/bindkit/core/schema"
)

func testItemModel() *schema.ModelSpec {
	image := schema.NewModel("Image",
		schema.Field("url", schema.SourceBody, schema.URL(), schema.Required()),
		schema.Field("name", schema.SourceBody, schema.String(), schema.Required()),
	)
	return schema.NewModel("Item",
		schema.Field("name", schema.SourceBody, schema.String(), schema.Required()),
		schema.Field("description", schema.SourceBody, schema.String(), schema.MaxLength(300)),
		schema.Field("price", schema.SourceBody, schema.Float(), schema.Required(), schema.GreaterThan(0)),
		schema.Field("tax", schema.SourceBody, schema.Float(), schema.Default(10.5)),
		schema.Field("tags", schema.SourceBody, schema.Set(schema.String())),
		schema.Field("images", schema.SourceBody, schema.List(schema.Model(image))),
	)
}

func TestModelConform(t *testing.T) {
	t.Parallel()

	model := testItemModel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		inst, err := model.Conform(map[string]any{
			"name":  "Foo",
			"price": 50.2,
		})
		require.NoError(t, err)

		assert.Equal(t, "Foo", inst.String("name"))
		assert.Equal(t, 50.2, inst.Float("price"))
		assert.Equal(t, 10.5, inst.Float("tax"))
		assert.True(t, inst.Seen("name"))
		assert.False(t, inst.Seen("tax"))
		assert.Equal(t, schema.PresenceDefaultApplied, inst.Presence("tax"))
	})

	t.Run("field order follows declaration order", func(t *testing.T) {
		t.Parallel()

		inst, err := model.Conform(map[string]any{
			"price": 1.0,
			"name":  "Foo",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "description", "price", "tax", "tags", "images"}, inst.Names())
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		_, err := model.Conform(map[string]any{"price": 9.99})
		require.Error(t, err)

		errs, ok := err.(schema.Errors)
		require.True(t, ok)
		require.Len(t, errs, 1)
		assert.Equal(t, schema.Missing, errs[0].Kind)
		assert.Equal(t, []string{"name"}, errs[0].Path)
		assert.Equal(t, schema.SourceBody, errs[0].Source)
	})

	t.Run("all failures are collected in declaration order", func(t *testing.T) {
		t.Parallel()

		_, err := model.Conform(map[string]any{
			"price": 0.0,
			"tax":   "free",
		})
		require.Error(t, err)

		errs := err.(schema.Errors)
		require.Len(t, errs, 3)
		assert.Equal(t, schema.Missing, errs[0].Kind) // name
		assert.Equal(t, schema.ConstraintViolation, errs[1].Kind)
		assert.Equal(t, []string{"price"}, errs[1].Path)
		assert.Equal(t, schema.TypeMismatch, errs[2].Kind)
		assert.Equal(t, []string{"tax"}, errs[2].Path)
	})

	t.Run("greater than is strict", func(t *testing.T) {
		t.Parallel()

		_, err := model.Conform(map[string]any{"name": "x", "price": 0.0})
		require.Error(t, err)

		inst, err := model.Conform(map[string]any{"name": "x", "price": 0.0001})
		require.NoError(t, err)
		assert.Equal(t, 0.0001, inst.Float("price"))

		_, err = model.Conform(map[string]any{"name": "x", "price": -1.0})
		require.Error(t, err)
	})

	t.Run("length bounds are inclusive", func(t *testing.T) {
		t.Parallel()

		bounded := schema.NewModel("Bounded",
			schema.Field("q", schema.SourceBody, schema.String(),
				schema.Required(), schema.MinLength(3), schema.MaxLength(5)),
		)

		for _, valid := range []string{"abc", "abcde"} {
			_, err := bounded.Conform(map[string]any{"q": valid})
			assert.NoError(t, err, valid)
		}
		for _, invalid := range []string{"ab", "abcdef"} {
			_, err := bounded.Conform(map[string]any{"q": invalid})
			require.Error(t, err, invalid)
			errs := err.(schema.Errors)
			assert.Equal(t, schema.ConstraintViolation, errs[0].Kind)
		}
	})

	t.Run("constraints run only after coercion succeeds", func(t *testing.T) {
		t.Parallel()

		_, err := model.Conform(map[string]any{"name": "x", "price": "expensive"})
		require.Error(t, err)

		errs := err.(schema.Errors)
		require.Len(t, errs, 1)
		assert.Equal(t, schema.TypeMismatch, errs[0].Kind)
	})

	t.Run("nested model errors carry full paths", func(t *testing.T) {
		t.Parallel()

		_, err := model.Conform(map[string]any{
			"name":  "x",
			"price": 1.0,
			"images": []any{
				map[string]any{"url": "https://example.com/a.png", "name": "a"},
				map[string]any{"url": "not-a-url", "name": "b"},
			},
		})
		require.Error(t, err)

		errs := err.(schema.Errors)
		require.Len(t, errs, 1)
		assert.Equal(t, schema.TypeMismatch, errs[0].Kind)
		assert.Equal(t, []string{"images", "1", "url"}, errs[0].Path)
	})

	t.Run("set deduplicates by value equality", func(t *testing.T) {
		t.Parallel()

		inst, err := model.Conform(map[string]any{
			"name":  "x",
			"price": 1.0,
			"tags":  []any{"go", "web", "go", "web", "api"},
		})
		require.NoError(t, err)
		assert.Equal(t, []any{"go", "web", "api"}, inst.Value("tags"))
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		t.Parallel()

		inst, err := model.Conform(map[string]any{
			"name":       "x",
			"price":      1.0,
			"unexpected": "whatever",
		})
		require.NoError(t, err)
		_, ok := inst.Get("unexpected")
		assert.False(t, ok)
	})

	t.Run("integral float coerces to int", func(t *testing.T) {
		t.Parallel()

		counted := schema.NewModel("Counted",
			schema.Field("count", schema.SourceBody, schema.Int(), schema.Required()),
		)

		inst, err := counted.Conform(map[string]any{"count": 3.0})
		require.NoError(t, err)
		assert.Equal(t, int64(3), inst.Int("count"))

		_, err = counted.Conform(map[string]any{"count": 3.5})
		require.Error(t, err)
	})
}

func TestFieldBindString(t *testing.T) {
	t.Parallel()

	t.Run("primitives", func(t *testing.T) {
		t.Parallel()

		v, errs := schema.Field("n", schema.SourceQuery, schema.Int()).BindString("42")
		require.Empty(t, errs)
		assert.Equal(t, int64(42), v)

		v, errs = schema.Field("x", schema.SourceQuery, schema.Float()).BindString("3.14")
		require.Empty(t, errs)
		assert.Equal(t, 3.14, v)

		v, errs = schema.Field("b", schema.SourceQuery, schema.Bool()).BindString("true")
		require.Empty(t, errs)
		assert.Equal(t, true, v)

		v, errs = schema.Field("b", schema.SourceForm, schema.Bool()).BindString("on")
		require.Empty(t, errs)
		assert.Equal(t, true, v)
	})

	t.Run("invalid integer", func(t *testing.T) {
		t.Parallel()

		_, errs := schema.Field("n", schema.SourcePath, schema.Int()).BindString("abc")
		require.Len(t, errs, 1)
		assert.Equal(t, schema.TypeMismatch, errs[0].Kind)
		assert.Equal(t, schema.SourcePath, errs[0].Source)
	})

	t.Run("enum lists permitted values", func(t *testing.T) {
		t.Parallel()

		f := schema.Field("model_name", schema.SourcePath, schema.Enum("alexnet", "resnet", "lenet"))

		v, errs := f.BindString("lenet")
		require.Empty(t, errs)
		assert.Equal(t, "lenet", v)

		_, errs = f.BindString("vgg")
		require.Len(t, errs, 1)
		assert.Equal(t, schema.TypeMismatch, errs[0].Kind)
		assert.Equal(t, []string{"alexnet", "resnet", "lenet"}, errs[0].Params["permitted"])
	})

	t.Run("url requires scheme and host", func(t *testing.T) {
		t.Parallel()

		f := schema.Field("u", schema.SourceQuery, schema.URL())

		_, errs := f.BindString("https://example.com/img.png")
		assert.Empty(t, errs)

		for _, bad := range []string{"example.com/img.png", "https://", "not a url"} {
			_, errs := f.BindString(bad)
			require.Len(t, errs, 1, bad)
			assert.Equal(t, schema.TypeMismatch, errs[0].Kind)
		}
	})
}
