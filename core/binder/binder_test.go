package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TylerBromley/bindkit/core/binder"
	"github.com/TylerBromley/bindkit/core/schema"
)

var itemModel = schema.NewModel("Item",
	schema.Field("name", schema.SourceBody, schema.String(), schema.Required()),
	schema.Field("description", schema.SourceBody, schema.String()),
	schema.Field("price", schema.SourceBody, schema.Float(), schema.Required(), schema.GreaterThan(0)),
	schema.Field("tax", schema.SourceBody, schema.Float(), schema.Default(10.5)),
)

func TestBindStringSources(t *testing.T) {
	t.Parallel()

	t.Run("path and query", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("item_id", schema.SourcePath, schema.Int(), schema.Required()),
			schema.Field("q", schema.SourceQuery, schema.String(), schema.Default("none")),
			schema.Field("short", schema.SourceQuery, schema.Bool(), schema.Default(false)),
		)

		r := httptest.NewRequest("GET", "/items/42?q=search&short=true", nil)
		inst, err := binder.Bind(r, binder.PathParams{"item_id": "42"}, specs)
		require.NoError(t, err)

		assert.Equal(t, int64(42), inst.Int("item_id"))
		assert.Equal(t, "search", inst.String("q"))
		assert.True(t, inst.Bool("short"))
		assert.True(t, inst.Seen("q"))
	})

	t.Run("default applied when query absent", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("q", schema.SourceQuery, schema.String(), schema.Default("none")),
		)

		r := httptest.NewRequest("GET", "/items", nil)
		inst, err := binder.Bind(r, nil, specs)
		require.NoError(t, err)

		assert.Equal(t, "none", inst.String("q"))
		assert.False(t, inst.Seen("q"))
		assert.NotZero(t, inst.Presence("q")&schema.PresenceDefaultApplied)
	})

	t.Run("missing required query yields exactly one error", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("needy", schema.SourceQuery, schema.String(), schema.Required()),
		)

		r := httptest.NewRequest("GET", "/items", nil)
		_, err := binder.Bind(r, nil, specs)
		require.Error(t, err)

		var errs schema.Errors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 1)
		assert.Equal(t, schema.Missing, errs[0].Kind)
		assert.Equal(t, []string{"needy"}, errs[0].Path)
		assert.Equal(t, schema.SourceQuery, errs[0].Source)
	})

	t.Run("alias overrides the lookup key", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("q", schema.SourceQuery, schema.String(), schema.Alias("item-query")),
		)

		r := httptest.NewRequest("GET", "/items?item-query=widget", nil)
		inst, err := binder.Bind(r, nil, specs)
		require.NoError(t, err)

		// the declared name, not the alias, keys the bound value
		assert.Equal(t, "widget", inst.String("q"))
	})

	t.Run("header and cookie", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("user_agent", schema.SourceHeader, schema.String(), schema.Alias("User-Agent")),
			schema.Field("ads_id", schema.SourceCookie, schema.String()),
		)

		r := httptest.NewRequest("GET", "/items", nil)
		r.Header.Set("User-Agent", "testclient")
		inst, err := binder.Bind(r, nil, specs)
		require.NoError(t, err)

		assert.Equal(t, "testclient", inst.String("user_agent"))
		assert.Nil(t, inst.Value("ads_id"))
		assert.False(t, inst.Seen("ads_id"))

		r = httptest.NewRequest("GET", "/items", nil)
		r.Header.Set("User-Agent", "testclient")
		r.AddCookie(&http.Cookie{Name: "ads_id", Value: "track-123"})
		inst, err = binder.Bind(r, nil, specs)
		require.NoError(t, err)
		assert.Equal(t, "track-123", inst.String("ads_id"))
	})

	t.Run("repeated query values bind to a set after coercion", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("tags", schema.SourceQuery, schema.Set(schema.String())),
		)

		r := httptest.NewRequest("GET", "/items?tags=go&tags=web&tags=go", nil)
		inst, err := binder.Bind(r, nil, specs)
		require.NoError(t, err)

		assert.Equal(t, []any{"go", "web"}, inst.Value("tags"))
	})

	t.Run("all string source failures aggregate in declaration order", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("item_id", schema.SourcePath, schema.Int(), schema.Required()),
			schema.Field("limit", schema.SourceQuery, schema.Int(), schema.Default(10)),
			schema.Field("needy", schema.SourceQuery, schema.String(), schema.Required()),
		)

		r := httptest.NewRequest("GET", "/items/abc?limit=many", nil)
		_, err := binder.Bind(r, binder.PathParams{"item_id": "abc"}, specs)
		require.Error(t, err)

		var errs schema.Errors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 3)
		assert.Equal(t, schema.TypeMismatch, errs[0].Kind)
		assert.Equal(t, []string{"item_id"}, errs[0].Path)
		assert.Equal(t, schema.TypeMismatch, errs[1].Kind)
		assert.Equal(t, []string{"limit"}, errs[1].Path)
		assert.Equal(t, schema.Missing, errs[2].Kind)
		assert.Equal(t, []string{"needy"}, errs[2].Path)
	})
}

func TestBindBody(t *testing.T) {
	t.Parallel()

	t.Run("single body field binds the whole payload", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("item", schema.SourceBody, schema.Model(itemModel), schema.Required()),
		)

		r := httptest.NewRequest("POST", "/items", strings.NewReader(`{"name":"Foo","price":50.2}`))
		r.Header.Set("Content-Type", "application/json")
		inst, err := binder.Bind(r, nil, specs)
		require.NoError(t, err)

		item := inst.Model("item")
		require.NotNil(t, item)
		assert.Equal(t, "Foo", item.String("name"))
		assert.Equal(t, 50.2, item.Float("price"))
		assert.Equal(t, 10.5, item.Float("tax"))
		assert.False(t, item.Seen("tax"))
	})

	t.Run("several body fields bind by top-level key", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("item", schema.SourceBody, schema.Model(itemModel), schema.Required()),
			schema.Field("importance", schema.SourceBody, schema.Int(), schema.Required()),
		)

		r := httptest.NewRequest("PUT", "/items/1", strings.NewReader(
			`{"item":{"name":"Foo","price":42.0},"importance":5}`))
		r.Header.Set("Content-Type", "application/json")
		inst, err := binder.Bind(r, nil, specs)
		require.NoError(t, err)

		assert.Equal(t, int64(5), inst.Int("importance"))
		require.NotNil(t, inst.Model("item"))
		assert.Equal(t, "Foo", inst.Model("item").String("name"))
	})

	t.Run("explicit null is not absence", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("item", schema.SourceBody, schema.Model(itemModel), schema.Required()),
		)

		r := httptest.NewRequest("POST", "/items", strings.NewReader(
			`{"name":"Foo","price":10,"description":null}`))
		r.Header.Set("Content-Type", "application/json")
		inst, err := binder.Bind(r, nil, specs)
		require.NoError(t, err)

		item := inst.Model("item")
		assert.True(t, item.Seen("description"))
		assert.NotZero(t, item.Presence("description")&schema.PresenceWasNull)
		assert.Nil(t, item.Value("description"))
	})

	t.Run("body validation failures carry nested paths", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("item", schema.SourceBody, schema.Model(itemModel), schema.Required()),
		)

		r := httptest.NewRequest("POST", "/items", strings.NewReader(`{"price":-1}`))
		r.Header.Set("Content-Type", "application/json")
		_, err := binder.Bind(r, nil, specs)
		require.Error(t, err)

		var errs schema.Errors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 2)
		assert.Equal(t, schema.Missing, errs[0].Kind)
		assert.Equal(t, []string{"item", "name"}, errs[0].Path)
		assert.Equal(t, schema.ConstraintViolation, errs[1].Kind)
		assert.Equal(t, []string{"item", "price"}, errs[1].Path)
	})

	t.Run("absent body resolves missing rules", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("item", schema.SourceBody, schema.Model(itemModel), schema.Required()),
		)

		r := httptest.NewRequest("POST", "/items", nil)
		_, err := binder.Bind(r, nil, specs)
		require.Error(t, err)

		var errs schema.Errors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 1)
		assert.Equal(t, schema.Missing, errs[0].Kind)
	})

	t.Run("malformed JSON is a transport error", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("item", schema.SourceBody, schema.Model(itemModel), schema.Required()),
		)

		r := httptest.NewRequest("POST", "/items", strings.NewReader(`{"name":`))
		r.Header.Set("Content-Type", "application/json")
		_, err := binder.Bind(r, nil, specs)
		require.ErrorIs(t, err, binder.ErrMalformedBody)
	})

	t.Run("wrong content type is rejected", func(t *testing.T) {
		t.Parallel()

		specs := schema.Params(
			schema.Field("item", schema.SourceBody, schema.Model(itemModel), schema.Required()),
		)

		r := httptest.NewRequest("POST", "/items", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "text/plain")
		_, err := binder.Bind(r, nil, specs)
		require.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})
}

func TestBindForm(t *testing.T) {
	t.Parallel()

	loginSpecs := schema.Params(
		schema.Field("username", schema.SourceForm, schema.String(), schema.Required()),
		schema.Field("password", schema.SourceForm, schema.String(), schema.Required()),
	)

	t.Run("urlencoded fields bind", func(t *testing.T) {
		t.Parallel()

		form := url.Values{"username": {"johndoe"}, "password": {"secret"}}
		r := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		inst, err := binder.Bind(r, nil, loginSpecs)
		require.NoError(t, err)
		assert.Equal(t, "johndoe", inst.String("username"))
		assert.Equal(t, "secret", inst.String("password"))
	})

	t.Run("missing form fields report every failure", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/login", strings.NewReader(""))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		_, err := binder.Bind(r, nil, loginSpecs)
		require.Error(t, err)

		var errs schema.Errors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"username"}, errs[0].Path)
		assert.Equal(t, []string{"password"}, errs[1].Path)
	})

	t.Run("form content type is required", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/login", strings.NewReader("username=j"))
		r.Header.Set("Content-Type", "application/json")

		_, err := binder.Bind(r, nil, loginSpecs)
		require.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})
}
