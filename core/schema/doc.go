// Package schema provides the static declaration layer for request binding
// and response shaping: field specs, models, enums, tagged unions, and the
// ordered instances produced when data is validated against them.
//
// Declarations are built once at process start and are read-only afterwards,
// so they can be shared across concurrent requests without locking:
//
//	var imageModel = schema.NewModel("Image",
//		schema.Field("url", schema.SourceBody, schema.URL(), schema.Required()),
//		schema.Field("name", schema.SourceBody, schema.String(), schema.Required()),
//	)
//
//	var itemModel = schema.NewModel("Item",
//		schema.Field("name", schema.SourceBody, schema.String(), schema.Required()),
//		schema.Field("description", schema.SourceBody, schema.String(),
//			schema.MaxLength(300), schema.Title("The description of the item")),
//		schema.Field("price", schema.SourceBody, schema.Float(),
//			schema.Required(), schema.GreaterThan(0)),
//		schema.Field("tax", schema.SourceBody, schema.Float(), schema.Default(10.5)),
//		schema.Field("tags", schema.SourceBody, schema.Set(schema.String()), schema.Default([]any{})),
//		schema.Field("images", schema.SourceBody, schema.List(schema.Model(imageModel))),
//	)
//
// Validating data against a model yields an Instance: an ordered mapping
// that remembers, per field, whether the value was supplied explicitly,
// was null, or came from a default. That presence bookkeeping is what lets
// response shaping drop defaulted fields.
//
// Validation never stops at the first problem: every field is checked
// independently and all failures come back as one Errors value in
// declaration order. Constraints only run after a value coerced cleanly.
package schema
