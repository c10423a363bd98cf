// Package binder extracts declared fields from HTTP requests and validates
// them against their schema specs in a single pass.
//
// A handler declares its inputs once as a []schema.FieldSpec covering every
// source it reads from (path, query, header, cookie, form, body) and calls
// Bind per request:
//
//	var itemParams = schema.Params(
//		schema.Field("item_id", schema.SourcePath, schema.Int(), schema.Required()),
//		schema.Field("q", schema.SourceQuery, schema.String()),
//		schema.Field("item", schema.SourceBody, schema.Model(itemModel), schema.Required()),
//	)
//
//	func updateItem(ctx *router.Context) handler.Response {
//		inst, err := binder.Bind(ctx.Request(), ctx.Params(), itemParams)
//		if err != nil {
//			return response.ValidationFailed(err)
//		}
//		// inst carries every bound value in declaration order
//	}
//
// Bind validates every field before returning: a request with three bad
// fields produces three errors, not one. Raw string sources coerce to the
// declared type (integers, floats, booleans, enums, URLs, email addresses);
// the JSON body is decoded once and conformed against the declared models,
// which distinguishes absent keys, explicit nulls, and defaulted values for
// downstream response shaping.
package binder
