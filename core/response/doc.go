// Package response provides composable HTTP response constructors and the
// shaping policies applied to bound instances before rendering.
//
// Handlers return a handler.Response closure instead of writing to the
// ResponseWriter directly:
//
//	func getItem(ctx *router.Context) handler.Response {
//		item, ok := store.Item(ctx.Param("item_id"))
//		if !ok {
//			return response.Error(response.ErrNotFound)
//		}
//		return response.Shaped(item, response.ExcludeUnset())
//	}
//
// Shaping policies mirror the usual response-model controls: IncludeOnly and
// ExcludeOnly filter by name, ExcludeUnset drops everything the client did
// not explicitly send, so defaulted fields never leak into stored-and-echoed
// payloads. ValidationError turns an aggregated schema.Errors into a 422
// body listing every failure in declaration order.
package response
