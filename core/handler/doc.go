// Package handler defines the request handling contracts shared by the router,
// the response helpers, and the middleware packages.
//
// A handler receives a typed context and returns a Response, which is a
// function that renders the result to the underlying http.ResponseWriter:
//
//	func showItem(ctx *app.Context) handler.Response {
//		item, ok := ctx.Store().Item(ctx.Param("item_id"))
//		if !ok {
//			return response.NotFound()
//		}
//		return response.JSON(item)
//	}
//
// Returning the render step as a value keeps handlers pure until the router
// decides to execute them, which is what makes middleware able to wrap both
// the handler call and the rendering.
package handler
