// Package router provides a typed HTTP router with named path captures.
//
// Routes register against patterns whose segments either match literally,
// capture a single segment with {name}, or capture the rest of the path with
// a trailing {name...}:
//
//	r := router.New[*router.Context]()
//	r.Get("/items/{item_id}", getItem)
//	r.Get("/files/{file_path...}", readFile)
//
// Patterns match in registration order, so fixed paths like /users/me must
// be registered before overlapping captures like /users/{user_id}. Captured
// values are available on the request context via Param and feed the binder
// untouched, slashes included for rest captures.
//
// Handlers are generic over the context type. The default *Context needs no
// setup; custom context types supply a WithContextFactory option. Handler
// panics are recovered, logged with their stack, and routed to the error
// handler when no response has been written yet.
package router
