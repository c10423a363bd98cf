package catalog

import (
	"net/http"

	"github.com/TylerBromley/bindkit/core/binder"
	"github.com/TylerBromley/bindkit/core/handler"
	"github.com/TylerBromley/bindkit/core/response"
	"github.com/TylerBromley/bindkit/core/schema"
)

// bind runs the binder against the request using the context's captures.
func bind(ctx *Context, specs []schema.FieldSpec) (*schema.Instance, error) {
	return binder.Bind(ctx.Request(), ctx.Params(), specs)
}

func root(ctx *Context) handler.Response {
	return response.JSON(map[string]string{"message": "Welcome Home!"})
}

var listItemsParams = schema.Params(
	schema.Field("skip", schema.SourceQuery, schema.Int(), schema.Default(int64(0))),
	schema.Field("limit", schema.SourceQuery, schema.Int(), schema.Default(int64(10))),
	schema.Field("q", schema.SourceQuery, schema.String(),
		schema.MinLength(3), schema.MaxLength(50),
		schema.Title("Query string"),
		schema.Description("Query string for the items to search")),
	schema.Field("ads_id", schema.SourceCookie, schema.String()),
	schema.Field("user_agent", schema.SourceHeader, schema.String(), schema.Alias("User-Agent")),
)

func listItems(ctx *Context) handler.Response {
	in, err := bind(ctx, listItemsParams)
	if err != nil {
		return response.Error(err)
	}
	out := map[string]any{
		"items": ctx.Store().Items(int(in.Int("skip")), int(in.Int("limit"))),
	}
	for _, opt := range []string{"q", "ads_id", "user_agent"} {
		if in.Seen(opt) {
			out[opt] = in.Value(opt)
		}
	}
	return response.JSON(out)
}

var readItemParams = schema.Params(
	schema.Field("item_id", schema.SourcePath, schema.String(), schema.Required()),
)

func readItem(ctx *Context) handler.Response {
	in, err := bind(ctx, readItemParams)
	if err != nil {
		return response.Error(err)
	}
	item, ok := ctx.Store().Item(in.String("item_id"))
	if !ok {
		return response.Error(response.ErrNotFound.WithMessage("Item not found"))
	}
	// Stored defaults stay hidden: only explicitly supplied fields return.
	return response.Shaped(item, response.ExcludeUnset())
}

func readItemName(ctx *Context) handler.Response {
	in, err := bind(ctx, readItemParams)
	if err != nil {
		return response.Error(err)
	}
	item, ok := ctx.Store().Item(in.String("item_id"))
	if !ok {
		return response.Error(response.ErrNotFound.WithMessage("Item not found"))
	}
	return response.Shaped(item, response.IncludeOnly("name", "description"))
}

func readItemPublic(ctx *Context) handler.Response {
	in, err := bind(ctx, readItemParams)
	if err != nil {
		return response.Error(err)
	}
	item, ok := ctx.Store().Item(in.String("item_id"))
	if !ok {
		return response.Error(response.ErrNotFound.WithMessage("Item not found"))
	}
	return response.Shaped(item, response.ExcludeOnly("tax"))
}

var createItemParams = schema.Params(
	schema.Field("item", schema.SourceBody, schema.Model(Item), schema.Required()),
)

func createItem(ctx *Context) handler.Response {
	in, err := bind(ctx, createItemParams)
	if err != nil {
		return response.Error(err)
	}
	item := in.Model("item")

	out := schema.NewInstance()
	for _, name := range item.Names() {
		out.Put(name, item.Value(name), item.Presence(name))
	}
	if item.Seen("tax") {
		out.Put("price_with_tax", item.Float("price")+item.Float("tax"), schema.PresenceSeen)
	}
	return response.ShapedWithStatus(out, response.AllFields(), http.StatusCreated)
}

var updateItemParams = schema.Params(
	schema.Field("item_id", schema.SourcePath, schema.Int(), schema.Required()),
	schema.Field("q", schema.SourceQuery, schema.String(), schema.MinLength(3)),
	schema.Field("item", schema.SourceBody, schema.Model(Item), schema.Required()),
)

func updateItem(ctx *Context) handler.Response {
	in, err := bind(ctx, updateItemParams)
	if err != nil {
		return response.Error(err)
	}

	out := schema.NewInstance()
	out.Put("item_id", in.Int("item_id"), schema.PresenceSeen)
	item := in.Model("item")
	for _, name := range item.Names() {
		out.Put(name, item.Value(name), item.Presence(name))
	}
	if in.Seen("q") {
		out.Put("q", in.String("q"), schema.PresenceSeen)
	}
	return response.Shaped(out, response.AllFields())
}

func readCurrentUser(ctx *Context) handler.Response {
	return response.JSON(map[string]string{"user_id": "the current user"})
}

var readUserItemParams = schema.Params(
	schema.Field("user_id", schema.SourcePath, schema.Int(), schema.Required()),
	schema.Field("item_id", schema.SourcePath, schema.String(), schema.Required()),
	schema.Field("needy", schema.SourceQuery, schema.String(), schema.Required()),
	schema.Field("q", schema.SourceQuery, schema.String()),
	schema.Field("short", schema.SourceQuery, schema.Bool(), schema.Default(false)),
)

func readUserItem(ctx *Context) handler.Response {
	in, err := bind(ctx, readUserItemParams)
	if err != nil {
		return response.Error(err)
	}

	out := schema.NewInstance()
	out.Put("item_id", in.String("item_id"), schema.PresenceSeen)
	out.Put("owner_id", in.Int("user_id"), schema.PresenceSeen)
	out.Put("needy", in.String("needy"), schema.PresenceSeen)
	if in.Seen("q") {
		out.Put("q", in.String("q"), schema.PresenceSeen)
	}
	if !in.Bool("short") {
		out.Put("description", "This is an amazing item that has a long description", schema.PresenceSeen)
	}
	return response.Shaped(out, response.AllFields())
}

var createUserParams = schema.Params(
	schema.Field("user", schema.SourceBody, schema.Model(UserIn), schema.Required()),
)

func createUser(ctx *Context) handler.Response {
	in, err := bind(ctx, createUserParams)
	if err != nil {
		return response.Error(err)
	}
	// The password is validated but never leaves the server.
	return response.ShapedWithStatus(in.Model("user"), response.IncludeOnly(UserPublic...), http.StatusCreated)
}

var readModelParams = schema.Params(
	schema.Field("model_name", schema.SourcePath, ModelName, schema.Required()),
)

func readModel(ctx *Context) handler.Response {
	in, err := bind(ctx, readModelParams)
	if err != nil {
		return response.Error(err)
	}

	name := in.String("model_name")
	var message string
	switch name {
	case ModelAlexNet:
		message = "Deep Learning FTW!"
	case ModelLeNet:
		message = "LeCNN all the images"
	default:
		message = "Have some residuals"
	}

	out := schema.NewInstance()
	out.Put("model_name", name, schema.PresenceSeen)
	out.Put("message", message, schema.PresenceSeen)
	return response.Shaped(out, response.AllFields())
}

var readFileParams = schema.Params(
	schema.Field("file_path", schema.SourcePath, schema.String(), schema.Required()),
)

func readFile(ctx *Context) handler.Response {
	in, err := bind(ctx, readFileParams)
	if err != nil {
		return response.Error(err)
	}
	return response.JSON(map[string]string{"file_path": in.String("file_path")})
}

var readClientInfoParams = schema.Params(
	schema.Field("user_agent", schema.SourceHeader, schema.String(), schema.Alias("User-Agent")),
	schema.Field("ads_id", schema.SourceCookie, schema.String()),
)

func readClientInfo(ctx *Context) handler.Response {
	in, err := bind(ctx, readClientInfoParams)
	if err != nil {
		return response.Error(err)
	}

	out := schema.NewInstance()
	out.Put("user_agent", in.Value("user_agent"), in.Presence("user_agent"))
	out.Put("ads_id", in.Value("ads_id"), in.Presence("ads_id"))
	return response.Shaped(out, response.AllFields())
}

var readListingParams = schema.Params(
	schema.Field("listing_id", schema.SourcePath, schema.String(), schema.Required()),
)

func readListing(ctx *Context) handler.Response {
	in, err := bind(ctx, readListingParams)
	if err != nil {
		return response.Error(err)
	}
	listing, ok := ctx.Store().Listing(in.String("listing_id"))
	if !ok {
		return response.Error(response.ErrNotFound.WithMessage("Listing not found"))
	}
	return response.Shaped(listing, response.AllFields())
}

var createListingParams = schema.Params(
	schema.Field("listing", schema.SourceBody, schema.Union(Listing), schema.Required()),
)

func createListing(ctx *Context) handler.Response {
	in, err := bind(ctx, createListingParams)
	if err != nil {
		return response.Error(err)
	}
	return response.ShapedWithStatus(in.Model("listing"), response.AllFields(), http.StatusCreated)
}

var createImagesParams = schema.Params(
	schema.Field("images", schema.SourceBody, schema.List(schema.Model(Image)), schema.Required()),
)

func createImages(ctx *Context) handler.Response {
	in, err := bind(ctx, createImagesParams)
	if err != nil {
		return response.Error(err)
	}
	images := in.Value("images")
	return response.JSONWithStatus(images, http.StatusCreated)
}

var createOfferParams = schema.Params(
	schema.Field("offer", schema.SourceBody, schema.Model(Offer), schema.Required()),
)

func createOffer(ctx *Context) handler.Response {
	in, err := bind(ctx, createOfferParams)
	if err != nil {
		return response.Error(err)
	}
	return response.ShapedWithStatus(in.Model("offer"), response.AllFields(), http.StatusCreated)
}

var loginParams = schema.Params(
	schema.Field("username", schema.SourceForm, schema.String(), schema.Required(), schema.MinLength(3)),
	schema.Field("password", schema.SourceForm, schema.String(), schema.Required(), schema.MinLength(8)),
)

func login(ctx *Context) handler.Response {
	in, err := bind(ctx, loginParams)
	if err != nil {
		return response.Error(err)
	}
	return response.JSON(map[string]string{"username": in.String("username")})
}
