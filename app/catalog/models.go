package catalog

import "github.com/TylerBromley/bindkit/core/schema"

// Model name variants accepted by the model catalog endpoints.
const (
	ModelAlexNet = "alexnet"
	ModelResNet  = "resnet"
	ModelLeNet   = "lenet"
)

// ModelName is the set of recognized classifier names.
var ModelName = schema.Enum(ModelAlexNet, ModelResNet, ModelLeNet)

// Image is a named link to an externally hosted picture.
var Image = schema.NewModel("Image",
	schema.Field("url", schema.SourceBody, schema.URL(), schema.Required()),
	schema.Field("name", schema.SourceBody, schema.String(), schema.Required()),
)

// Item is the catalog's central model. Tags deduplicate after coercion and
// absent taxes fall back to the default without counting as client-supplied.
var Item = schema.NewModel("Item",
	schema.Field("name", schema.SourceBody, schema.String(), schema.Required()),
	schema.Field("description", schema.SourceBody, schema.String(),
		schema.MaxLength(300),
		schema.Title("Description"),
		schema.Description("Optional long-form description of the item")),
	schema.Field("price", schema.SourceBody, schema.Float(), schema.Required(), schema.GreaterThan(0)),
	schema.Field("tax", schema.SourceBody, schema.Float(), schema.Default(10.5)),
	schema.Field("tags", schema.SourceBody, schema.Set(schema.String()), schema.Default([]any{})),
	schema.Field("images", schema.SourceBody, schema.List(schema.Model(Image))),
)

// ItemSummary is the shape of the paginated item listing.
var ItemSummary = schema.NewModel("ItemSummary",
	schema.Field("item_name", schema.SourceBody, schema.String(), schema.Required()),
)

// Offer bundles several items under one price.
var Offer = schema.NewModel("Offer",
	schema.Field("name", schema.SourceBody, schema.String(), schema.Required()),
	schema.Field("description", schema.SourceBody, schema.String()),
	schema.Field("price", schema.SourceBody, schema.Float(), schema.Required(), schema.GreaterThan(0)),
	schema.Field("items", schema.SourceBody, schema.List(schema.Model(Item)), schema.Required()),
)

// UserIn is the registration payload. The password never appears in
// responses; handlers shape output down to the public fields.
var UserIn = schema.NewModel("UserIn",
	schema.Field("username", schema.SourceBody, schema.String(), schema.Required(), schema.MinLength(3)),
	schema.Field("password", schema.SourceBody, schema.String(), schema.Required(), schema.MinLength(8)),
	schema.Field("email", schema.SourceBody, schema.Email(), schema.Required()),
	schema.Field("full_name", schema.SourceBody, schema.String()),
)

// UserPublic lists the UserIn fields safe to echo back.
var UserPublic = []string{"username", "email", "full_name"}

// Listing variants. The car variant carries no size; the plane variant
// requires one. An absent kind resolves to the first variant whose required
// fields validate.
var (
	CarListing = schema.NewModel("CarListing",
		schema.Field("kind", schema.SourceBody, schema.String()),
		schema.Field("description", schema.SourceBody, schema.String(), schema.Required()),
	)

	PlaneListing = schema.NewModel("PlaneListing",
		schema.Field("kind", schema.SourceBody, schema.String()),
		schema.Field("description", schema.SourceBody, schema.String(), schema.Required()),
		schema.Field("size", schema.SourceBody, schema.Int(), schema.Required(), schema.GreaterThan(0)),
	)

	Listing = schema.NewUnion("Listing", "kind",
		schema.Variant("car", CarListing),
		schema.Variant("plane", PlaneListing),
	)
)
