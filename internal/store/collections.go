package store

// Collection maps a schema type to its storage collection name and the
// fields worth indexing. The mapping is explicit rather than derived from
// type names so that adding a collection is a reviewed, one-line change.
type Collection struct {
	Name    string
	Indexed []string
}

var (
	Products    = Collection{Name: "product", Indexed: []string{"sku", "active", "category", "brand"}}
	Orders      = Collection{Name: "order"}
	PromoCodes  = Collection{Name: "promocode", Indexed: []string{"code", "active"}}
	Wishlists   = Collection{Name: "wishlist", Indexed: []string{"user_id"}}
	BlogPosts   = Collection{Name: "blogpost", Indexed: []string{"slug", "published"}}
	Events      = Collection{Name: "event"}
	Newsletters = Collection{Name: "newsletter", Indexed: []string{"email"}}
	Feedback    = Collection{Name: "recommendationfeedback", Indexed: []string{"sku"}}
)

// All returns every collection the application persists to.
func All() []Collection {
	return []Collection{
		Products,
		Orders,
		PromoCodes,
		Wishlists,
		BlogPosts,
		Events,
		Newsletters,
		Feedback,
	}
}
