package api

// Backend endpoint paths, relative to the configured base URL.
const (
	pathLogin          = "/auth/login"
	pathCategories     = "/categories"
	pathProducts       = "/products"
	pathOrders         = "/orders"
	pathVariantOptions = "/variant-options"
)
