package redisx

import "time"

const (
	// Cart per session: cart:{session_id} -> JSON array of cart lines
	KeyCart = "cart:%s"

	// Wishlist per session: wishlist:{session_id} -> JSON array of product ids
	KeyWishlist = "wishlist:%s"

	// Checkout attempt state: hash checkout:{reference}
	KeyCheckout = "checkout:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"

	// Sorted set of product ids scored by units sold
	KeyPopularProducts = "popular:products"
)

var (
	TTLCart     = 30 * 24 * time.Hour
	TTLWishlist = 30 * 24 * time.Hour
	TTLCheckout = 24 * time.Hour
	TTLDedup    = 48 * time.Hour
)
