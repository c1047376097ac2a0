package entity

// Product is a single listing owned by exactly one Farmer.
// A farmer owns zero or more products; deleting the farmer removes them all
// through the schema-level cascade.
type Product struct {
	ID          uint    // Surrogate identifier assigned by the database.
	Username    string  // Foreign key referencing Farmer.Username; must exist at insert time.
	ProductName string  // Free-text product description.
	Price       float64 // Non-negative unit price.
	Number      int     // Non-negative quantity on offer.
	Delivery    string  // Free-text fulfillment mode, e.g. "pickup".
}
