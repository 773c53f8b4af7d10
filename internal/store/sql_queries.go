package store

// Table and column names. Columns are listed in the order the repositories
// scan them.
const (
	usersTable            = "users"
	productsTable         = "products"
	addressesTable        = "addresses"
	billingAddressesTable = "billing_addresses"
	picturesTable         = "pictures"
)

var (
	userColumns = []string{
		"id", "user_first_name", "user_last_name", "user_name", "email", "password",
	}

	productColumns = []string{
		"id", "product_name", "product_description", "product_price", "product_category", "product_age_range",
	}

	addressColumns = []string{
		"id", "user_street", "user_number", "user_city", "user_state", "user_zip_code", "is_billing_address", "person_id",
	}

	billingAddressColumns = []string{
		"id", "billing_street", "billing_number", "billing_city", "billing_state", "billing_zip_code", "person_id",
	}

	pictureColumns = []string{
		"id", "picture_url", "photos_id",
	}
)
