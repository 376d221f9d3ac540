package schema

// Table and index declarations for every entity. References between tables
// are plain identifier columns looked up by the application, never foreign
// key constraints: relation plus lookup, not ownership.

func registerModels(r *Registry) {
	r.GetOrCreate("user", func() *Model {
		return &Model{
			Name:  "user",
			Table: "users",
			CreateSQL: `CREATE TABLE IF NOT EXISTS users (
				id SERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				password_hash TEXT NOT NULL,
				role TEXT NOT NULL DEFAULT 'user',
				created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
			DropSQL: `DROP TABLE IF EXISTS users`,
			Indexes: []Index{
				{
					Name:      "users_email_unique",
					Field:     "email",
					Unique:    true,
					CreateSQL: `CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique ON users (email)`,
					DropSQL:   `DROP INDEX IF EXISTS users_email_unique`,
				},
			},
		}
	})

	r.GetOrCreate("product", func() *Model {
		return &Model{
			Name:  "product",
			Table: "products",
			CreateSQL: `CREATE TABLE IF NOT EXISTS products (
				id SERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				sku TEXT NOT NULL,
				category TEXT NOT NULL DEFAULT '',
				stock_type TEXT NOT NULL,
				price NUMERIC(12,2) NOT NULL DEFAULT 0,
				rental_rate_per_day NUMERIC(12,2) NOT NULL DEFAULT 0,
				rental_rate_per_week NUMERIC(12,2) NOT NULL DEFAULT 0,
				rental_rate_per_month NUMERIC(12,2) NOT NULL DEFAULT 0,
				created_by INTEGER NOT NULL DEFAULT 0,
				created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_on TIMESTAMPTZ NOT NULL DEFAULT now(),
				deleted_on TIMESTAMPTZ
			)`,
			DropSQL: `DROP TABLE IF EXISTS products`,
			Indexes: []Index{
				{
					Name:      "products_sku_unique",
					Field:     "sku",
					Unique:    true,
					CreateSQL: `CREATE UNIQUE INDEX IF NOT EXISTS products_sku_unique ON products (sku)`,
					DropSQL:   `DROP INDEX IF EXISTS products_sku_unique`,
				},
				{
					Name:      "products_category_idx",
					Field:     "category",
					CreateSQL: `CREATE INDEX IF NOT EXISTS products_category_idx ON products (category)`,
					DropSQL:   `DROP INDEX IF EXISTS products_category_idx`,
				},
			},
		}
	})

	r.GetOrCreate("buyStock", func() *Model {
		return &Model{
			Name:  "buyStock",
			Table: "buystocks",
			CreateSQL: `CREATE TABLE IF NOT EXISTS buystocks (
				id SERIAL PRIMARY KEY,
				product_id INTEGER NOT NULL,
				quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
				min_quantity INTEGER NOT NULL DEFAULT 0 CHECK (min_quantity >= 0),
				created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
			DropSQL: `DROP TABLE IF EXISTS buystocks`,
			Indexes: []Index{
				{
					Name:      "buystocks_product_unique",
					Field:     "product_id",
					Unique:    true,
					CreateSQL: `CREATE UNIQUE INDEX IF NOT EXISTS buystocks_product_unique ON buystocks (product_id)`,
					DropSQL:   `DROP INDEX IF EXISTS buystocks_product_unique`,
				},
			},
		}
	})

	r.GetOrCreate("rentalAsset", func() *Model {
		return &Model{
			Name:  "rentalAsset",
			Table: "rentalassets",
			CreateSQL: `CREATE TABLE IF NOT EXISTS rentalassets (
				id SERIAL PRIMARY KEY,
				product_id INTEGER NOT NULL,
				asset_code TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'available',
				current_rental_id INTEGER,
				notes TEXT NOT NULL DEFAULT '',
				created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
			DropSQL: `DROP TABLE IF EXISTS rentalassets`,
			Indexes: []Index{
				{
					// Compound on purpose: the same code may be reused
					// across different products. This superseded an earlier
					// globally-unique asset_code index.
					Name:      "rentalassets_code_product_unique",
					Field:     "asset_code",
					Unique:    true,
					CreateSQL: `CREATE UNIQUE INDEX IF NOT EXISTS rentalassets_code_product_unique ON rentalassets (asset_code, product_id)`,
					DropSQL:   `DROP INDEX IF EXISTS rentalassets_code_product_unique`,
				},
				{
					Name:      "rentalassets_status_idx",
					Field:     "status",
					CreateSQL: `CREATE INDEX IF NOT EXISTS rentalassets_status_idx ON rentalassets (status)`,
					DropSQL:   `DROP INDEX IF EXISTS rentalassets_status_idx`,
				},
			},
		}
	})

	r.GetOrCreate("rental", func() *Model {
		return &Model{
			Name:  "rental",
			Table: "rentals",
			CreateSQL: `CREATE TABLE IF NOT EXISTS rentals (
				id SERIAL PRIMARY KEY,
				rental_number TEXT NOT NULL,
				product_id INTEGER NOT NULL,
				asset_id INTEGER,
				customer_name TEXT NOT NULL,
				customer_email TEXT NOT NULL,
				customer_phone TEXT NOT NULL DEFAULT '',
				start_date DATE NOT NULL,
				end_date DATE NOT NULL,
				rate_per_day NUMERIC(12,2) NOT NULL DEFAULT 0,
				total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
				deposit NUMERIC(12,2) NOT NULL DEFAULT 0,
				status TEXT NOT NULL DEFAULT 'pending',
				notes TEXT NOT NULL DEFAULT '',
				created_by INTEGER NOT NULL DEFAULT 0,
				created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
			DropSQL: `DROP TABLE IF EXISTS rentals`,
			Indexes: []Index{
				{
					Name:      "rentals_number_unique",
					Field:     "rental_number",
					Unique:    true,
					CreateSQL: `CREATE UNIQUE INDEX IF NOT EXISTS rentals_number_unique ON rentals (rental_number)`,
					DropSQL:   `DROP INDEX IF EXISTS rentals_number_unique`,
				},
				{
					Name:      "rentals_customer_email_idx",
					Field:     "customer_email",
					CreateSQL: `CREATE INDEX IF NOT EXISTS rentals_customer_email_idx ON rentals (customer_email)`,
					DropSQL:   `DROP INDEX IF EXISTS rentals_customer_email_idx`,
				},
			},
		}
	})

	r.GetOrCreate("sale", func() *Model {
		return &Model{
			Name:  "sale",
			Table: "sales",
			CreateSQL: `CREATE TABLE IF NOT EXISTS sales (
				id SERIAL PRIMARY KEY,
				bill_number TEXT NOT NULL,
				customer_name TEXT NOT NULL,
				customer_email TEXT NOT NULL DEFAULT '',
				subtotal NUMERIC(12,2) NOT NULL DEFAULT 0,
				discount NUMERIC(12,2) NOT NULL DEFAULT 0,
				tax NUMERIC(12,2) NOT NULL DEFAULT 0,
				total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
				payment_status TEXT NOT NULL DEFAULT 'pending',
				created_by INTEGER NOT NULL DEFAULT 0,
				created_on TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
			DropSQL: `DROP TABLE IF EXISTS sales`,
			Indexes: []Index{
				{
					Name:      "sales_bill_number_unique",
					Field:     "bill_number",
					Unique:    true,
					CreateSQL: `CREATE UNIQUE INDEX IF NOT EXISTS sales_bill_number_unique ON sales (bill_number)`,
					DropSQL:   `DROP INDEX IF EXISTS sales_bill_number_unique`,
				},
			},
		}
	})

	r.GetOrCreate("saleItem", func() *Model {
		return &Model{
			Name:  "saleItem",
			Table: "saleitems",
			CreateSQL: `CREATE TABLE IF NOT EXISTS saleitems (
				id SERIAL PRIMARY KEY,
				sale_id INTEGER NOT NULL,
				product_id INTEGER NOT NULL,
				quantity INTEGER NOT NULL CHECK (quantity > 0),
				unit_price NUMERIC(12,2) NOT NULL DEFAULT 0,
				total_price NUMERIC(12,2) NOT NULL DEFAULT 0
			)`,
			DropSQL: `DROP TABLE IF EXISTS saleitems`,
			Indexes: []Index{
				{
					Name:      "saleitems_sale_idx",
					Field:     "sale_id",
					CreateSQL: `CREATE INDEX IF NOT EXISTS saleitems_sale_idx ON saleitems (sale_id)`,
					DropSQL:   `DROP INDEX IF EXISTS saleitems_sale_idx`,
				},
			},
		}
	})

	r.GetOrCreate("activityLog", func() *Model {
		return &Model{
			Name:  "activityLog",
			Table: "activitylogs",
			CreateSQL: `CREATE TABLE IF NOT EXISTS activitylogs (
				id SERIAL PRIMARY KEY,
				user_id INTEGER NOT NULL,
				entity_type TEXT NOT NULL,
				entity_id INTEGER NOT NULL,
				action TEXT NOT NULL,
				detail TEXT NOT NULL DEFAULT '',
				created_on TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
			DropSQL: `DROP TABLE IF EXISTS activitylogs`,
			Indexes: []Index{
				{
					Name:      "activitylogs_entity_idx",
					Field:     "entity_type",
					CreateSQL: `CREATE INDEX IF NOT EXISTS activitylogs_entity_idx ON activitylogs (entity_type, entity_id)`,
					DropSQL:   `DROP INDEX IF EXISTS activitylogs_entity_idx`,
				},
			},
		}
	})

	r.GetOrCreate("passwordResetToken", func() *Model {
		return &Model{
			Name:  "passwordResetToken",
			Table: "passwordresettokens",
			CreateSQL: `CREATE TABLE IF NOT EXISTS passwordresettokens (
				id SERIAL PRIMARY KEY,
				user_id INTEGER NOT NULL,
				token TEXT NOT NULL,
				expires_on TIMESTAMPTZ NOT NULL,
				used_on TIMESTAMPTZ,
				created_on TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
			DropSQL: `DROP TABLE IF EXISTS passwordresettokens`,
			Indexes: []Index{
				{
					Name:      "passwordresettokens_token_unique",
					Field:     "token",
					Unique:    true,
					CreateSQL: `CREATE UNIQUE INDEX IF NOT EXISTS passwordresettokens_token_unique ON passwordresettokens (token)`,
					DropSQL:   `DROP INDEX IF EXISTS passwordresettokens_token_unique`,
				},
			},
		}
	})
}
