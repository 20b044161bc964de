package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// User queries.
const (
	queryCreateUser = `
		INSERT INTO users (id, email, password_hash, is_active, is_staff, created_at)
		VALUES (@id, @email, @password_hash, @is_active, @is_staff, now())
		RETURNING created_at`

	queryGetUserByID = `
		SELECT id, email, password_hash, is_active, is_staff, created_at
		FROM users
		WHERE id = $1`

	queryGetUserByEmail = `
		SELECT id, email, password_hash, is_active, is_staff, created_at
		FROM users
		WHERE email = $1`

	queryUpdateUser = `
		UPDATE users SET
			email = $2,
			password_hash = $3
		WHERE id = $1`
)

// Profile queries.
const (
	queryCreateProfile = `
		INSERT INTO profiles (user_id, first_name, last_name, state_of_residence)
		VALUES ($1, $2, $3, $4)`

	queryGetProfile = `
		SELECT p.user_id, u.email, p.first_name, p.last_name, p.state_of_residence
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`

	queryUpdateProfile = `
		UPDATE profiles SET
			first_name = $2,
			last_name = $3,
			state_of_residence = $4
		WHERE user_id = $1`
)

// Auth token queries.
const (
	// Insert a fresh key unless the user already holds one; either way the
	// user's single current key comes back.
	queryInsertTokenIfAbsent = `
		INSERT INTO auth_tokens (key, user_id, created_at)
		VALUES ($2, $1, now())
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING key`

	queryGetUserByToken = `
		SELECT u.id, u.email, u.password_hash, u.is_active, u.is_staff, u.created_at
		FROM auth_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.key = $1`
)

// Item queries.
const (
	queryCreateItem = `
		INSERT INTO items (id, user_id, name, price, description, url, is_sold, created_at, updated_at)
		VALUES (@id, @user_id, @name, @price, @description, @url, false, now(), now())
		RETURNING is_sold, created_at, updated_at`

	queryGetItem = `
		SELECT id, user_id, name, price, description, url, is_sold, created_at, updated_at
		FROM items
		WHERE id = $1`

	queryListItemsByOwner = `
		SELECT id, user_id, name, price, description, url, is_sold, created_at, updated_at
		FROM items
		WHERE user_id = $1
		ORDER BY created_at ASC`

	queryListUnsoldItems = `
		SELECT id, user_id, name, price, description, url, is_sold, created_at, updated_at
		FROM items
		WHERE is_sold = false
		ORDER BY created_at DESC`

	queryUpdateItem = `
		UPDATE items SET
			name = $2,
			price = $3,
			description = $4,
			url = $5,
			is_sold = $6,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	queryDeleteItem = `
		DELETE FROM items
		WHERE id = $1`

	queryMarkItemSold = `
		UPDATE items SET
			is_sold = true,
			updated_at = now()
		WHERE id = $1
		RETURNING id, user_id, name, price, description, url, is_sold, created_at, updated_at`
)

// Buyer queries.
const (
	queryCreateBuyer = `
		INSERT INTO buyers (id, name, email, location, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING created_at`

	queryLinkBuyerToItem = `
		INSERT INTO item_buyers (item_id, buyer_id)
		VALUES ($1, $2)`

	queryGetBuyer = `
		SELECT id, name, email, location, created_at
		FROM buyers
		WHERE id = $1`

	queryListBuyersForItem = `
		SELECT b.id, b.name, b.email, b.location, b.created_at
		FROM buyers b
		JOIN item_buyers ib ON ib.buyer_id = b.id
		WHERE ib.item_id = $1
		ORDER BY b.created_at ASC`
)
