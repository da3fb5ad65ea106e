package users

const userColumns = `id, email, password_hash, name, is_admin, is_active, coins, subscription_plan_id, subscription_expires_at, api_keys, permissions, created_at, updated_at`

const (
	queryCreate = `
		INSERT INTO users (email, password_hash, name, is_admin, coins)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	queryFindByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	queryFindByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	queryList = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
	`

	querySetActive = `
		UPDATE users
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + userColumns

	querySetPermissions = `
		UPDATE users
		SET permissions = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + userColumns

	querySetAPIKey = `
		UPDATE users
		SET api_keys = jsonb_set(api_keys, ARRAY[$1], to_jsonb($2::text)), updated_at = NOW()
		WHERE id = $3
		RETURNING ` + userColumns

	queryDeleteAPIKey = `
		UPDATE users
		SET api_keys = api_keys - $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + userColumns
)
