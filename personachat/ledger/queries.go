package ledger

const transactionColumns = `id, user_id, admin_id, coins, type, created_at`

const (
	// rows-affected check replaces read-modify-write: the WHERE clause
	// both excludes unlimited (NULL) balances and prevents underflow
	queryApplyDelta = `
		UPDATE users
		SET coins = coins + $2, updated_at = NOW()
		WHERE id = $1 AND coins IS NOT NULL AND coins + $2 >= 0
		RETURNING id, email, password_hash, name, is_admin, is_active, coins, subscription_plan_id, subscription_expires_at, api_keys, permissions, created_at, updated_at
	`

	queryDeductOne = `
		UPDATE users
		SET coins = coins - 1, updated_at = NOW()
		WHERE id = $1 AND coins IS NOT NULL AND coins > 0
		RETURNING id, email, password_hash, name, is_admin, is_active, coins, subscription_plan_id, subscription_expires_at, api_keys, permissions, created_at, updated_at
	`

	queryGetBalance = `
		SELECT coins
		FROM users
		WHERE id = $1
	`

	queryFindByID = `
		SELECT id, email, password_hash, name, is_admin, is_active, coins, subscription_plan_id, subscription_expires_at, api_keys, permissions, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	queryInsertTransaction = `
		INSERT INTO transactions (user_id, admin_id, coins, type)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + transactionColumns

	queryListForUser = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
)
