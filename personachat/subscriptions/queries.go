package subscriptions

const userColumns = `id, email, password_hash, name, is_admin, is_active, coins, subscription_plan_id, subscription_expires_at, api_keys, permissions, created_at, updated_at`

const (
	queryGetPlan = `
		SELECT id, name, display_price, coin_cost, duration_days, features, is_active, created_at, updated_at
		FROM pricing_plans
		WHERE id = $1
	`

	// row lock serializes concurrent purchases against the same user
	queryLockUser = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		FOR UPDATE
	`

	querySetSubscription = `
		UPDATE users
		SET subscription_plan_id = $1, subscription_expires_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + userColumns

	queryFindByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	queryClearExpired = `
		UPDATE users
		SET subscription_plan_id = NULL, subscription_expires_at = NULL, updated_at = NOW()
		WHERE id = $1
		  AND subscription_expires_at IS NOT NULL
		  AND subscription_expires_at <= NOW()
		RETURNING ` + userColumns
)
