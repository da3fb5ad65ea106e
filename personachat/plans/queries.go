package plans

const planColumns = `id, name, display_price, coin_cost, duration_days, features, is_active, created_at, updated_at`

const (
	queryCreate = `
		INSERT INTO pricing_plans (name, display_price, coin_cost, duration_days, features, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + planColumns

	queryGet = `
		SELECT ` + planColumns + `
		FROM pricing_plans
		WHERE id = $1
	`

	queryListActive = `
		SELECT ` + planColumns + `
		FROM pricing_plans
		WHERE is_active = true
		ORDER BY coin_cost ASC
	`

	queryListAll = `
		SELECT ` + planColumns + `
		FROM pricing_plans
		ORDER BY coin_cost ASC
	`

	queryUpdate = `
		UPDATE pricing_plans
		SET name = $1,
		    display_price = $2,
		    coin_cost = $3,
		    duration_days = $4,
		    features = $5,
		    is_active = $6,
		    updated_at = NOW()
		WHERE id = $7
		RETURNING ` + planColumns

	queryDelete = `
		DELETE FROM pricing_plans
		WHERE id = $1
	`
)
