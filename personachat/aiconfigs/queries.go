package aiconfigs

const configColumns = `id, owner_id, name, model_type, model_name, is_public, is_trial_allowed, requires_subscription, training_content, created_at, updated_at`

const (
	queryCreate = `
		INSERT INTO ai_configs (owner_id, name, model_type, model_name, is_public, is_trial_allowed, requires_subscription, training_content)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + configColumns

	queryGet = `
		SELECT ` + configColumns + `
		FROM ai_configs
		WHERE id = $1
	`

	// visibility candidates for an authenticated user: public plus owned
	queryListForUser = `
		SELECT ` + configColumns + `
		FROM ai_configs
		WHERE is_public = true OR owner_id = $1
		ORDER BY name ASC
	`

	queryListPublic = `
		SELECT ` + configColumns + `
		FROM ai_configs
		WHERE is_public = true
		ORDER BY name ASC
	`

	queryListAll = `
		SELECT ` + configColumns + `
		FROM ai_configs
		ORDER BY name ASC
	`

	queryListByOwner = `
		SELECT ` + configColumns + `
		FROM ai_configs
		WHERE owner_id = $1
		ORDER BY name ASC
	`

	queryUpdate = `
		UPDATE ai_configs
		SET name = $1,
		    model_type = $2,
		    model_name = $3,
		    is_public = $4,
		    is_trial_allowed = $5,
		    requires_subscription = $6,
		    training_content = $7,
		    updated_at = NOW()
		WHERE id = $8 AND owner_id = $9
		RETURNING ` + configColumns

	queryDelete = `
		DELETE FROM ai_configs
		WHERE id = $1 AND owner_id = $2
	`
)
