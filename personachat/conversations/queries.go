package conversations

const conversationColumns = `id, user_id, ai_config_id, messages, start_time, updated_at`

const (
	queryCreate = `
		INSERT INTO conversations (user_id, ai_config_id, messages)
		VALUES ($1, $2, $3)
		RETURNING ` + conversationColumns

	queryGet = `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE id = $1
	`

	queryListByUser = `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE user_id = $1
		ORDER BY start_time DESC
	`

	queryReplaceMessages = `
		UPDATE conversations
		SET messages = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + conversationColumns

	queryDelete = `
		DELETE FROM conversations
		WHERE id = $1 AND user_id = $2
	`
)
