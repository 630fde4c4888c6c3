package store

const (
	createUser = `INSERT INTO users (login, password_hash, account_salt)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, account_salt;`

	findUserByLogin = `SELECT user_id, login, password_hash, account_salt
    FROM users
    WHERE login = $1;`

	getRelayItem = `
		SELECT
			id,
			data_type,
			data,
			data_time,
			is_deleted,
			pwd_hash,
			device_id
		FROM sync_items
		WHERE user_id = $1 AND id = $2;`

	upsertRelayItem = `
		INSERT INTO sync_items (
			user_id,
			id,
			data_type,
			data,
			data_time,
			is_deleted,
			pwd_hash,
			device_id,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (user_id, id) DO UPDATE SET
			data_type  = excluded.data_type,
			data       = excluded.data,
			data_time  = excluded.data_time,
			is_deleted = excluded.is_deleted,
			pwd_hash   = excluded.pwd_hash,
			device_id  = excluded.device_id,
			updated_at = NOW();`
)
