package store

const (
	upsertSyncItem = `
		INSERT INTO sync_items (
			id,
			data_type,
			raw_key,
			data,
			raw_data,
			data_time,
			is_deleted,
			pwd_hash,
			device_id,
			local_scene_updated,
			server_uploaded
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			data_type           = excluded.data_type,
			raw_key             = excluded.raw_key,
			data                = excluded.data,
			raw_data            = excluded.raw_data,
			data_time           = excluded.data_time,
			is_deleted          = excluded.is_deleted,
			pwd_hash            = excluded.pwd_hash,
			device_id           = excluded.device_id,
			local_scene_updated = excluded.local_scene_updated,
			server_uploaded     = excluded.server_uploaded;`

	getSyncItemByID = `
		SELECT
			id,
			data_type,
			raw_key,
			data,
			raw_data,
			data_time,
			is_deleted,
			pwd_hash,
			device_id,
			local_scene_updated,
			server_uploaded
		FROM sync_items
		WHERE id = ?;`

	listAllSyncItems = `
		SELECT
			id,
			data_type,
			raw_key,
			data,
			raw_data,
			data_time,
			is_deleted,
			pwd_hash,
			device_id,
			local_scene_updated,
			server_uploaded
		FROM sync_items
		ORDER BY data_type, id;`

	listPendingUploadSyncItems = `
		SELECT
			id,
			data_type,
			raw_key,
			data,
			raw_data,
			data_time,
			is_deleted,
			pwd_hash,
			device_id,
			local_scene_updated,
			server_uploaded
		FROM sync_items
		WHERE server_uploaded = 0
		ORDER BY data_type, id;`

	listUnappliedSyncItems = `
		SELECT
			id,
			data_type,
			raw_key,
			data,
			raw_data,
			data_time,
			is_deleted,
			pwd_hash,
			device_id,
			local_scene_updated,
			server_uploaded
		FROM sync_items
		WHERE local_scene_updated = 0
		ORDER BY data_type, id;`

	markSyncItemSceneApplied = `
		UPDATE sync_items SET
			local_scene_updated = 1,
			pwd_hash            = ?,
			raw_data            = ?,
			raw_key             = ?
		WHERE id = ?;`

	markSyncItemUploaded = `
		UPDATE sync_items SET
			server_uploaded = 1
		WHERE id = ?;`

	deleteSyncItem = `
		DELETE FROM sync_items
		WHERE id = ?;`
)
