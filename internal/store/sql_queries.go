// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	upsertItem = `
		INSERT INTO ciphers (
			user_id,
			id,
			type,
			name,
			data,
			notes,
			key,
			folder_id,
			organization_id,
			collection_ids,
			favorite,
			revision_date,
			deleted_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, id) DO UPDATE SET
			type            = excluded.type,
			name            = excluded.name,
			data            = excluded.data,
			notes           = excluded.notes,
			key             = excluded.key,
			folder_id       = excluded.folder_id,
			organization_id = excluded.organization_id,
			collection_ids  = excluded.collection_ids,
			favorite        = excluded.favorite,
			revision_date   = excluded.revision_date,
			deleted_date    = excluded.deleted_date;`

	getSingleItem = `
		SELECT
			user_id,
			id,
			type,
			name,
			data,
			notes,
			key,
			folder_id,
			organization_id,
			collection_ids,
			favorite,
			revision_date,
			deleted_date
		FROM ciphers
		WHERE user_id = ? AND id = ?;`

	getAllItems = `
		SELECT
			user_id,
			id,
			type,
			name,
			data,
			notes,
			key,
			folder_id,
			organization_id,
			collection_ids,
			favorite,
			revision_date,
			deleted_date
		FROM ciphers
		WHERE user_id = ?;`

	deleteItem = `
		DELETE FROM ciphers
		WHERE user_id = ? AND id = ?;`

	upsertFolder = `
		INSERT INTO folders (user_id, id, name, revision_date)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, id) DO UPDATE SET
			name          = excluded.name,
			revision_date = excluded.revision_date;`

	getAllFolders = `
		SELECT user_id, id, name, revision_date
		FROM folders
		WHERE user_id = ?;`

	deleteFolder = `
		DELETE FROM folders
		WHERE user_id = ? AND id = ?;`

	upsertCollection = `
		INSERT INTO collections (user_id, id, organization_id, name, read_only, revision_date)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, id) DO UPDATE SET
			organization_id = excluded.organization_id,
			name            = excluded.name,
			read_only       = excluded.read_only,
			revision_date   = excluded.revision_date;`

	getAllCollections = `
		SELECT user_id, id, organization_id, name, read_only, revision_date
		FROM collections
		WHERE user_id = ?;`

	upsertOrganization = `
		INSERT INTO organizations (user_id, id, name, enabled, revision_date)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, id) DO UPDATE SET
			name          = excluded.name,
			enabled       = excluded.enabled,
			revision_date = excluded.revision_date;`

	getAllOrganizations = `
		SELECT user_id, id, name, enabled, revision_date
		FROM organizations
		WHERE user_id = ?;`

	upsertPolicy = `
		INSERT INTO policies (user_id, id, organization_id, type, enabled, data)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, id) DO UPDATE SET
			organization_id = excluded.organization_id,
			type            = excluded.type,
			enabled         = excluded.enabled,
			data            = excluded.data;`

	getAllPolicies = `
		SELECT user_id, id, organization_id, type, enabled, data
		FROM policies
		WHERE user_id = ?;`

	replaceDomains = `
		INSERT INTO equivalent_domains (user_id, groups)
		VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			groups = excluded.groups;`

	getDomains = `
		SELECT user_id, groups
		FROM equivalent_domains
		WHERE user_id = ?;`
)

// buildDeleteAbsent builds the reconcile cleanup statement for table: delete
// every row of userID whose id is not in keepIDs. With no ids to keep the
// snapshot was empty and all of the user's rows go.
func buildDeleteAbsent(table, userID string, keepIDs []string) (string, []any, error) {
	builder := sq.Delete(table).Where(sq.Eq{"user_id": userID})
	if len(keepIDs) > 0 {
		builder = builder.Where(sq.NotEq{"id": keepIDs})
	}
	return builder.ToSql()
}
