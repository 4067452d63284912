package storage

import (
	"fmt"

	app "github.com/diwise/iot-hydrology/internal/app/hydrology"
	"github.com/jackc/pgx/v5"
)

func newConditions(conditions ...app.ConditionFunc) map[string]any {
	m := make(map[string]any)

	for _, f := range conditions {
		m = f(m)
	}

	return m
}

func paging(c map[string]any, args pgx.NamedArgs) string {
	query := ""

	if offset, ok := c["offset"]; ok {
		query += " OFFSET @offset"
		args["offset"] = offset
	}

	if limit, ok := c["limit"]; ok {
		query += " LIMIT @limit"
		args["limit"] = limit
	}

	return query
}

func newQueryTenantsParams(c map[string]any) (string, pgx.NamedArgs) {
	query := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if id, ok := c["id"]; ok {
		query += " AND id=@id"
		args["id"] = id
	}

	return query, args
}

func newQueryLocationsParams(c map[string]any) (string, pgx.NamedArgs) {
	query := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if id, ok := c["id"]; ok {
		query += " AND id=@id"
		args["id"] = id
	}

	if tenantID, ok := c["tenant_id"]; ok {
		query += " AND tenant_id=@tenant_id"
		args["tenant_id"] = tenantID
	}

	if locationIDs, ok := c["location_ids"]; ok {
		query += " AND id=ANY(@location_ids)"
		args["location_ids"] = locationIDs
	}

	if types, ok := c["types"]; ok {
		query += " AND type=ANY(@types)"
		args["types"] = types
	}

	return query, args
}

func newQueryLoggersParams(c map[string]any) (string, pgx.NamedArgs) {
	query := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if id, ok := c["id"]; ok {
		query += " AND id=@id"
		args["id"] = id
	}

	if sn, ok := c["sn"]; ok {
		query += " AND sn=@sn"
		args["sn"] = sn
	}

	if sns, ok := c["sns"]; ok {
		query += " AND sn=ANY(@sns)"
		args["sns"] = sns
	}

	if tenantID, ok := c["tenant_id"]; ok {
		query += " AND tenant_id=@tenant_id"
		args["tenant_id"] = tenantID
	}

	if locationID, ok := c["location_id"]; ok {
		query += " AND location_id=@location_id"
		args["location_id"] = locationID
	}

	return query, args
}

func newQueryReadingsParams(c map[string]any) (string, pgx.NamedArgs) {
	query := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if sn, ok := c["sn"]; ok {
		query += " AND logger_sn=@sn"
		args["sn"] = sn
	}

	if sns, ok := c["sns"]; ok {
		query += " AND logger_sn=ANY(@sns)"
		args["sns"] = sns
	}

	if tenantID, ok := c["tenant_id"]; ok {
		query += " AND tenant_id=@tenant_id"
		args["tenant_id"] = tenantID
	}

	if locationID, ok := c["location_id"]; ok {
		query += " AND location_id=@location_id"
		args["location_id"] = locationID
	}

	if locationIDs, ok := c["location_ids"]; ok {
		query += " AND location_id=ANY(@location_ids)"
		args["location_ids"] = locationIDs
	}

	if sampling, ok := c["sampling"]; ok {
		query += " AND sampling=@sampling"
		args["sampling"] = sampling
	}

	if from, ok := c["sampling_from"]; ok {
		query += " AND sampling>=@sampling_from"
		args["sampling_from"] = from
	}

	if to, ok := c["sampling_to"]; ok {
		query += " AND sampling<@sampling_to"
		args["sampling_to"] = to
	}

	if until, ok := c["sampling_until"]; ok {
		query += " AND sampling<=@sampling_until"
		args["sampling_until"] = until
	}

	if _, ok := c["has_water_level"]; ok {
		query += " AND water_level IS NOT NULL"
	}

	return query, args
}

func newQueryRawPayloadsParams(c map[string]any) (string, pgx.NamedArgs) {
	query := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if id, ok := c["id"]; ok {
		query += " AND id=@id"
		args["id"] = id
	}

	if from, ok := c["received_from"]; ok {
		query += " AND received>=@received_from"
		args["received_from"] = from
	}

	if to, ok := c["received_to"]; ok {
		query += " AND received<@received_to"
		args["received_to"] = to
	}

	return query, args
}

func selectFrom(columns, table, where string, args pgx.NamedArgs, c map[string]any, orderBy string) string {
	return fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s%s", columns, table, where, orderBy, paging(c, args))
}
