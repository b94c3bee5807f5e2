package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryBuilder_FindPostgres(t *testing.T) {
	q := newQueryBuilder(dialectPostgres)
	title := "go"
	isbn := "001"

	count, data, err := q.find(Filter{Title: &title, ISBN: &isbn}, PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(count.sql, `SELECT COUNT(*) FROM "books"`), count.sql)
	assert.Contains(t, count.sql, `"title" ILIKE $1`)
	assert.Contains(t, count.sql, `"isbn" = $2`)
	assert.Equal(t, []any{"%go%", "001"}, count.args)

	assert.Contains(t, data.sql, `ORDER BY "id" ASC`)
	assert.Contains(t, data.sql, "LIMIT")
	assert.Contains(t, data.sql, "OFFSET")
	assert.Contains(t, data.args, "%go%")
}

func TestQueryBuilder_FindEscapesLikeMetacharacters(t *testing.T) {
	q := newQueryBuilder(dialectPostgres)
	title := "100%_go!"

	count, _, err := q.find(Filter{Title: &title}, PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)

	assert.Contains(t, count.sql, `"title" ILIKE $1 ESCAPE '!'`)
	assert.Equal(t, []any{"%100!%!_go!!%"}, count.args)
}

func TestQueryBuilder_FindWildcard(t *testing.T) {
	q := newQueryBuilder(dialectPostgres)

	count, _, err := q.find(Filter{}, PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)

	assert.NotContains(t, count.sql, "WHERE")
	assert.Empty(t, count.args)
}

func TestQueryBuilder_SQLiteHasNoILike(t *testing.T) {
	q := newQueryBuilder(dialectSQLite)
	author := "artur"

	count, _, err := q.find(Filter{Author: &author}, PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)

	assert.NotContains(t, count.sql, "ILIKE")
	assert.Contains(t, count.sql, "LIKE ? ESCAPE '!'")
}

func TestQueryBuilder_Update(t *testing.T) {
	q := newQueryBuilder(dialectPostgres)

	query, err := q.update(Book{ID: 7, Title: "t", Author: "a", ISBN: "i"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query.sql, `UPDATE "books" SET`), query.sql)
	assert.Contains(t, query.sql, `"updated_at"=CURRENT_TIMESTAMP`)
	assert.Contains(t, query.args, int64(7))
}
