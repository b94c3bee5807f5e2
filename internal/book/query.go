package book

import (
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"

	tableBooks   = "books"
	colID        = "id"
	colTitle     = "title"
	colAuthor    = "author"
	colISBN      = "isbn"
	colUpdatedAt = "updated_at"

	likeEscape = '!'
)

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type sqlQuery struct {
	sql  string
	args []any
}

// queryBuilder renders the book statements for one SQL dialect. Every
// statement is prepared, so values always travel as bind arguments.
type queryBuilder struct {
	dialect goqu.DialectWrapper
}

func newQueryBuilder(dialect string) queryBuilder {
	return queryBuilder{dialect: goqu.Dialect(dialect)}
}

func (q queryBuilder) from() *goqu.SelectDataset {
	return q.dialect.From(tableBooks).Prepared(true)
}

func (q queryBuilder) selectBy(col string, val any) (sqlQuery, error) {
	return render(q.from().
		Select(colID, colTitle, colAuthor, colISBN).
		Where(goqu.C(col).Eq(val)).
		Limit(1))
}

func (q queryBuilder) existsByISBN(isbn string) (sqlQuery, error) {
	return render(q.from().
		Select(colID).
		Where(goqu.C(colISBN).Eq(isbn)).
		Limit(1))
}

func (q queryBuilder) find(f Filter, p PageRequest) (count sqlQuery, data sqlQuery, err error) {
	filtered := q.from().Where(filterExpressions(f)...)

	count, err = render(filtered.Select(goqu.COUNT(goqu.Star())))
	if err != nil {
		return sqlQuery{}, sqlQuery{}, err
	}
	data, err = render(filtered.
		Select(colID, colTitle, colAuthor, colISBN).
		Order(goqu.C(colID).Asc()).
		Limit(uint(p.Size)).
		Offset(uint(p.Offset())))
	if err != nil {
		return sqlQuery{}, sqlQuery{}, err
	}
	return count, data, nil
}

func (q queryBuilder) update(b Book) (sqlQuery, error) {
	sql, args, err := q.dialect.Update(tableBooks).
		Prepared(true).
		Set(goqu.Record{
			colTitle:     b.Title,
			colAuthor:    b.Author,
			colISBN:      b.ISBN,
			colUpdatedAt: goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.C(colID).Eq(b.ID)).
		ToSQL()
	if err != nil {
		return sqlQuery{}, fmt.Errorf("build update query: %w", err)
	}
	return sqlQuery{sql: sql, args: args}, nil
}

func (q queryBuilder) delete(id int64) (sqlQuery, error) {
	sql, args, err := q.dialect.Delete(tableBooks).
		Prepared(true).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
	if err != nil {
		return sqlQuery{}, fmt.Errorf("build delete query: %w", err)
	}
	return sqlQuery{sql: sql, args: args}, nil
}

func filterExpressions(f Filter) []exp.Expression {
	exprs := make([]exp.Expression, 0, 3)
	if f.Title != nil {
		exprs = append(exprs, goqu.C(colTitle).ILike(contains(*f.Title)))
	}
	if f.Author != nil {
		exprs = append(exprs, goqu.C(colAuthor).ILike(contains(*f.Author)))
	}
	if f.ISBN != nil {
		exprs = append(exprs, goqu.C(colISBN).Eq(*f.ISBN))
	}
	return exprs
}

// contains matches s literally anywhere in the column. LIKE metacharacters
// in s are escaped.
func contains(s string) exp.LiteralExpression {
	return goqu.L(fmt.Sprintf("? ESCAPE '%c'", likeEscape), "%"+likeEscaper.Replace(s)+"%")
}

func render(ds *goqu.SelectDataset) (sqlQuery, error) {
	sql, args, err := ds.ToSQL()
	if err != nil {
		return sqlQuery{}, fmt.Errorf("build select query: %w", err)
	}
	return sqlQuery{sql: sql, args: args}, nil
}
