package sequences

import (
	"io"
)

// SQLRows allow you to use the same iterator pattern with sql.Rows structure.
// It allows you to do dynamic filtering, pipeline/middleware pattern on your sql results
// by using this wrapping around it.
// It also makes testing easier with the same Iterator interface.
func SQLRows[V any](rows sqlRows, mapper RowMapper[V]) Iterator[V] {
	return &sqlRowsIter[V]{Rows: rows, Mapper: mapper}
}

type sqlRowsIter[V any] struct {
	Rows   sqlRows
	Mapper RowMapper[V]

	value V
	err   error
}

// sqlRows is the structural subset of sql.Rows the iterator depends on.
type sqlRows interface {
	io.Closer
	Next() bool
	Err() error
	Scan(dest ...interface{}) error
}

func (i *sqlRowsIter[V]) Close() error {
	return i.Rows.Close()
}

func (i *sqlRowsIter[V]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.Rows.Next() {
		return false
	}
	v, err := i.Mapper.Map(i.Rows)
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *sqlRowsIter[V]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.Rows.Err()
}

func (i *sqlRowsIter[V]) Value() V {
	return i.value
}

// sql rows iterator dependencies

type RowScanner interface {
	Scan(...interface{}) error
}

// RowMapper decodes the current row of the scanner into a value.
type RowMapper[V any] interface {
	Map(s RowScanner) (V, error)
}

// RowMapperFunc helps convert anonymous lambda expressions into a valid RowMapper object.
type RowMapperFunc[V any] func(RowScanner) (V, error)

func (fn RowMapperFunc[V]) Map(s RowScanner) (V, error) { return fn(s) }
