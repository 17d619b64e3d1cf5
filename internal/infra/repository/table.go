package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("repository: record not found")

const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

// ChangeNotifier recebe cada escrita bem sucedida; é só um sinal para reler.
type ChangeNotifier interface {
	Notify(ctx context.Context, table string, kind string, record any)
}

// Filter é um predicado de igualdade coluna = valor.
type Filter struct {
	Column string
	Value  any
}

type Query struct {
	Filters []Filter
	OrderBy string
	Desc    bool
	Limit   int
}

// Table é o acesso genérico a uma tabela: list/get/insert/update/delete/count.
type Table[T any] struct {
	db       *gorm.DB
	name     string
	notifier ChangeNotifier
}

func NewTable[T any](db *gorm.DB, name string, notifier ChangeNotifier) *Table[T] {
	return &Table[T]{db: db, name: name, notifier: notifier}
}

func (t *Table[T]) Name() string { return t.name }

func (t *Table[T]) List(ctx context.Context, q Query) ([]T, error) {
	tx := applyFilters(t.db.WithContext(ctx).Model(new(T)), q.Filters)

	if q.OrderBy != "" {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: q.OrderBy},
			Desc:   q.Desc,
		})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var out []T
	if err := tx.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("%s: list: %w", t.name, err)
	}
	return out, nil
}

func (t *Table[T]) Get(ctx context.Context, id any) (*T, error) {
	var rec T
	err := t.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: get: %w", t.name, err)
	}
	return &rec, nil
}

func (t *Table[T]) Insert(ctx context.Context, rec *T) error {
	if err := t.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("%s: insert: %w", t.name, err)
	}
	t.notify(ctx, EventInsert, rec)
	return nil
}

// Update aplica os campos ao registro id e devolve o registro relido.
func (t *Table[T]) Update(ctx context.Context, id any, fields map[string]any) (*T, error) {
	res := t.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("%s: update: %w", t.name, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	rec, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t.notify(ctx, EventUpdate, rec)
	return rec, nil
}

// Save grava o registro inteiro (last writer wins).
func (t *Table[T]) Save(ctx context.Context, rec *T) error {
	if err := t.db.WithContext(ctx).Save(rec).Error; err != nil {
		return fmt.Errorf("%s: save: %w", t.name, err)
	}
	t.notify(ctx, EventUpdate, rec)
	return nil
}

func (t *Table[T]) Delete(ctx context.Context, id any) error {
	res := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("%s: delete: %w", t.name, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	t.notify(ctx, EventDelete, map[string]any{"id": id})
	return nil
}

func (t *Table[T]) Count(ctx context.Context, filters []Filter) (int64, error) {
	var n int64
	if err := applyFilters(t.db.WithContext(ctx).Model(new(T)), filters).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%s: count: %w", t.name, err)
	}
	return n, nil
}

func (t *Table[T]) notify(ctx context.Context, kind string, rec any) {
	if t.notifier != nil {
		t.notifier.Notify(ctx, t.name, kind, rec)
	}
}

func applyFilters(tx *gorm.DB, filters []Filter) *gorm.DB {
	for _, f := range filters {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: f.Column}, Value: f.Value})
	}
	return tx
}
