package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, order string, entity any) error
	UpdateBy(ctx context.Context, model any, column string, value any, updates map[string]any) error
	DeleteBy(ctx context.Context, model any, column string, value any) error
	SelectExclusive(ctx context.Context, model any, flagColumn, column string, value any) error
}
