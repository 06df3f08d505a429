package setting

import "context"

type SettingRepository interface {
	Upsert(ctx context.Context, s Setting) (Setting, error)
	GetByKey(ctx context.Context, key string) (Setting, error)
	List(ctx context.Context) ([]Setting, int64, error)
	Delete(ctx context.Context, key string) error
}
