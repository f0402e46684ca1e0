package store

import (
	"context"
	"errors"

	"github.com/DRSN-tech/commerce-backend/pkg/clients"
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// RedisStore — сетевой бэкенд хранилища записей.
// Запись хранится как Redis-хэш по ключу "<kind>:<id>",
// множество выданных ключей — по ключу "<kind>:ids".
// Ключ остаётся в множестве после удаления записи,
// поэтому удалённый ключ повторно не выдаётся.
type RedisStore struct {
	client *clients.RedisClient
	schema Schema
}

func NewRedisStore(client *clients.RedisClient, schema Schema) *RedisStore {
	return &RedisStore{
		client: client,
		schema: schema,
	}
}

func (r *RedisStore) Create(ctx context.Context, fields Fields) (*Record, error) {
	normalized, err := r.schema.normalize(fields)
	if err != nil {
		return nil, err
	}

	id := newID()
	added, err := r.client.Client.SAdd(ctx, r.idsKey(), id).Result()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if added == 0 {
		// 128-битная коллизия: не перезаписываем чужую запись.
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrIDCollision)
	}

	if err := r.client.Client.HSet(ctx, r.recordKey(id), r.encode(normalized)).Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Record{ID: id, Fields: normalized}, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Record, error) {
	raw, err := r.client.Client.HGetAll(ctx, r.recordKey(id)).Result()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if len(raw) == 0 {
		return nil, e.ErrRecordNotFound
	}

	fields, err := r.decode(raw)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Record{ID: id, Fields: fields}, nil
}

func (r *RedisStore) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.Client.SMembers(ctx, r.idsKey()).Result()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// Множество содержит и ключи удалённых записей, отфильтровываем их.
	live := make([]string, 0, len(ids))
	for _, id := range ids {
		exists, err := r.client.Client.Exists(ctx, r.recordKey(id)).Result()
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		if exists > 0 {
			live = append(live, id)
		}
	}

	return live, nil
}

func (r *RedisStore) ListAll(ctx context.Context) ([]*Record, error) {
	ids, err := r.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(ids))
	for _, id := range ids {
		record, err := r.Get(ctx, id)
		if err != nil {
			// Запись могла быть удалена между ListIDs и Get.
			if errors.Is(err, e.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *RedisStore) FindBy(ctx context.Context, field string, value any) ([]*Record, error) {
	kind, ok := r.schema.Fields[field]
	if !ok {
		return nil, e.Wrap("FindBy: unknown field "+field, e.ErrStatusBadRequest)
	}

	want, err := coerce(kind, value)
	if err != nil {
		return nil, err
	}

	records, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]*Record, 0)
	for _, record := range records {
		if record.Fields[field] == want {
			matches = append(matches, record)
		}
	}

	return matches, nil
}

func (r *RedisStore) Update(ctx context.Context, id string, fields Fields) error {
	normalized, err := r.schema.normalize(fields)
	if err != nil {
		return err
	}

	exists, err := r.client.Client.Exists(ctx, r.recordKey(id)).Result()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if exists == 0 {
		return e.ErrRecordNotFound
	}

	// Полная замена: старый хэш удаляется, чтобы не остались лишние поля.
	pipe := r.client.Client.TxPipeline()
	pipe.Del(ctx, r.recordKey(id))
	pipe.HSet(ctx, r.recordKey(id), r.encode(normalized))
	if _, err := pipe.Exec(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	deleted, err := r.client.Client.Del(ctx, r.recordKey(id)).Result()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if deleted == 0 {
		return e.ErrRecordNotFound
	}

	// Ключ намеренно остаётся в "<kind>:ids", см. комментарий к типу.
	return nil
}

func (r *RedisStore) encode(fields Fields) map[string]string {
	out := make(map[string]string, len(fields))
	for name, v := range fields {
		out[name] = encodeValue(v)
	}
	return out
}

func (r *RedisStore) decode(raw map[string]string) (Fields, error) {
	fields := make(Fields, len(r.schema.Fields))
	for name, kind := range r.schema.Fields {
		s, ok := raw[name]
		if !ok {
			fields[name] = zeroValue(kind)
			continue
		}

		v, err := decodeValue(kind, s)
		if err != nil {
			return nil, err
		}
		fields[name] = v
	}

	return fields, nil
}

func (r *RedisStore) recordKey(id string) string {
	return r.schema.Kind + ":" + id
}

func (r *RedisStore) idsKey() string {
	return r.schema.Kind + ":ids"
}
