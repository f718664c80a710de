package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"calc-be/api/internal/answer"
)

var ErrNotFound = sql.ErrNoRows

// SolveRepo кэширует нормализованные ответы по хэшу картинки, чтобы повторная
// отправка того же изображения не ходила в модель.
type SolveRepo struct{ DB *sql.DB }

func NewSolveRepo(db *sql.DB) *SolveRepo { return &SolveRepo{DB: db} }

// FindByHash достаёт самую свежую запись по ключу (image_hash + subject + model).
// Если maxAge > 0 — проверяет свежесть, иначе игнорирует возраст.
func (r *SolveRepo) FindByHash(ctx context.Context, imageHash, subject, model string, maxAge time.Duration) ([]answer.Record, error) {
	const q = `
select created_at, result_json
from solved_images
where image_hash = $1 and subject = $2 and model = $3
order by created_at desc
limit 1`
	var (
		ts time.Time
		js []byte
	)
	if err := r.DB.QueryRowContext(ctx, q, imageHash, subject, model).Scan(&ts, &js); err != nil {
		return nil, err
	}
	if maxAge > 0 && time.Since(ts) > maxAge {
		return nil, ErrNotFound
	}
	var recs []answer.Record
	if err := json.Unmarshal(js, &recs); err != nil {
		// поломанный JSON в кэше равносилен промаху
		return nil, ErrNotFound
	}
	return recs, nil
}

// Upsert сохраняет результат решения. Существующая запись по ключу
// (image_hash, subject, model) переписывается целиком.
func (r *SolveRepo) Upsert(ctx context.Context, imageHash, subject, model string, recs []answer.Record) error {
	js, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	const q = `
insert into solved_images (image_hash, subject, model, result_json, created_at)
values ($1, $2, $3, $4, now())
on conflict (image_hash, subject, model) do update
set result_json = excluded.result_json,
    created_at = excluded.created_at`
	_, err = r.DB.ExecContext(ctx, q, imageHash, subject, model, js)
	return err
}

// PurgeOlderThan удаляет старые записи, чтобы не раздувать БД.
func (r *SolveRepo) PurgeOlderThan(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, errors.New("olderThan must be > 0")
	}
	cutoff := time.Now().Add(-olderThan)
	const q = `delete from solved_images where created_at < $1`
	res, err := r.DB.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}
