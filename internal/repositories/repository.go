package repositories

import (
	"errors"

	apperrors "gearguard/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode — код PostgreSQL для нарушения уникальности.
const uniqueViolationCode = "23505"

// mapPgError переводит нарушение уникального ограничения в apperrors.ErrConflict.
// Это страховка на случай гонки: прикладные проверки дубликатов уже прошли,
// но второй конкурентный писатель успел раньше. Повторов на этом уровне нет.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return apperrors.ErrConflict
	}
	return err
}
