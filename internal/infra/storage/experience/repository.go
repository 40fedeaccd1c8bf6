package experience

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EXP-BookingService/internal/domain"
	"github.com/m04kA/EXP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/EXP-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с каталогом впечатлений
// Каталог read-only: строки создаются сидированием вне сервиса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория впечатлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все впечатления, упорядоченные по id
// Если search не пустой, фильтрует регистронезависимым поиском
// по названию, локации и описанию
func (r *Repository) List(ctx context.Context, search string) ([]*domain.Experience, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"title",
		"description",
		"location",
		"price",
		"image_url",
		"about",
		"created_at",
	).
		From("experiences").
		OrderBy("id")

	if search != "" {
		pattern := "%" + search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"location": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	experiences := make([]*domain.Experience, 0)
	for rows.Next() {
		var exp domain.Experience
		var createdAt sql.NullTime

		err := rows.Scan(
			&exp.ID,
			&exp.Title,
			&exp.Description,
			&exp.Location,
			&exp.Price,
			&exp.ImageURL,
			&exp.About,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		exp.CreatedAt = createdAt.Time
		experiences = append(experiences, &exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return experiences, nil
}

// GetByID получает впечатление по ID
// Если в контексте есть активная транзакция, выполняется внутри неё
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"description",
		"location",
		"price",
		"image_url",
		"about",
		"created_at",
	).
		From("experiences").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var exp domain.Experience
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&exp.ID,
		&exp.Title,
		&exp.Description,
		&exp.Location,
		&exp.Price,
		&exp.ImageURL,
		&exp.About,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan experience: %v", ErrScanRow, err)
	}

	exp.CreatedAt = createdAt.Time

	return &exp, nil
}
