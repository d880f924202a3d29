package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/repository"
)

type facilityRepository struct {
	db *sql.DB
}

func NewFacilityRepository(db *sql.DB) repository.FacilityRepository {
	return &facilityRepository{db: db}
}

func (r *facilityRepository) GetByID(ctx context.Context, id int32) (*domain.Facility, error) {
	f := &domain.Facility{}
	query := `SELECT id, name, slot, img_src, availability_status FROM facilities WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Name, &f.SlotUnit, &f.ImgSrc, &f.AvailabilityStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *facilityRepository) List(ctx context.Context) ([]domain.Facility, error) {
	query := `SELECT id, name, slot, img_src, availability_status FROM facilities ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facilities []domain.Facility
	for rows.Next() {
		var f domain.Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.SlotUnit, &f.ImgSrc, &f.AvailabilityStatus); err != nil {
			return nil, err
		}
		facilities = append(facilities, f)
	}
	return facilities, rows.Err()
}

func (r *facilityRepository) ScheduleForWeekday(ctx context.Context, weekday string, facilityID int32) ([]domain.ScheduleRow, error) {
	query := `SELECT
	            f.id AS facility_id,
	            f.name AS facility_name,
	            dt.id AS day_type_id,
	            dt.name AS day_type_name,
	            dtd.weekday AS day,
	            to_char(oh.open_time, 'HH24:MI:SS') AS open_time,
	            to_char(oh.close_time, 'HH24:MI:SS') AS close_time,
	            pr.start_time AS pricing_start_time,
	            pr.end_time AS pricing_end_time,
	            pr.price,
	            pr.unit,
	            er.item_name AS rental_item,
	            er.price AS rental_price
	          FROM facilities f
	          JOIN operating_hours oh ON f.id = oh.facility_id
	          JOIN day_types dt ON oh.day_type_id = dt.id
	          JOIN day_type_days dtd ON dt.id = dtd.day_type_id
	          LEFT JOIN pricing_rules pr ON f.id = pr.facility_id AND pr.day_type_id = dt.id
	          LEFT JOIN equipment_rentals er ON f.id = er.facility_id
	          WHERE dtd.weekday = $1 AND f.id = $2
	          ORDER BY pr.start_time`
	rows, err := r.db.QueryContext(ctx, query, weekday, facilityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanScheduleRows(rows)
}

func (r *facilityRepository) ListScheduleRows(ctx context.Context) ([]domain.ScheduleRow, error) {
	query := `SELECT
	            f.id AS facility_id,
	            f.name AS facility_name,
	            dt.id AS day_type_id,
	            dt.name AS day_type_name,
	            '' AS day,
	            to_char(oh.open_time, 'HH24:MI:SS') AS open_time,
	            to_char(oh.close_time, 'HH24:MI:SS') AS close_time,
	            pr.start_time AS pricing_start_time,
	            pr.end_time AS pricing_end_time,
	            pr.price,
	            pr.unit,
	            er.item_name AS rental_item,
	            er.price AS rental_price
	          FROM facilities f
	          INNER JOIN operating_hours oh ON f.id = oh.facility_id
	          INNER JOIN day_types dt ON oh.day_type_id = dt.id
	          LEFT JOIN pricing_rules pr ON pr.facility_id = f.id AND pr.day_type_id = dt.id
	          LEFT JOIN equipment_rentals er ON er.facility_id = f.id
	          ORDER BY f.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanScheduleRows(rows)
}

func scanScheduleRows(rows *sql.Rows) ([]domain.ScheduleRow, error) {
	var result []domain.ScheduleRow
	for rows.Next() {
		var sr domain.ScheduleRow
		if err := rows.Scan(&sr.FacilityID, &sr.FacilityName, &sr.DayTypeID, &sr.DayTypeName, &sr.Day, &sr.OpenTime, &sr.CloseTime, &sr.PricingStartTime, &sr.PricingEndTime, &sr.Price, &sr.Unit, &sr.RentalItem, &sr.RentalPrice); err != nil {
			return nil, err
		}
		result = append(result, sr)
	}
	return result, rows.Err()
}

// CreateDayType inserts the day type and its weekday rows in one transaction.
func (r *facilityRepository) CreateDayType(ctx context.Context, dt *domain.DayType) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = tx.QueryRowContext(ctx, `INSERT INTO day_types (name) VALUES ($1) RETURNING id`, dt.Name).Scan(&dt.ID)
	if err != nil {
		tx.Rollback()
		return err
	}

	for _, weekday := range dt.Weekdays {
		if _, err := tx.ExecContext(ctx, `INSERT INTO day_type_days (day_type_id, weekday) VALUES ($1, $2)`, dt.ID, weekday); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert weekday %s: %w", weekday, err)
		}
	}

	return tx.Commit()
}

// DeleteDayType removes the weekday rows and the day type in one transaction.
func (r *facilityRepository) DeleteDayType(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM day_type_days WHERE day_type_id = $1`, id); err != nil {
		tx.Rollback()
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM day_types WHERE id = $1`, id)
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		tx.Rollback()
		return domain.ErrNotFound
	}

	return tx.Commit()
}
