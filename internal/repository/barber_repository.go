package repository

import (
	"database/sql"

	"github.com/barbercloud/barber-backend/internal/model"
)

// BarberRepositoryInterface defines methods used by the controllers
type BarberRepositoryInterface interface {
	ListAll() ([]model.Barber, error)
}

type BarberRepository struct {
	DB *sql.DB
}

// ListAll fetches the whole barber roster (reference data, a handful of rows)
func (r *BarberRepository) ListAll() ([]model.Barber, error) {
	query := `SELECT id, nome, email, telefono FROM barbieri ORDER BY id`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	barbers := []model.Barber{}
	for rows.Next() {
		var b model.Barber
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Phone); err != nil {
			return nil, err
		}
		barbers = append(barbers, b)
	}
	return barbers, rows.Err()
}

var _ BarberRepositoryInterface = (*BarberRepository)(nil)
