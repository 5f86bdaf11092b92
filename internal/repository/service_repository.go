package repository

import (
	"database/sql"

	"github.com/barbercloud/barber-backend/internal/model"
)

// ServiceRepositoryInterface defines methods used by the controllers
type ServiceRepositoryInterface interface {
	ListAll() ([]model.Service, error)
}

type ServiceRepository struct {
	DB *sql.DB
}

// ListAll fetches the service catalog
func (r *ServiceRepository) ListAll() ([]model.Service, error) {
	query := `SELECT id, nome, durata, prezzo FROM servizi ORDER BY id`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []model.Service{}
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Duration, &s.Price); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

var _ ServiceRepositoryInterface = (*ServiceRepository)(nil)
