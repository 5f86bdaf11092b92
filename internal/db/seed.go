package db

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// Seed inserts the default barbers and services, once, when the respective
// table is still empty. Safe to run on every startup.
func Seed(conn *sql.DB, logger *zap.Logger) error {
	var barberCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM barbieri`).Scan(&barberCount); err != nil {
		return fmt.Errorf("count barbieri: %w", err)
	}

	if barberCount == 0 {
		_, err := conn.Exec(`
			INSERT INTO barbieri (nome, telefono) VALUES
			('Michele', '+39xxxxxxxxxx'),
			('Lucio', '+39xxxxxxxxxx')
		`)
		if err != nil {
			return fmt.Errorf("seed barbieri: %w", err)
		}
		logger.Info("default barbers inserted")
	}

	var serviceCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM servizi`).Scan(&serviceCount); err != nil {
		return fmt.Errorf("count servizi: %w", err)
	}

	if serviceCount == 0 {
		_, err := conn.Exec(`
			INSERT INTO servizi (nome, durata, prezzo) VALUES
			('Taglio', 30, 20.00),
			('Barba', 15, 10.00),
			('Taglio + Barba', 45, 25.00),
			('Lavoro Speciale', 60, 35.00)
		`)
		if err != nil {
			return fmt.Errorf("seed servizi: %w", err)
		}
		logger.Info("default services inserted")
	}

	return nil
}
