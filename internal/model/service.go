// internal/model/service.go
package model

type Service struct {
    ID       int     `db:"id" json:"id"`
    Name     string  `db:"nome" json:"nome"`
    Duration int     `db:"durata" json:"durata"` // minutes
    Price    float64 `db:"prezzo" json:"prezzo"`
}
