// internal/model/barber.go
package model

type Barber struct {
    ID    int     `db:"id" json:"id"`
    Name  string  `db:"nome" json:"nome"`
    Email *string `db:"email" json:"email,omitempty"`
    Phone *string `db:"telefono" json:"telefono,omitempty"`
}
