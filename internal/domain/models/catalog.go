package models

// Unit is the measurement unit of a catalog entry.
type Unit string

const (
	UnitPiece Unit = "UNIT"
	UnitMeter Unit = "METER"
)

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	return u == UnitPiece || u == UnitMeter
}

// Material is a catalog material owned by a professional.
type Material struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category,omitempty"`
	Price          float64 `json:"price"`
	Unit           Unit    `json:"unit"`
	ProfessionalID string  `json:"professionalId,omitempty"`
}

// Service is a catalog service (labor) owned by a professional.
type Service struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category,omitempty"`
	Price          float64 `json:"price"`
	Unit           Unit    `json:"unit"`
	ProfessionalID string  `json:"professionalId,omitempty"`
}
