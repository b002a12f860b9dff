package postgres

import (
	"time"

	"github.com/incubadora/ponto-api/internal/core/domain"
)

// userModel is a row of the bolsistas table. PINs are stored as bcrypt
// hashes, never in plain text.
type userModel struct {
	ID      uint   `gorm:"primaryKey"`
	Nome    string `gorm:"type:text;not null"`
	CPF     string `gorm:"column:cpf;type:varchar(11);not null;uniqueIndex:uq_bolsista_cpf"`
	PINHash string `gorm:"column:pin_hash;type:text;not null"`
	Ativo   bool   `gorm:"not null;default:true"`
}

func (userModel) TableName() string { return "bolsistas" }

// eventModel is a row of the registros table. User-identifying fields
// are denormalized onto each event so both directory variants share
// one schema; rows are insert-only.
type eventModel struct {
	ID       uint      `gorm:"primaryKey"`
	CPF      string    `gorm:"column:cpf;type:varchar(11);not null;index:idx_registros_cpf"`
	Nome     string    `gorm:"type:text;not null"`
	Acao     string    `gorm:"type:text;not null"`
	DataHora time.Time `gorm:"column:data_hora;type:timestamp with time zone;not null;index:idx_registros_data_hora"`
	IPOrigem string    `gorm:"column:ip_origem;type:text"`
}

func (eventModel) TableName() string { return "registros" }

func (m eventModel) toDomain() domain.AttendanceEvent {
	return domain.AttendanceEvent{
		ID:        m.ID,
		CPF:       m.CPF,
		Nome:      m.Nome,
		Action:    domain.Action(m.Acao),
		Timestamp: m.DataHora.In(domain.BRT),
		OriginIP:  m.IPOrigem,
	}
}
