package postgres

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/incubadora/ponto-api/internal/core/domain"
	"github.com/incubadora/ponto-api/internal/core/ports"
)

// UserDirectory implements ports.UserStore on PostgreSQL with
// bcrypt-hashed credentials.
type UserDirectory struct {
	db *gorm.DB
}

func NewUserDirectory(db *gorm.DB) ports.UserStore {
	return &UserDirectory{db: db}
}

// Resolve returns the user for a normalized CPF. Unknown and inactive
// users are indistinguishable to the caller.
func (d *UserDirectory) Resolve(ctx context.Context, cpf string) (*domain.User, error) {
	var row userModel
	err := d.db.WithContext(ctx).Where("cpf = ?", cpf).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if !row.Ativo {
		return nil, domain.ErrUserNotFound
	}

	return &domain.User{
		ID:         row.ID,
		Nome:       row.Nome,
		CPF:        row.CPF,
		Credential: row.PINHash,
		Ativo:      row.Ativo,
	}, nil
}

// VerifyPIN compares the supplied PIN against the stored bcrypt hash.
func (d *UserDirectory) VerifyPIN(user *domain.User, pin string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.Credential), []byte(pin)) != nil {
		return domain.ErrInvalidPIN
	}
	return nil
}

// Create registers a new user with a hashed PIN.
func (d *UserDirectory) Create(ctx context.Context, nome, cpf, pin string, ativo bool) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	row := userModel{
		Nome:    nome,
		CPF:     cpf,
		PINHash: string(hash),
		Ativo:   ativo,
	}
	if err := d.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}

	return &domain.User{
		ID:         row.ID,
		Nome:       row.Nome,
		CPF:        row.CPF,
		Credential: row.PINHash,
		Ativo:      row.Ativo,
	}, nil
}
