package domain

// User is a person allowed to register attendance events.
//
// Credential holds either the plain normalized PIN (roster-backed
// directory) or a bcrypt hash of it (store-backed directory); the
// directory implementation that produced the User knows which.
type User struct {
	ID         uint   `json:"id,omitempty"`
	Nome       string `json:"nome"`
	CPF        string `json:"cpf"`
	Credential string `json:"-"`
	Ativo      bool   `json:"ativo"`
}
