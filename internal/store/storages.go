package store

import "github.com/MKhiriev/footy-tipping/internal/logger"

// Storages bundles the persistence dependencies handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	Transactor     Transactor
}

// NewStorages wires the repositories over an open connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		Transactor:     NewTransactor(db),
	}
}
