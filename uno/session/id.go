package session

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_id.go github.com/ratel-online/hotseat/uno/session IDGenerator

type IDGenerator interface {
	NewUUID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewUUID() string {
	return uuid.New().String()
}
