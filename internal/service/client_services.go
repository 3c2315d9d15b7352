package service

import (
	"github.com/MKhiriev/footy-tipping/internal/adapter"
	"github.com/MKhiriev/footy-tipping/internal/store"
)

type ClientServices struct {
	UserService ClientUserService
}

func NewClientServices(sessions store.SessionStorage, serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		UserService: NewClientUserService(serverAdapter, sessions),
	}
}
