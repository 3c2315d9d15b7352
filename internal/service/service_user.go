// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/footy-tipping/internal/crypto"
	"github.com/MKhiriev/footy-tipping/internal/logger"
	"github.com/MKhiriev/footy-tipping/internal/store"
	"github.com/MKhiriev/footy-tipping/models"
)

// userService is the concrete implementation of UserService.
//
// Reads go straight to the repository. Every mutation runs inside a single
// transaction obtained from the transactor, so the uniqueness check and the
// write it guards commit or roll back together.
type userService struct {
	// userRepository serves the read-only operations.
	userRepository store.UserRepository

	// transactor runs the mutating operations atomically.
	transactor store.Transactor

	// hasher produces and verifies password hashes.
	hasher crypto.PasswordHasher

	// tokens issues bearer tokens on successful authentication.
	tokens TokenService

	logger *logger.Logger
}

// NewUserService constructs a UserService over the given storages.
func NewUserService(storages *store.Storages, hasher crypto.PasswordHasher, tokens TokenService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: storages.UserRepository,
		transactor:     storages.Transactor,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Authenticate checks the credentials in req and issues a token.
//
// An unknown username and a wrong password both return ErrInvalidCredentials,
// so callers cannot tell which part was wrong.
func (s *userService) Authenticate(ctx context.Context, req models.AuthenticateRequest) (models.AuthenticateResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "*userService.Authenticate").Str("username", req.Username).Msg("unknown username")
		return models.AuthenticateResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Authenticate").Msg("user search by username failed")
		return models.AuthenticateResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		log.Info().Str("func", "*userService.Authenticate").Int64("user_id", user.ID).Msg("wrong password")
		return models.AuthenticateResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return models.AuthenticateResponse{}, err
	}

	return user.AuthenticateResponse(token.SignedString), nil
}

// Register creates a new account. The password is hashed before the
// transaction starts to keep it short.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("error hashing password")
		return err
	}

	user := req.User()
	user.PasswordHash = hash

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, repo store.UserRepository) error {
		if err := ensureUsernameFree(ctx, repo, req.Username); err != nil {
			return err
		}

		created, err := repo.CreateUser(ctx, user)
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			return usernameTaken(req.Username)
		}
		if err != nil {
			return fmt.Errorf("user creation ended with error: %w", err)
		}

		log.Info().Str("func", "*userService.Register").Int64("user_id", created.ID).Msg("user registered")
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Str("username", req.Username).Msg("registration failed")
		return err
	}

	return nil
}

// Update overwrites the names and username of user id. The stored hash is
// replaced only when req carries a password.
func (s *userService) Update(ctx context.Context, id int64, req models.UpdateRequest) error {
	log := logger.FromContext(ctx)

	var hash string
	if req.Password != "" {
		var err error
		if hash, err = s.hashPassword(req.Password); err != nil {
			log.Err(err).Str("func", "*userService.Update").Msg("error hashing password")
			return err
		}
	}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, repo store.UserRepository) error {
		user, err := findUser(ctx, repo, id)
		if err != nil {
			return err
		}

		if req.Username != user.Username {
			if err := ensureUsernameFree(ctx, repo, req.Username); err != nil {
				return err
			}
		}

		req.Apply(&user)
		if hash != "" {
			user.PasswordHash = hash
		}

		err = repo.UpdateUser(ctx, user)
		switch {
		case errors.Is(err, store.ErrLoginAlreadyExists):
			return usernameTaken(req.Username)
		case errors.Is(err, store.ErrNoUserWasFound):
			return ErrUserNotFound
		case err != nil:
			return fmt.Errorf("user update ended with error: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.Update").Int64("user_id", id).Msg("update failed")
		return err
	}

	return nil
}

// Delete removes user id. Nothing is written when the user does not exist.
func (s *userService) Delete(ctx context.Context, id int64) error {
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, repo store.UserRepository) error {
		if _, err := findUser(ctx, repo, id); err != nil {
			return err
		}

		err := repo.DeleteUser(ctx, id)
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("user deletion ended with error: %w", err)
		}

		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.Delete").Int64("user_id", id).Msg("delete failed")
		return err
	}

	return nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetAll").Msg("error getting users")
		return nil, fmt.Errorf("error getting users: %w", err)
	}

	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (models.User, error) {
	return findUser(ctx, s.userRepository, id)
}

// hashPassword hashes plaintext, reporting unusable passwords as invalid data.
func (s *userService) hashPassword(plaintext string) (string, error) {
	hash, err := s.hasher.HashPassword(plaintext)
	if errors.Is(err, crypto.ErrEmptyPassword) || errors.Is(err, crypto.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return hash, nil
}

func findUser(ctx context.Context, repo store.UserRepository, id int64) (models.User, error) {
	user, err := repo.FindUserByID(ctx, id)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "service.findUser").Int64("user_id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// ensureUsernameFree fails early when username is held by an existing
// account. The unique index stays authoritative for concurrent writers.
func ensureUsernameFree(ctx context.Context, repo store.UserRepository, username string) error {
	_, err := repo.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		return usernameTaken(username)
	case errors.Is(err, store.ErrNoUserWasFound):
		return nil
	default:
		return fmt.Errorf("user search by username failed: %w", err)
	}
}
