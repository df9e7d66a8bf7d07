package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/c14220110/caregiver-backend/internal/account/models"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
	"github.com/c14220110/caregiver-backend/pkg/utils"
)

const CollectionAccounts = "accounts"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
)

type AccountService struct {
	Store docstore.Store
}

func NewAccountService(store docstore.Store) *AccountService {
	return &AccountService{Store: store}
}

// Register membuat atau menimpa akun dengan password yang di-hash bcrypt.
func (s *AccountService) Register(ctx context.Context, acc models.Account, password string) error {
	acc.Username = normalizeUsername(acc.Username)
	if acc.Username == "" || password == "" {
		return errors.New("username dan password harus diisi")
	}
	if acc.Role != utils.RoleCaregiver && acc.Role != utils.RoleParent {
		return fmt.Errorf("role %q tidak valid", acc.Role)
	}
	if acc.DisplayName == "" {
		acc.DisplayName = acc.Username
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("gagal hash password: %w", err)
	}
	return s.Store.Set(ctx, CollectionAccounts, acc.Username, docstore.Document{
		"display_name":  acc.DisplayName,
		"role":          acc.Role,
		"pronouns":      acc.Pronouns,
		"password_hash": string(hash),
	}, false)
}

// Get mengambil akun berdasarkan username (case-insensitive).
func (s *AccountService) Get(ctx context.Context, username string) (*models.Account, error) {
	username = normalizeUsername(username)
	if username == "" {
		return nil, ErrAccountNotFound
	}
	doc, ok, err := s.Store.Get(ctx, CollectionAccounts, username)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAccountNotFound
	}
	str := func(k string) string {
		v, _ := doc[k].(string)
		return v
	}
	return &models.Account{
		Username:     username,
		DisplayName:  str("display_name"),
		Role:         str("role"),
		Pronouns:     str("pronouns"),
		PasswordHash: str("password_hash"),
	}, nil
}

// Authenticate memverifikasi password. Akun tidak ada dan password salah menghasilkan error yang sama.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	acc, err := s.Get(ctx, username)
	if errors.Is(err, ErrAccountNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return acc, nil
}

func normalizeUsername(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}
