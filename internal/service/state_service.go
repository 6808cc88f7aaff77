// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-client/internal/logger"
	"github.com/MKhiriev/go-vault-client/internal/store"
	"github.com/MKhiriev/go-vault-client/models"
)

type stateService struct {
	settings  store.AppSettingsStore
	vaultData store.VaultDataStore
	logger    *logger.Logger

	// mu serializes every public method: at most one registry mutation is
	// in flight at a time. Callers queue on the lock.
	mu sync.Mutex
}

// NewStateService constructs the account state façade over the settings
// store and the external vault data cache.
func NewStateService(settings store.AppSettingsStore, vaultData store.VaultDataStore, log *logger.Logger) StateService {
	return &stateService{settings: settings, vaultData: vaultData, logger: log}
}

// loadState reads the registry blob, normalising "never written" to an empty
// registry so mutators can work uniformly.
func (s *stateService) loadState(ctx context.Context) (*models.State, error) {
	state, err := s.settings.State(ctx)
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	if state == nil {
		state = models.NewState()
	}
	return state, nil
}

func (s *stateService) AddAccount(ctx context.Context, account models.Account) error {
	if account.UserID == "" {
		return fmt.Errorf("account has empty user id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return err
	}

	state.Accounts[account.UserID] = account
	state.ActiveUserID = account.UserID

	return s.settings.SetState(ctx, state)
}

func (s *stateService) ActiveAccount(ctx context.Context) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeAccountLocked(ctx)
}

func (s *stateService) activeAccountLocked(ctx context.Context) (models.Account, error) {
	state, err := s.loadState(ctx)
	if err != nil {
		return models.Account{}, err
	}

	if state.ActiveUserID == "" {
		return models.Account{}, ErrNoActiveAccount
	}

	account, ok := state.Accounts[state.ActiveUserID]
	if !ok {
		// Dangling active pointer: documented edge case, not healed here.
		return models.Account{}, ErrNoActiveAccount
	}

	return account, nil
}

func (s *stateService) ActiveAccountID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.activeAccountLocked(ctx)
	if err != nil {
		return "", err
	}
	return account.UserID, nil
}

func (s *stateService) Accounts(ctx context.Context) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	if len(state.Accounts) == 0 {
		return nil, ErrNoAccounts
	}

	ids := make([]string, 0, len(state.Accounts))
	for id := range state.Accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	accounts := make([]models.Account, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, state.Accounts[id])
	}

	return accounts, nil
}

func (s *stateService) AccountIDOrActiveID(ctx context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.accountIDOrActiveIDLocked(ctx, userID)
}

func (s *stateService) accountIDOrActiveIDLocked(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		account, err := s.activeAccountLocked(ctx)
		if err != nil {
			return "", err
		}
		return account.UserID, nil
	}

	state, err := s.loadState(ctx)
	if err != nil {
		return "", err
	}
	if _, ok := state.Accounts[userID]; !ok {
		return "", ErrNoAccounts
	}

	return userID, nil
}

func (s *stateService) SetActiveAccount(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadState(ctx)
	if err != nil {
		return err
	}

	if _, ok := state.Accounts[userID]; !ok {
		return ErrNoAccounts
	}

	state.ActiveUserID = userID

	return s.settings.SetState(ctx, state)
}

// LogoutAccount removes the account and cascades cleanup. The cascade order
// is: registry (with active-pointer repair), per-user settings, external
// vault cache. Any step's failure propagates and later steps do not run, so
// callers must treat logout as best-effort cleanup, not an atomic operation.
func (s *stateService) LogoutAccount(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return err
	}

	state, err := s.loadState(ctx)
	if err != nil {
		return err
	}

	delete(state.Accounts, id)

	if state.ActiveUserID == id {
		state.ActiveUserID = ""
		// Deterministic successor: the smallest remaining user id.
		remaining := make([]string, 0, len(state.Accounts))
		for rid := range state.Accounts {
			remaining = append(remaining, rid)
		}
		if len(remaining) > 0 {
			sort.Strings(remaining)
			state.ActiveUserID = remaining[0]
		}
	}

	if err = s.settings.SetState(ctx, state); err != nil {
		return err
	}

	if err = s.settings.DeleteUserSettings(ctx, id); err != nil {
		return fmt.Errorf("delete user settings: %w", err)
	}

	if err = s.vaultData.DeleteDataForUser(ctx, id); err != nil {
		return fmt.Errorf("delete vault data: %w", err)
	}

	s.logger.Info().Str("user_id", id).Msg("account logged out")

	return nil
}

func (s *stateService) SetAccountProfile(ctx context.Context, userID string, profile models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return err
	}

	state, err := s.loadState(ctx)
	if err != nil {
		return err
	}

	account := state.Accounts[id]
	account.Profile = profile
	state.Accounts[id] = account

	return s.settings.SetState(ctx, state)
}

// AccountEncryptionKeys applies AND semantics: a pair with one component
// missing reports the same failure as a fully absent pair.
func (s *stateService) AccountEncryptionKeys(ctx context.Context, userID string) (models.AccountEncryptionKeys, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return models.AccountEncryptionKeys{}, err
	}

	keys, err := s.settings.EncryptionKeys(ctx, id)
	if err != nil {
		return models.AccountEncryptionKeys{}, err
	}
	if keys == nil || !keys.IsComplete() {
		return models.AccountEncryptionKeys{}, ErrNoActiveAccount
	}

	return *keys, nil
}

func (s *stateService) SetAccountEncryptionKeys(ctx context.Context, userID string, keys models.AccountEncryptionKeys) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return err
	}

	return s.settings.SetEncryptionKeys(ctx, id, &keys)
}

func (s *stateService) Tokens(ctx context.Context, userID string) (*models.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	return state.Accounts[id].Tokens, nil
}

func (s *stateService) SetTokens(ctx context.Context, userID string, tokens models.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return err
	}

	state, err := s.loadState(ctx)
	if err != nil {
		return err
	}

	account := state.Accounts[id]
	account.Tokens = &tokens
	state.Accounts[id] = account

	return s.settings.SetState(ctx, state)
}

func (s *stateService) PasswordGenerationOptions(ctx context.Context, userID string) (*models.PasswordGenerationOptions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.settings.PasswordGenerationOptions(ctx, id)
}

func (s *stateService) SetPasswordGenerationOptions(ctx context.Context, userID string, opts models.PasswordGenerationOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return err
	}

	return s.settings.SetPasswordGenerationOptions(ctx, id, &opts)
}

func (s *stateService) UsernameGenerationOptions(ctx context.Context, userID string) (*models.UsernameGenerationOptions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.settings.UsernameGenerationOptions(ctx, id)
}

func (s *stateService) SetUsernameGenerationOptions(ctx context.Context, userID string, opts models.UsernameGenerationOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return err
	}

	return s.settings.SetUsernameGenerationOptions(ctx, id, &opts)
}

func (s *stateService) LastActiveTime(ctx context.Context, userID string) (*time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.settings.LastActiveTime(ctx, id)
}

func (s *stateService) SetLastActiveTime(ctx context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return err
	}

	return s.settings.SetLastActiveTime(ctx, id, at)
}

func (s *stateService) VaultTimeout(ctx context.Context, userID string) (*models.VaultTimeout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.settings.VaultTimeout(ctx, id)
}

func (s *stateService) SetVaultTimeout(ctx context.Context, userID string, timeout models.VaultTimeout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return err
	}

	return s.settings.SetVaultTimeout(ctx, id, timeout)
}

func (s *stateService) TimeoutAction(ctx context.Context, userID string) (*models.TimeoutAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.settings.TimeoutAction(ctx, id)
}

func (s *stateService) SetTimeoutAction(ctx context.Context, userID string, action models.TimeoutAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return err
	}

	return s.settings.SetTimeoutAction(ctx, id, action)
}

func (s *stateService) ShouldTrustDevice(ctx context.Context, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return false, err
	}

	return s.settings.ShouldTrustDevice(ctx, id)
}

func (s *stateService) SetShouldTrustDevice(ctx context.Context, userID string, should bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.accountIDOrActiveIDLocked(ctx, userID)
	if err != nil {
		return err
	}

	return s.settings.SetShouldTrustDevice(ctx, id, should)
}
