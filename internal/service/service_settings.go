// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ndanilin/photarium/internal/logger"
	"github.com/ndanilin/photarium/internal/settings"
	"github.com/ndanilin/photarium/internal/store"
	"github.com/ndanilin/photarium/internal/validators"
	"github.com/ndanilin/photarium/models"
)

// settingsService is the default implementation of [SettingsService].
//
// The live aggregate is held in an atomic pointer: reads take no lock and
// observe either the previous or the new value, never a partial one.
// Updates serialise on updateMu across the whole fetch-merge-validate-
// persist-swap sequence, so no two updates can interleave their merges
// against a stale current value and persisted writes leave the repository
// in update order.
type settingsService struct {
	repository store.SettingsRepository
	validator  validators.Validator

	current  atomic.Pointer[models.Settings]
	updateMu sync.Mutex

	logger *logger.Logger
}

// NewSettingsService bootstraps a [SettingsService] from the injected
// repository: the persisted aggregate (or the zero aggregate, when nothing
// was ever stored) becomes the initial live value.
func NewSettingsService(ctx context.Context, repository store.SettingsRepository, validator validators.Validator, log *logger.Logger) (SettingsService, error) {
	loaded, err := repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBootstrappingSettings, err)
	}

	s := &settingsService{
		repository: repository,
		validator:  validator,
		logger:     log,
	}
	s.current.Store(&loaded)

	return s, nil
}

// GetSettings implements [SettingsService]. The stored value is redacted on
// every call; the caller never observes a real secret.
func (s *settingsService) GetSettings(ctx context.Context) models.Settings {
	return settings.Redact(*s.current.Load())
}

// UpdateSettings implements [SettingsService].
//
// The in-memory swap happens strictly after the successful durable write:
// if persistence fails, subsequent reads keep returning the pre-update
// aggregate and nothing is partially committed.
func (s *settingsService) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	log := logger.FromContext(ctx)

	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	current := s.current.Load()

	merged, err := settings.Merge(*current, patch)
	if err != nil {
		log.Err(err).Msg("settings merge rejected")
		return models.Settings{}, err
	}

	if err = s.validator.Validate(ctx, merged); err != nil {
		log.Err(err).Msg("merged settings failed validation")
		return models.Settings{}, err
	}

	if err = s.repository.Save(ctx, merged); err != nil {
		log.Err(err).Msg("failed to persist settings, keeping previous value")
		return models.Settings{}, err
	}

	s.current.Store(&merged)

	log.Info().
		Strs("sections", patchedSections(patch)).
		Msg("settings updated")

	return settings.Redact(merged), nil
}

// patchedSections lists the section names carried by the patch, for logging.
// Field values are deliberately not logged.
func patchedSections(patch models.SettingsPatch) []string {
	names := make([]string, 0, 4)
	for _, name := range []string{models.SectionDatabase, models.SectionGit, models.SectionOAuth, models.SectionStag} {
		if patch.Has(name) {
			names = append(names, name)
		}
	}

	return names
}
