// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/argon2"

	"github.com/ndanilin/photarium/internal/logger"
	"github.com/ndanilin/photarium/models"
)

// settingsFileStorage persists the settings aggregate as a single JSON file.
// It is the zero-dependency default backend for small deployments.
//
// When a passphrase is configured the file is sealed: the JSON payload is
// encrypted with AES-256-GCM under a key derived from the passphrase with
// Argon2id, so secrets are not readable at rest. Encryption-at-rest is a
// concern of this storage collaborator only; the engine above it always
// works with clear values.
type settingsFileStorage struct {
	path       string
	passphrase string

	// argon2id tuning parameters (OWASP recommended defaults)
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	mu     sync.Mutex
	logger *logger.Logger
}

// sealedEnvelope is the on-disk shape of a sealed settings file.
type sealedEnvelope struct {
	KDF   string `json:"kdf"`
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	Data  []byte `json:"data"`
}

// NewSettingsFileStorage constructs a file-backed [SettingsRepository] at
// path. An empty passphrase keeps the file in clear JSON; a non-empty one
// seals it.
func NewSettingsFileStorage(path, passphrase string, log *logger.Logger) SettingsRepository {
	return &settingsFileStorage{
		path:         path,
		passphrase:   passphrase,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		logger:       log,
	}
}

// Load reads and, if sealed, decrypts the settings file. A missing file is
// the unconfigured state and yields the zero aggregate.
func (s *settingsFileStorage) Load(ctx context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Settings{}, nil
		}
		return models.Settings{}, fmt.Errorf("%w: %w", ErrLoadingSettings, err)
	}

	var envelope sealedEnvelope
	if err = json.Unmarshal(raw, &envelope); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %w", ErrLoadingSettings, err)
	}

	if envelope.KDF != "" {
		if s.passphrase == "" {
			return models.Settings{}, fmt.Errorf("%w: file is sealed but no passphrase is configured", ErrSealedSettingsFile)
		}
		if raw, err = s.open(envelope); err != nil {
			return models.Settings{}, err
		}
	}

	var loaded models.Settings
	if err = json.Unmarshal(raw, &loaded); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %w", ErrLoadingSettings, err)
	}

	return loaded, nil
}

// Save writes the aggregate to a temporary file in the target directory and
// renames it over the destination, so a crash mid-write never leaves a
// truncated settings file behind.
func (s *settingsFileStorage) Save(ctx context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}

	if s.passphrase != "" {
		if payload, err = s.seal(payload); err != nil {
			return err
		}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}

	return nil
}

// seal encrypts payload with AES-256-GCM under an Argon2id-derived key and
// wraps the result in a [sealedEnvelope].
func (s *settingsFileStorage) seal(payload []byte) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}

	aead, err := s.aead(salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}

	envelope := sealedEnvelope{
		KDF:   "argon2id",
		Salt:  salt,
		Nonce: nonce,
		Data:  aead.Seal(nil, nonce, payload, nil),
	}

	sealed, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}

	return sealed, nil
}

// open decrypts a sealed envelope back into the clear JSON payload.
func (s *settingsFileStorage) open(envelope sealedEnvelope) ([]byte, error) {
	aead, err := s.aead(envelope.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSealedSettingsFile, err)
	}

	payload, err := aead.Open(nil, envelope.Nonce, envelope.Data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: wrong passphrase or corrupted file", ErrSealedSettingsFile)
	}

	return payload, nil
}

func (s *settingsFileStorage) aead(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(s.passphrase), salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
