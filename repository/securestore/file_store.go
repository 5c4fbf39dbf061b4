package securestore

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

var fileMagic = []byte("CCS1")

const (
	saltSize = 16

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// fileStore keeps every value in one XChaCha20-Poly1305 sealed JSON document.
// Layout: magic | salt | nonce | ciphertext.
type fileStore struct {
	mu     sync.Mutex
	path   string
	salt   []byte
	key    []byte
	values map[string]string
}

// NewFileStore opens (or prepares) the encrypted store at path. The sealing key is derived
// from secret with argon2id and the per-file salt.
func NewFileStore(path, secret string) (Store, error) {
	if secret == "" {
		return nil, fmt.Errorf("securestore: empty encryption secret")
	}

	s := &fileStore{path: path, values: map[string]string{}}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		s.salt = make([]byte, saltSize)
		if _, err := io.ReadFull(rand.Reader, s.salt); err != nil {
			return nil, err
		}
		s.key = deriveKey(secret, s.salt)
		return s, nil
	case err != nil:
		return nil, err
	}

	if err := s.open(raw, secret); err != nil {
		return nil, err
	}
	return s, nil
}

func deriveKey(secret string, salt []byte) []byte {
	return argon2.IDKey([]byte(secret), salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
}

func (s *fileStore) open(raw []byte, secret string) error {
	header := len(fileMagic) + saltSize + chacha20poly1305.NonceSizeX
	if len(raw) < header || !bytes.Equal(raw[:len(fileMagic)], fileMagic) {
		return fmt.Errorf("securestore: %s is not a store file", s.path)
	}
	s.salt = append([]byte(nil), raw[len(fileMagic):len(fileMagic)+saltSize]...)
	s.key = deriveKey(secret, s.salt)

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return err
	}
	nonce := raw[len(fileMagic)+saltSize : header]
	plain, err := aead.Open(nil, nonce, raw[header:], fileMagic)
	if err != nil {
		return fmt.Errorf("securestore: decrypt %s: %w", s.path, err)
	}
	return json.Unmarshal(plain, &s.values)
}

func (s *fileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[key]
	s.values[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[key]
	if !had {
		return nil
	}
	delete(s.values, key)
	if err := s.flush(); err != nil {
		s.values[key] = prev
		return err
	}
	return nil
}

// flush writes the sealed document to a temp file and renames it into place.
func (s *fileStore) flush() error {
	plain, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return err
	}

	out := make([]byte, 0, len(fileMagic)+saltSize+len(nonce)+len(plain)+aead.Overhead())
	out = append(out, fileMagic...)
	out = append(out, s.salt...)
	out = append(out, nonce...)
	out = aead.Seal(out, nonce, plain, fileMagic)

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".securestore-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
