package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	pepperMu sync.RWMutex
	pepper   string
)

// LoadPepper reads the server-side pepper from path, creating the file with
// a fresh random value on first start. An empty path leaves the pepper empty.
func LoadPepper(path string) error {
	if path == "" {
		SetPepper("")
		return nil
	}

	value, err := loadOrCreateSecret(path)
	if err != nil {
		return err
	}
	SetPepper(value)
	return nil
}

func SetPepper(value string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	pepper = value
}

func GetPepper() string {
	pepperMu.RLock()
	defer pepperMu.RUnlock()
	return pepper
}

// loadOrCreateSecret returns the trimmed contents of path, writing a new
// 256-bit random value there if it does not exist yet.
func loadOrCreateSecret(path string) (string, error) {
	path = filepath.Clean(path)
	b, err := os.ReadFile(path)
	if err == nil {
		return strings.TrimSpace(string(b)), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", err
	}
	buf := make([]byte, keyLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	secret := base64.RawURLEncoding.EncodeToString(buf)
	if err := os.WriteFile(path, []byte(secret), 0o600); err != nil {
		return "", err
	}
	return secret, nil
}
