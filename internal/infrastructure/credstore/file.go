package credstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jhoicas/tienda-client/internal/domain/entity"
)

// snapshot es el documento persistido: ambas claves viven en el mismo archivo,
// así la escritura tmp+rename las hace visibles como un todo.
type snapshot struct {
	Token string           `json:"token"`
	User  *entity.Identity `json:"user"`
}

// FileStore implementación de Store sobre un filesystem afero
// (os.Fs en producción, MemMapFs en tests).
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore construye el store sobre el filesystem y la ruta indicados.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Read carga el snapshot. Archivo ausente, ilegible, corrupto o con una sola
// mitad presente ⇒ lectura vacía sin error: una sesión a medias nunca se hidrata.
func (s *FileStore) Read() (*entity.Identity, string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", nil
		}
		// Medio inaccesible: degradar a vacío.
		return nil, "", nil
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, "", nil
	}
	if snap.Token == "" || snap.User == nil {
		return nil, "", nil
	}
	return snap.User, snap.Token, nil
}

// Write persiste el par como un solo documento, vía archivo temporal + rename.
func (s *FileStore) Write(identity entity.Identity, token string) error {
	data, err := json.Marshal(snapshot{Token: token, User: &identity})
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("escribir sesión: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		// MemMapFs no renombra sobre un destino existente; OsFs sí.
		_ = s.fs.Remove(s.path)
		if err := s.fs.Rename(tmp, s.path); err != nil {
			return fmt.Errorf("publicar sesión: %w", err)
		}
	}
	return nil
}

// Clear elimina el archivo de sesión; que no exista no es un error.
func (s *FileStore) Clear() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("limpiar sesión: %w", err)
	}
	return nil
}
