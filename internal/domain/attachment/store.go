package attachment

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"Garagem/config"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/logger"
)

// Store grava e remove arquivos de anexos no disco. Os nomes armazenados
// recebem um prefixo de timestamp para evitar colisões.
type Store struct {
	dir          string
	maxFileSize  int64
	maxPerRecord int
	allowedExts  map[string]struct{}
}

func NewStore(cfg *config.Config) (*Store, error) {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("criar diretório de uploads: %w", err)
	}

	allowed := make(map[string]struct{}, len(cfg.Upload.AllowedExtensions))
	for _, ext := range cfg.Upload.AllowedExtensions {
		allowed[strings.ToLower(strings.TrimSpace(ext))] = struct{}{}
	}

	return &Store{
		dir:          cfg.Upload.Dir,
		maxFileSize:  cfg.Upload.MaxFileSize,
		maxPerRecord: cfg.Upload.MaxPerRecord,
		allowedExts:  allowed,
	}, nil
}

func (s *Store) MaxPerRecord() int {
	return s.maxPerRecord
}

func (s *Store) allowedFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	_, ok := s.allowedExts[ext]
	return ok
}

func sanitizeFilename(filename string) string {
	name := filepath.Base(filename)
	name = strings.ReplaceAll(name, " ", "_")
	// Defende contra separadores embutidos em nomes vindos do cliente
	name = strings.ReplaceAll(name, "..", "")
	return name
}

// SaveFile valida e grava um arquivo enviado, retornando o caminho
// armazenado relativo ao diretório de uploads.
func (s *Store) SaveFile(file *multipart.FileHeader) (string, error) {
	if !s.allowedFile(file.Filename) {
		return "", appErrors.ErrFileTypeNotAllowed.WithDetails(map[string]interface{}{
			"filename": file.Filename,
		})
	}
	if file.Size > s.maxFileSize {
		return "", appErrors.ErrFileTooLarge.WithDetails(map[string]interface{}{
			"filename": file.Filename,
			"size":     file.Size,
			"max_size": s.maxFileSize,
		})
	}

	src, err := file.Open()
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	defer src.Close()

	storedName := fmt.Sprintf("%s_%s", time.Now().Format("20060102150405"), sanitizeFilename(file.Filename))
	storedPath := filepath.Join(s.dir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(storedPath)
		return "", appErrors.ErrInternalServer.WithError(err)
	}

	return storedPath, nil
}

// Resolve traduz um caminho armazenado para o caminho absoluto no disco,
// rejeitando tentativas de escapar do diretório de uploads.
func (s *Store) Resolve(storedPath string) (string, error) {
	cleaned := filepath.Clean(storedPath)
	dir := filepath.Clean(s.dir)
	if cleaned != dir && !strings.HasPrefix(cleaned, dir+string(filepath.Separator)) {
		cleaned = filepath.Join(dir, filepath.Base(cleaned))
	}
	if _, err := os.Stat(cleaned); err != nil {
		return "", appErrors.ErrAttachmentNotFound.WithError(err)
	}
	return cleaned, nil
}

// RemoveFiles apaga arquivos armazenados, tolerando caminhos inexistentes.
// Falhas individuais são registradas e não interrompem a limpeza.
func (s *Store) RemoveFiles(paths []string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		resolved, err := s.Resolve(path)
		if err != nil {
			continue
		}
		if err := os.Remove(resolved); err != nil && !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("Falha ao remover arquivo de anexo")
		}
	}
}
