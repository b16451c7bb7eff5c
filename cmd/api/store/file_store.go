package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"review-desk/cmd/internal/logger"
	"review-desk/models"
)

// FileStore 는 JSON 배열 하나로 된 파일을 데이터 저장소로 쓴다.
// 같은 프로세스 안의 Append 는 mu 로 직렬화되지만, 여러 프로세스가
// 같은 파일을 공유하면 마지막 쓰기가 이긴다.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(ctx context.Context) ([]models.ReviewRecord, error) {
	return s.read(), nil
}

func (s *FileStore) Append(ctx context.Context, record models.ReviewRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := append(s.read(), record)
	return s.write(records)
}

func (s *FileStore) read() []models.ReviewRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.WarnWithFields("submission file unreadable, treating as empty", logger.Fields{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return []models.ReviewRecord{}
	}

	var records []models.ReviewRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logger.WarnWithFields("submission file corrupt, treating as empty", logger.Fields{
			"path":  s.path,
			"error": err.Error(),
		})
		return []models.ReviewRecord{}
	}
	if records == nil {
		records = []models.ReviewRecord{}
	}
	return records
}

// write 는 임시 파일에 쓴 뒤 rename 해서 반쯤 쓰인 파일이 남지 않게 한다.
func (s *FileStore) write(records []models.ReviewRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal submissions: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".submissions-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
