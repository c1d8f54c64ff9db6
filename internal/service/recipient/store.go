// Package recipient 할인 안내 메일 수신자 목록을 JSON 파일 하나에 저장하고 관리합니다.
//
// 파일 형식:
//
//	{"recipients": ["a@example.com", "b@example.com"]}
package recipient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	applog "github.com/darkkaiser/discount-bot/pkg/log"
	"github.com/samber/lo"
)

const component = "recipient.store"

// document 수신자 파일의 JSON 구조
type document struct {
	Recipients []string `json:"recipients"`
}

// Store 파일 기반 수신자 저장소
//
// 읽기-수정-쓰기 구간은 Store 가 소유한 뮤텍스로 직렬화됩니다.
// 같은 파일을 여러 프로세스가 동시에 수정하는 경우는 보호하지 않습니다.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore 지정된 경로의 파일을 사용하는 Store 를 생성합니다. 파일은 첫 쓰기 시점에 만들어집니다.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path 저장소 파일 경로
func (s *Store) Path() string {
	return s.path
}

// List 저장된 수신자 목록을 추가된 순서대로 반환합니다. 파일이 없으면 빈 목록을 반환합니다.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

// Add 수신자를 추가하고 전체 목록을 반환합니다. 이미 있는 주소면 파일을 다시 쓰지 않습니다.
func (s *Store) Add(ctx context.Context, email string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipients, err := s.read()
	if err != nil {
		return nil, err
	}

	if lo.Contains(recipients, email) {
		return recipients, nil
	}

	recipients = append(recipients, email)
	if err := s.write(recipients); err != nil {
		return nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"email": email,
		"count": len(recipients),
	}).Info("수신자를 추가하였습니다")

	return recipients, nil
}

// Delete 수신자를 삭제하고 전체 목록을 반환합니다. 없는 주소를 삭제해도 에러가 아닙니다.
func (s *Store) Delete(ctx context.Context, email string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipients, err := s.read()
	if err != nil {
		return nil, err
	}

	remaining := lo.Without(recipients, email)
	if len(remaining) == len(recipients) {
		return recipients, nil
	}

	if err := s.write(remaining); err != nil {
		return nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"email": email,
		"count": len(remaining),
	}).Info("수신자를 삭제하였습니다")

	return remaining, nil
}

// read 파일 전체를 읽습니다. 중복 항목은 처음 나온 순서를 유지하며 제거됩니다.
func (s *Store) read() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("수신자 목록 파일('%s')을 읽을 수 없습니다", s.path))
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("수신자 목록 파일('%s')의 형식이 올바르지 않습니다", s.path))
	}

	if doc.Recipients == nil {
		return []string{}, nil
	}

	return lo.Uniq(doc.Recipients), nil
}

// write 임시 파일에 전체 문서를 쓴 뒤 rename 으로 교체합니다.
func (s *Store) write(recipients []string) error {
	data, err := json.MarshalIndent(document{Recipients: recipients}, "", "  ")
	if err != nil {
		return apperrors.Wrap(err, apperrors.Internal, "수신자 목록을 JSON 으로 변환하는데 실패했습니다")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("수신자 목록 디렉토리('%s')를 만들 수 없습니다", dir))
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return apperrors.Wrap(err, apperrors.System, "수신자 목록 임시 파일을 만들 수 없습니다")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return apperrors.Wrap(err, apperrors.System, "수신자 목록 임시 파일 쓰기에 실패했습니다")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return apperrors.Wrap(err, apperrors.System, "수신자 목록 임시 파일 동기화에 실패했습니다")
	}
	if err := tmp.Close(); err != nil {
		return apperrors.Wrap(err, apperrors.System, "수신자 목록 임시 파일을 닫는데 실패했습니다")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("수신자 목록 파일('%s') 교체에 실패했습니다", s.path))
	}

	return nil
}
