package recipient

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/discount-bot/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "data", "emails.json"))
}

func readDocument(t *testing.T, path string) document {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestStore_List(t *testing.T) {
	t.Parallel()

	t.Run("파일 없음은 빈 목록", func(t *testing.T) {
		t.Parallel()

		s := newTestStore(t)
		recipients, err := s.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, recipients)
		assert.Empty(t, recipients)
	})

	t.Run("중복 항목은 첫 순서를 유지하며 제거", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "emails.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"recipients":["b@x.com","a@x.com","b@x.com"]}`), 0o644))

		recipients, err := NewStore(path).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"b@x.com", "a@x.com"}, recipients)
	})

	t.Run("실패: 형식 오류", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "emails.json")
		require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))

		_, err := NewStore(path).List(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
	})

	t.Run("실패: 디렉토리를 파일로 사용", func(t *testing.T) {
		t.Parallel()

		_, err := NewStore(t.TempDir()).List(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
	})
}

func TestStore_Add(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	recipients, err := s.Add(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com"}, recipients)

	recipients, err = s.Add(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, recipients)

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	modTime := info.ModTime()

	// 같은 주소를 다시 추가해도 한 번만 저장되고 파일은 다시 쓰지 않습니다.
	time.Sleep(10 * time.Millisecond)
	recipients, err = s.Add(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, recipients)

	info, err = os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, modTime, info.ModTime())

	assert.Equal(t, []string{"a@x.com", "b@x.com"}, readDocument(t, s.Path()).Recipients)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "a@x.com")
	require.NoError(t, err)
	_, err = s.Add(ctx, "b@x.com")
	require.NoError(t, err)

	recipients, err := s.Delete(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"b@x.com"}, recipients)
	assert.Equal(t, []string{"b@x.com"}, readDocument(t, s.Path()).Recipients)

	t.Run("없는 주소 삭제는 에러가 아님", func(t *testing.T) {
		recipients, err := s.Delete(ctx, "missing@x.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"b@x.com"}, recipients)
	})

	t.Run("파일이 없을 때 삭제", func(t *testing.T) {
		recipients, err := newTestStore(t).Delete(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Empty(t, recipients)
	})
}

func TestStore_ConcurrentAdd(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Add(ctx, fmt.Sprintf("user%d@x.com", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	recipients, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, recipients, n)
}

func TestStore_NoTempFilesLeft(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "emails.json"))
	_, err := s.Add(context.Background(), "a@x.com")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "emails.json", entries[0].Name())
}
