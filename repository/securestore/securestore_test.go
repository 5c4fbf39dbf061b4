package securestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/muhammadheryan/clinic-companion/repository/securestore"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s securestore.Store) {
	t.Helper()
	ctx := context.Background()

	v, err := s.Get(ctx, "appointmentix.clinicName")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Set(ctx, "appointmentix.clinicName", "Clinic Berlin"))
	v, err = s.Get(ctx, "appointmentix.clinicName")
	require.NoError(t, err)
	assert.Equal(t, "Clinic Berlin", v)

	require.NoError(t, securestore.WriteString(ctx, s, "appointmentix.clinicName", ""))
	assert.Empty(t, securestore.ReadString(ctx, s, "appointmentix.clinicName"))

	require.NoError(t, s.Delete(ctx, "never-set"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, securestore.NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := securestore.NewRedisStore(client, "kiosk-1:")
	exerciseStore(t, s)

	require.NoError(t, s.Set(context.Background(), "appointmentix.patientPhone", "+49151"))
	got, err := mr.Get("kiosk-1:appointmentix.patientPhone")
	require.NoError(t, err)
	assert.Equal(t, "+49151", got)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.store")

	s, err := securestore.NewFileStore(path, "correct horse")
	require.NoError(t, err)
	exerciseStore(t, s)
	require.NoError(t, s.Set(context.Background(), "appointmentix.settingsEmail", "anna@example.com"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "anna@example.com")

	reopened, err := securestore.NewFileStore(path, "correct horse")
	require.NoError(t, err)
	v, err := reopened.Get(context.Background(), "appointmentix.settingsEmail")
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", v)

	_, err = securestore.NewFileStore(path, "wrong secret")
	assert.Error(t, err)
}

func TestFileStore_EmptySecret(t *testing.T) {
	_, err := securestore.NewFileStore(filepath.Join(t.TempDir(), "x"), "")
	assert.Error(t, err)
}

type failingStore struct{ securestore.Store }

func (failingStore) Get(context.Context, string) (string, error) {
	return "", os.ErrPermission
}

func TestReadString_DegradesToEmpty(t *testing.T) {
	assert.Equal(t, "", securestore.ReadString(context.Background(), failingStore{}, "k"))
}
