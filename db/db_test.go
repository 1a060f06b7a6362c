package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbenaiss/whatsapp-helpdesk/dashboard"
	"github.com/mbenaiss/whatsapp-helpdesk/login"
	"github.com/mbenaiss/whatsapp-helpdesk/models"
	"github.com/mbenaiss/whatsapp-helpdesk/session"
)

func newTestDB(t *testing.T) DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	d, err := NewDB(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	d := newTestDB(t)

	st := dashboard.New("es")
	require.NoError(t, st.Login(login.Form{Name: "Carol", Phone: "+15550000", Role: "supervisor"}))
	st.Add(models.KindInstance, "Backup", "+15559999")
	st.SelectChat("1")
	require.NoError(t, d.Save(ctx, "abc", st))

	loaded, err := d.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "es", loaded.Language)
	assert.Equal(t, models.RoleSupervisor, loaded.User.Role)
	assert.Len(t, loaded.Instances, 2)
	assert.Equal(t, "1", loaded.SelectedChatID)
	assert.Equal(t, st.Schedule, loaded.Schedule)

	n, err := d.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoadMissing(t *testing.T) {
	d := newTestDB(t)
	_, err := d.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestDeleteAndExpire(t *testing.T) {
	ctx := context.Background()
	d := newTestDB(t)

	require.NoError(t, d.Save(ctx, "a", dashboard.New("en")))
	require.NoError(t, d.Save(ctx, "b", dashboard.New("en")))
	require.NoError(t, d.Delete(ctx, "a"))

	_, err := d.Load(ctx, "a")
	assert.ErrorIs(t, err, session.ErrNotFound)

	removed, err := d.Expire(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	n, err := d.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestManagerWithSQLiteStore(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(newTestDB(t), "en", nil)
	id := m.NewID()

	_, err := m.Update(ctx, id, func(st *dashboard.State) error {
		st.Delete(models.KindAttendant, "2")
		return nil
	})
	require.NoError(t, err)

	st, err := m.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, st.Attendants, 1)
}
