package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/repositories"
	"undangan.link/store"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	m.Run()
}

func newTestStore(t *testing.T) *store.WeddingStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SliceRecord{}))
	return store.NewWeddingStore(repositories.NewSliceRepository(db))
}

// fakeNotifier testlerde elle tetiklenen bildirim kaynağı.
type fakeNotifier struct {
	channels map[string]chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{channels: make(map[string]chan struct{})}
}

func (f *fakeNotifier) Subscribe(ctx context.Context, table string) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)
	f.channels[table] = ch
	return ch, nil
}

func (f *fakeNotifier) notify(table string) {
	if ch, ok := f.channels[table]; ok {
		ch <- struct{}{}
	}
}

// remoteFixture tablo başına satır listesi sunan sahte uzak depo.
func remoteFixture(t *testing.T, rows map[string]any, failTables map[string]bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		table := r.URL.Path[len("/rest/v1/"):]
		if failTables[table] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		data, ok := rows[table]
		if !ok {
			data = []any{}
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(data))
	}))
}

func waitForState(t *testing.T, s *SyncService, domain SyncDomain, want SyncState) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if s.Status(domain).State == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("%s alanı %s durumuna ulaşmadı (son durum: %s)", domain, want, s.Status(domain).State)
}

func TestSyncOverwritesSlicesOnSuccess(t *testing.T) {
	w := newTestStore(t)

	remoteCommittee := []models.CommitteeMember{{ID: "r1", Name: "Uzak Üye", Role: "Ketua"}}
	remoteCore := models.CoreContent{Date: "5 Mei 2025", Venue: models.Venue{Name: "Hotel X"}}
	srv := remoteFixture(t, map[string]any{
		"committee":  remoteCommittee,
		"admin_core": []models.CoreContent{remoteCore},
	}, nil)
	defer srv.Close()

	s := NewSyncService(w, NewRemoteClient(srv.URL, "test-key"), nil)
	s.Start(context.Background())
	defer s.Stop()

	waitForState(t, s, DomainCommittee, SyncSynced)
	waitForState(t, s, DomainCore, SyncSynced)

	assert.Equal(t, remoteCommittee, w.Committee.Get())
	assert.Equal(t, "5 Mei 2025", w.Core.Get().Date)
	assert.Equal(t, "Hotel X", w.Core.Get().Venue.Name)
	assert.False(t, s.Status(DomainCommittee).LastSyncedAt.IsZero())
}

// Hatalı çekim dilimi değiştirmemelidir: bayat yerel veri korunur.
func TestSyncErrorLeavesSliceUntouched(t *testing.T) {
	w := newTestStore(t)
	before := w.Vendors.Get()

	srv := remoteFixture(t, nil, map[string]bool{"vendors": true})
	defer srv.Close()

	s := NewSyncService(w, NewRemoteClient(srv.URL, ""), nil)
	s.Start(context.Background())
	defer s.Stop()

	waitForState(t, s, DomainVendors, SyncError)

	assert.Equal(t, before, w.Vendors.Get())
	assert.NotEmpty(t, s.Status(DomainVendors).Error)
}

// Alanlar bağımsız senkronize olur: birinin hatası diğerini etkilemez.
func TestPartialSyncIsNormal(t *testing.T) {
	w := newTestStore(t)

	remoteCoordinators := []models.Coordinator{{ID: "k1", Name: "Uzak Koordinator", Role: "Utama"}}
	srv := remoteFixture(t, map[string]any{"coordinators": remoteCoordinators},
		map[string]bool{"moodboard": true})
	defer srv.Close()

	s := NewSyncService(w, NewRemoteClient(srv.URL, ""), nil)
	s.Start(context.Background())
	defer s.Stop()

	waitForState(t, s, DomainCoordinators, SyncSynced)
	waitForState(t, s, DomainMoodboard, SyncError)

	assert.Equal(t, remoteCoordinators, w.Coordinators.Get())
}

// Bildirim yalnızca ilgili alanı yeniden çektirir.
func TestNotificationTriggersSingleDomainRefetch(t *testing.T) {
	w := newTestStore(t)

	var scheduleHits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		table := r.URL.Path[len("/rest/v1/"):]
		if table == "schedule" {
			scheduleHits.Add(1)
			_ = json.NewEncoder(rw).Encode([]models.Event{{ID: "s1", Title: "Uzak Etkinlik"}})
			return
		}
		_ = json.NewEncoder(rw).Encode([]any{})
	}))
	defer srv.Close()

	notifier := newFakeNotifier()
	s := NewSyncService(w, NewRemoteClient(srv.URL, ""), notifier)
	s.Start(context.Background())
	defer s.Stop()

	waitForState(t, s, DomainSchedule, SyncSynced)
	first := scheduleHits.Load()

	notifier.notify("schedule")
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) && scheduleHits.Load() == first {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Greater(t, scheduleHits.Load(), first)
	assert.Equal(t, "Uzak Etkinlik", w.Schedule.Get()[0].Title)
}

// Stop'tan sonra tamamlanan çekimler dilimlere yazılmaz.
func TestStopDiscardsLateCompletions(t *testing.T) {
	w := newTestStore(t)
	before := w.Committee.Get()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		<-release
		_ = json.NewEncoder(rw).Encode([]models.CommitteeMember{{ID: "gec", Name: "Geç Gelen"}})
	}))
	defer srv.Close()

	s := NewSyncService(w, NewRemoteClient(srv.URL, ""), nil)
	s.Start(context.Background())

	// Önce iptal et, sonra uzak yanıtların gelmesine izin ver: geç gelen
	// tamamlanmalar dilime uygulanmamalı.
	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)
	<-stopped

	assert.Equal(t, before, w.Committee.Get())
}
