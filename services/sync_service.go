package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/store"
)

// SyncDomain senkronize edilen bir içerik alanı.
type SyncDomain string

const (
	DomainCore         SyncDomain = "core"
	DomainSchedule     SyncDomain = "schedule"
	DomainCommittee    SyncDomain = "committee"
	DomainVendors      SyncDomain = "vendors"
	DomainCoordinators SyncDomain = "coordinators"
	DomainMoodboard    SyncDomain = "moodboard"
	DomainEventSummary SyncDomain = "eventSummary"
)

// SyncDomains tüm alanların sabit listesi.
var SyncDomains = []SyncDomain{
	DomainCore, DomainSchedule, DomainCommittee, DomainVendors,
	DomainCoordinators, DomainMoodboard, DomainEventSummary,
}

// domainTables alan -> uzak tablo eşlemesi.
var domainTables = map[SyncDomain]string{
	DomainCore:         "admin_core",
	DomainSchedule:     "schedule",
	DomainCommittee:    "committee",
	DomainVendors:      "vendors",
	DomainCoordinators: "coordinators",
	DomainMoodboard:    "moodboard",
	DomainEventSummary: "event_summary",
}

// SyncState alan bazlı durum makinesinin durumları:
// Idle -> Loading -> Synced, Loading'den Error'a geçiş mümkün.
type SyncState string

const (
	SyncIdle    SyncState = "idle"
	SyncLoading SyncState = "loading"
	SyncSynced  SyncState = "synced"
	SyncError   SyncState = "error"
)

// DomainStatus bir alanın o anki senkronizasyon durumu. Error yalnızca
// gösterim içindir; yerel dilim hatalı çekimde asla değiştirilmez.
type DomainStatus struct {
	State        SyncState `json:"state"`
	Error        string    `json:"error,omitempty"`
	LastSyncedAt time.Time `json:"lastSyncedAt,omitempty"`
}

// SyncService uzak tabloları yerel dilimlere aynalayan köprü. Alanlar
// birbirinden bağımsız ve eşzamanlı senkronize olur; alanlar arası
// transaction yoktur ve kısmi senkron (bazıları güncel, bazıları yükleniyor
// veya hatalı) normal bir geçici durumdur.
type SyncService struct {
	store    *store.WeddingStore
	client   IRemoteClient
	notifier IChangeNotifier

	mu       sync.RWMutex
	statuses map[SyncDomain]DomainStatus

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncService yeni bir SyncService örneği oluşturur. notifier nil
// olabilir; bu durumda yalnızca açılış çekimi yapılır, canlı bildirim
// aboneliği kurulmaz.
func NewSyncService(w *store.WeddingStore, client IRemoteClient, notifier IChangeNotifier) *SyncService {
	statuses := make(map[SyncDomain]DomainStatus, len(SyncDomains))
	for _, d := range SyncDomains {
		statuses[d] = DomainStatus{State: SyncIdle}
	}
	return &SyncService{
		store:    w,
		client:   client,
		notifier: notifier,
		statuses: statuses,
	}
}

// Start her alan için açılış çekimini ve değişiklik aboneliğini başlatır.
// Verilen context servis ömrünü belirler; Stop çağrısı ile iptal edilir.
func (s *SyncService) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel

	for _, domain := range SyncDomains {
		domain := domain

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.refresh(ctx, domain)
		}()

		if s.notifier == nil {
			continue
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.listen(ctx, domain)
		}()
	}
}

// Stop tüm abonelikleri serbest bırakır ve devam eden çekimlerin bitmesini
// bekler. İptalden sonra tamamlanan çekim sonuçları dilimlere yazılmaz.
func (s *SyncService) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// Status tek bir alanın durumunu döndürür.
func (s *SyncService) Status(domain SyncDomain) DomainStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statuses[domain]
}

// Statuses tüm alanların durum görüntüsünü döndürür.
func (s *SyncService) Statuses() map[SyncDomain]DomainStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[SyncDomain]DomainStatus, len(s.statuses))
	for d, st := range s.statuses {
		snapshot[d] = st
	}
	return snapshot
}

// Refresh alanı elle Loading durumuna sokup yeniden çeker. Panel "şimdi
// senkronize et" düğmesi ve bildirim dinleyicisi aynı yolu kullanır.
func (s *SyncService) Refresh(ctx context.Context, domain SyncDomain) {
	s.refresh(ctx, domain)
}

// listen tablo bildirimlerini dinler; her sinyal yalnızca o alanı Loading
// durumuna sokar (global reload yapılmaz).
func (s *SyncService) listen(ctx context.Context, domain SyncDomain) {
	table := domainTables[domain]
	ch, err := s.notifier.Subscribe(ctx, table)
	if err != nil {
		configslog.Log.Warn("Değişiklik aboneliği kurulamadı, alan yalnızca açılışta çekilecek",
			zap.String("domain", string(domain)), zap.Error(err))
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			s.refresh(ctx, domain)
		}
	}
}

// refresh tek bir alanı uzaktan çekip dilimin üzerine yazar (tam
// değiştirme, dilim güncelleme sözleşmesiyle aynı). Hata durumunda dilim
// olduğu gibi bırakılır: bayat-ama-mevcut yerel veri, silinmiş veriye
// tercih edilir.
func (s *SyncService) refresh(ctx context.Context, domain SyncDomain) {
	s.setStatus(domain, DomainStatus{State: SyncLoading})

	err := s.fetchAndApply(ctx, domain)

	// İptalden sonra gelen sonuçlar (başarılı veya değil) yok sayılır;
	// sökülmüş bir dilime yazılmaz.
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		configslog.Log.Error("Alan senkronizasyonu başarısız, yerel veri korunuyor",
			zap.String("domain", string(domain)), zap.Error(err))
		s.setStatus(domain, DomainStatus{State: SyncError, Error: err.Error()})
		return
	}
	s.setStatus(domain, DomainStatus{State: SyncSynced, LastSyncedAt: time.Now()})
}

func (s *SyncService) fetchAndApply(ctx context.Context, domain SyncDomain) error {
	table := domainTables[domain]

	switch domain {
	case DomainCore:
		var core models.CoreContent
		if err := s.client.FetchSingle(ctx, table, &core); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return s.store.Core.Update(ctx, core)
	case DomainSchedule:
		var schedule []models.Event
		if err := s.client.FetchList(ctx, table, &schedule); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return s.store.Schedule.Update(ctx, schedule)
	case DomainCommittee:
		var committee []models.CommitteeMember
		if err := s.client.FetchList(ctx, table, &committee); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return s.store.Committee.Update(ctx, committee)
	case DomainVendors:
		var vendors []models.Vendor
		if err := s.client.FetchList(ctx, table, &vendors); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return s.store.Vendors.Update(ctx, vendors)
	case DomainCoordinators:
		var coordinators []models.Coordinator
		if err := s.client.FetchList(ctx, table, &coordinators); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return s.store.Coordinators.Update(ctx, coordinators)
	case DomainMoodboard:
		var moodboard []models.MoodboardItem
		if err := s.client.FetchList(ctx, table, &moodboard); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return s.store.Moodboard.Update(ctx, moodboard)
	case DomainEventSummary:
		var summary models.EventSummary
		if err := s.client.FetchSingle(ctx, table, &summary); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return s.store.EventSummary.Update(ctx, summary)
	}
	return nil
}

func (s *SyncService) setStatus(domain SyncDomain, status DomainStatus) {
	s.mu.Lock()
	s.statuses[domain] = status
	s.mu.Unlock()
}
