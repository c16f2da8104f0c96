package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/fazetdev/zimam-delivery/internal/models"
	"github.com/fazetdev/zimam-delivery/internal/query"
	"github.com/fazetdev/zimam-delivery/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	// FilterAll is the platform filter wildcard.
	FilterAll = "all"
)

// Stat is a count plus earnings aggregate for one platform or area.
type Stat struct {
	Count    int             `json:"count"`
	Earnings decimal.Decimal `json:"earnings"`
}

// Logbook is the delivery ledger: it owns the delivery collection and
// computes derived views over it on demand. The mutex exists because the HTTP
// layer serves concurrently; the engine itself stays single-writer.
type Logbook struct {
	mu    sync.RWMutex
	store *store.Store[models.Delivery]
	now   func() time.Time
}

// NewLogbook wraps a restored delivery store.
func NewLogbook(s *store.Store[models.Delivery]) *Logbook {
	return &Logbook{store: s, now: time.Now}
}

// Add records a delivery completed now: id, time, date and status are
// assigned here, never by the caller.
func (l *Logbook) Add(customer string, platform models.Platform, fee decimal.Decimal, area, notes string) (models.Delivery, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	d := models.Delivery{
		ID:       uuid.NewString(),
		Customer: customer,
		Platform: platform,
		Fee:      fee,
		Area:     area,
		Notes:    notes,
		Time:     now.Format(timeLayout),
		Date:     now.Format(dateLayout),
		Status:   models.StatusCompleted,
	}
	if err := l.store.Add(d); err != nil {
		return models.Delivery{}, err
	}
	return d, nil
}

// DeliveryPatch is a partial update; nil fields are left untouched. The id is
// immutable.
type DeliveryPatch struct {
	Customer *string                `json:"customer"`
	Platform *models.Platform       `json:"platform"`
	Fee      *decimal.Decimal       `json:"fee"`
	Area     *string                `json:"area"`
	Notes    *string                `json:"notes"`
	Time     *string                `json:"time"`
	Date     *string                `json:"date"`
	Status   *models.DeliveryStatus `json:"status"`
}

// Update shallow-merges the patch into the delivery with the given id; a
// silent no-op when the id is unknown.
func (l *Logbook) Update(id string, patch DeliveryPatch) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.store.Update(id, func(d *models.Delivery) {
		if patch.Customer != nil {
			d.Customer = *patch.Customer
		}
		if patch.Platform != nil {
			d.Platform = *patch.Platform
		}
		if patch.Fee != nil {
			d.Fee = *patch.Fee
		}
		if patch.Area != nil {
			d.Area = *patch.Area
		}
		if patch.Notes != nil {
			d.Notes = *patch.Notes
		}
		if patch.Time != nil {
			d.Time = *patch.Time
		}
		if patch.Date != nil {
			d.Date = *patch.Date
		}
		if patch.Status != nil {
			d.Status = *patch.Status
		}
	})
}

// Delete removes one delivery; no-op when absent.
func (l *Logbook) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Delete(id)
}

// Clear empties the logbook.
func (l *Logbook) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Clear()
}

// Import prepends externally supplied deliveries, e.g. from a backup file,
// without regenerating their ids.
func (l *Logbook) Import(deliveries []models.Delivery) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Import(deliveries)
}

// List returns all deliveries, newest-first.
func (l *Logbook) List() []models.Delivery {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.List()
}

// TodayDeliveries returns today's completed deliveries in stored order.
func (l *Logbook) TodayDeliveries() []models.Delivery {
	l.mu.RLock()
	defer l.mu.RUnlock()

	today := l.now().Format(dateLayout)
	out := make([]models.Delivery, 0)
	for _, d := range l.store.List() {
		if d.Date == today && d.Status == models.StatusCompleted {
			out = append(out, d)
		}
	}
	return out
}

// TotalEarnings sums fees over all completed deliveries, regardless of date.
func (l *Logbook) TotalEarnings() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := decimal.Zero
	for _, d := range l.store.List() {
		if d.Status == models.StatusCompleted {
			total = total.Add(d.Fee)
		}
	}
	return total
}

// TodayEarnings sums fees over today's completed deliveries.
func (l *Logbook) TodayEarnings() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	today := l.now().Format(dateLayout)
	total := decimal.Zero
	for _, d := range l.store.List() {
		if d.Date == today && d.Status == models.StatusCompleted {
			total = total.Add(d.Fee)
		}
	}
	return total
}

// PlatformStats aggregates completed deliveries per platform. Every platform
// key is present even with zero deliveries.
func (l *Logbook) PlatformStats() map[models.Platform]Stat {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := make(map[models.Platform]Stat, len(models.Platforms()))
	for _, p := range models.Platforms() {
		stats[p] = Stat{Earnings: decimal.Zero}
	}
	for _, d := range l.store.List() {
		if d.Status != models.StatusCompleted || !d.Platform.Valid() {
			continue
		}
		st := stats[d.Platform]
		st.Count++
		st.Earnings = st.Earnings.Add(d.Fee)
		stats[d.Platform] = st
	}
	return stats
}

// AreaStats aggregates completed deliveries per area. Keys appear lazily as
// areas are encountered.
func (l *Logbook) AreaStats() map[string]Stat {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := make(map[string]Stat)
	for _, d := range l.store.List() {
		if d.Status != models.StatusCompleted {
			continue
		}
		st, ok := stats[d.Area]
		if !ok {
			st = Stat{Earnings: decimal.Zero}
		}
		st.Count++
		st.Earnings = st.Earnings.Add(d.Fee)
		stats[d.Area] = st
	}
	return stats
}

// Search matches q case-insensitively against customer, area and notes (any
// field matching is a hit, empty q matches all), optionally narrowed by exact
// platform ("" or "all" means unfiltered) and exact date. Results are sorted
// most recent first by date and time; ties keep stored order.
func (l *Logbook) Search(q, platform, date string) []models.Delivery {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Delivery, 0)
	for _, d := range l.store.List() {
		if !query.MatchText(q, d.Customer, d.Area, d.Notes) {
			continue
		}
		if !query.MatchValue(string(d.Platform), platform, FilterAll) {
			continue
		}
		if !query.MatchDate(d.Date, date) {
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return query.SortKey(out[i].Date, out[i].Time) > query.SortKey(out[j].Date, out[j].Time)
	})
	return out
}
