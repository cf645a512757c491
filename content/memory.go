package content

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps content in process memory. It backs tests and local
// runs without Redis; nothing survives a restart.
type MemoryStore struct {
	mu          sync.RWMutex
	banner      *Banner
	ads         map[int64]Ad
	schedule    map[int64]ScheduleItem
	adSeq       int64
	scheduleSeq int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ads:      make(map[int64]Ad),
		schedule: make(map[int64]ScheduleItem),
	}
}

func (s *MemoryStore) Banner(ctx context.Context) (Banner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.banner == nil {
		return DefaultBanner(), nil
	}
	return *s.banner, nil
}

func (s *MemoryStore) UpdateBanner(ctx context.Context, b Banner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banner = &b
	return nil
}

func (s *MemoryStore) Ads(ctx context.Context) ([]Ad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ads := make([]Ad, 0, len(s.ads))
	for _, ad := range s.ads {
		ads = append(ads, ad)
	}
	sort.Slice(ads, func(i, j int) bool { return ads[i].ID < ads[j].ID })
	return ads, nil
}

func (s *MemoryStore) AddAd(ctx context.Context, ad Ad) (Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adSeq++
	ad.ID = s.adSeq
	ad.CreatedAt = time.Now()
	s.ads[ad.ID] = ad
	return ad, nil
}

func (s *MemoryStore) UpdateAd(ctx context.Context, ad Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ads[ad.ID]; !ok {
		return ErrNotFound
	}
	s.ads[ad.ID] = ad
	return nil
}

func (s *MemoryStore) DeleteAd(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ads[id]; !ok {
		return ErrNotFound
	}
	delete(s.ads, id)
	return nil
}

func (s *MemoryStore) Schedule(ctx context.Context) ([]ScheduleItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ScheduleItem, 0, len(s.schedule))
	for _, item := range s.schedule {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *MemoryStore) AddScheduleItem(ctx context.Context, item ScheduleItem) (ScheduleItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduleSeq++
	item.ID = s.scheduleSeq
	item.CreatedAt = time.Now()
	s.schedule[item.ID] = item
	return item, nil
}

func (s *MemoryStore) UpdateScheduleItem(ctx context.Context, item ScheduleItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schedule[item.ID]; !ok {
		return ErrNotFound
	}
	s.schedule[item.ID] = item
	return nil
}

func (s *MemoryStore) DeleteScheduleItem(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schedule[id]; !ok {
		return ErrNotFound
	}
	delete(s.schedule, id)
	return nil
}
