package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	bannerKey      = "content:banner"
	adsKey         = "content:ads"
	adsSeqKey      = "content:ads:seq"
	scheduleKey    = "content:schedule"
	scheduleSeqKey = "content:schedule:seq"
)

// RedisStore persists site content in Redis: the banner as a JSON value,
// ads and schedule rows as hashes keyed by an INCR-allocated ID.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStoreFromEnv connects using REDIS_ADDR, REDIS_PASS and REDIS_DB
// and verifies the connection with a ping.
func NewRedisStoreFromEnv(ctx context.Context) (*RedisStore, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, errors.New("REDIS_ADDR not set")
	}

	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			db = parsed
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Banner(ctx context.Context) (Banner, error) {
	payload, err := s.client.Get(ctx, bannerKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return DefaultBanner(), nil
		}
		return Banner{}, err
	}

	var b Banner
	if err := json.Unmarshal(payload, &b); err != nil {
		return Banner{}, err
	}
	return b, nil
}

func (s *RedisStore) UpdateBanner(ctx context.Context, b Banner) error {
	payload, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, bannerKey, payload, 0).Err()
}

func (s *RedisStore) Ads(ctx context.Context) ([]Ad, error) {
	rows, err := s.client.HGetAll(ctx, adsKey).Result()
	if err != nil {
		return nil, err
	}

	ads := make([]Ad, 0, len(rows))
	for _, raw := range rows {
		var ad Ad
		if err := json.Unmarshal([]byte(raw), &ad); err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	sort.Slice(ads, func(i, j int) bool { return ads[i].ID < ads[j].ID })
	return ads, nil
}

func (s *RedisStore) AddAd(ctx context.Context, ad Ad) (Ad, error) {
	id, err := s.client.Incr(ctx, adsSeqKey).Result()
	if err != nil {
		return Ad{}, err
	}
	ad.ID = id
	ad.CreatedAt = time.Now()

	if err := s.setHashRow(ctx, adsKey, ad.ID, ad); err != nil {
		return Ad{}, err
	}
	return ad, nil
}

func (s *RedisStore) UpdateAd(ctx context.Context, ad Ad) error {
	return s.updateHashRow(ctx, adsKey, ad.ID, ad)
}

func (s *RedisStore) DeleteAd(ctx context.Context, id int64) error {
	return s.deleteHashRow(ctx, adsKey, id)
}

func (s *RedisStore) Schedule(ctx context.Context) ([]ScheduleItem, error) {
	rows, err := s.client.HGetAll(ctx, scheduleKey).Result()
	if err != nil {
		return nil, err
	}

	items := make([]ScheduleItem, 0, len(rows))
	for _, raw := range rows {
		var item ScheduleItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *RedisStore) AddScheduleItem(ctx context.Context, item ScheduleItem) (ScheduleItem, error) {
	id, err := s.client.Incr(ctx, scheduleSeqKey).Result()
	if err != nil {
		return ScheduleItem{}, err
	}
	item.ID = id
	item.CreatedAt = time.Now()

	if err := s.setHashRow(ctx, scheduleKey, item.ID, item); err != nil {
		return ScheduleItem{}, err
	}
	return item, nil
}

func (s *RedisStore) UpdateScheduleItem(ctx context.Context, item ScheduleItem) error {
	return s.updateHashRow(ctx, scheduleKey, item.ID, item)
}

func (s *RedisStore) DeleteScheduleItem(ctx context.Context, id int64) error {
	return s.deleteHashRow(ctx, scheduleKey, id)
}

func (s *RedisStore) setHashRow(ctx context.Context, key string, id int64, row any) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, key, strconv.FormatInt(id, 10), payload).Err()
}

func (s *RedisStore) updateHashRow(ctx context.Context, key string, id int64, row any) error {
	field := strconv.FormatInt(id, 10)
	exists, err := s.client.HExists(ctx, key, field).Result()
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	payload, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, key, field, payload).Err()
}

func (s *RedisStore) deleteHashRow(ctx context.Context, key string, id int64) error {
	removed, err := s.client.HDel(ctx, key, strconv.FormatInt(id, 10)).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}
