package content

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an ad or schedule item does not exist.
var ErrNotFound = errors.New("content: not found")

// Store is the persistence port for the admin-managed site content.
type Store interface {
	Banner(ctx context.Context) (Banner, error)
	UpdateBanner(ctx context.Context, b Banner) error

	Ads(ctx context.Context) ([]Ad, error)
	AddAd(ctx context.Context, ad Ad) (Ad, error)
	UpdateAd(ctx context.Context, ad Ad) error
	DeleteAd(ctx context.Context, id int64) error

	Schedule(ctx context.Context) ([]ScheduleItem, error)
	AddScheduleItem(ctx context.Context, item ScheduleItem) (ScheduleItem, error)
	UpdateScheduleItem(ctx context.Context, item ScheduleItem) error
	DeleteScheduleItem(ctx context.Context, id int64) error
}
