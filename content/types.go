package content

import "time"

// Banner is the singleton hero/advertising configuration for the site.
type Banner struct {
	Text                   string `json:"text"`
	Image                  string `json:"image"`
	SecondaryBannerImage   string `json:"secondary_banner_image,omitempty"`
	SecondaryBannerVisible bool   `json:"secondary_banner_visible"`
	RadioURL               string `json:"radio_url"`
}

// Ad is one advertiser entry in the rotating carousel.
type Ad struct {
	ID        int64     `json:"id"`
	Company   string    `json:"company"`
	Image     string    `json:"image"`
	URL       string    `json:"url"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ScheduleItem is one row of the weekly programming grid.
type ScheduleItem struct {
	ID        int64     `json:"id"`
	Day       string    `json:"day"`
	Time      string    `json:"time"`
	Program   string    `json:"program"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultBanner is served until an admin saves one.
func DefaultBanner() Banner {
	return Banner{
		Text:     "Bienvenido a Radio Canal Beagle",
		Image:    "https://picsum.photos/seed/radiobeagle/1200/400",
		RadioURL: "https://stm16.voxhd.com.br:10872/stream",
	}
}
