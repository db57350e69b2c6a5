package models

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

// DateLayout is the canonical wire and storage format for report dates.
const DateLayout = "2006-01-02"

// DailyReport is the derived snapshot of one user day. There is at most one
// row per (user, report date); regeneration replaces it. Rebuilding from the
// same entry set and generation time yields a byte-identical report.
type DailyReport struct {
	ID          uint             `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time        `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time        `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint             `gorm:"uniqueIndex:idx_daily_user_date" json:"user_id" example:"1"`
	ReportDate  string           `gorm:"uniqueIndex:idx_daily_user_date" json:"report_date" example:"2023-01-01"`
	Timezone    string           `json:"timezone" example:"Asia/Ho_Chi_Minh"`
	Totals      NutrientVector   `gorm:"type:jsonb" json:"totals" swaggertype:"object,number"`
	Comparison  ComparisonResult `gorm:"type:jsonb" json:"comparison" swaggertype:"object"`
	EntryIDs    UintList         `gorm:"type:jsonb" json:"entry_ids" swaggertype:"array,integer"`
	NoData      bool             `json:"no_data" example:"false"`
	Score       int              `json:"score" example:"86"`
	GeneratedAt time.Time        `json:"generated_at" example:"2023-01-01T21:00:00Z"`
}

// WeeklyDay is one day slot of a weekly report, in Monday-first order.
// Days without a daily report are flagged NoData and excluded from the
// score average.
type WeeklyDay struct {
	Date     string  `json:"date"`
	Score    int     `json:"score"`
	Calories float64 `json:"calories"`
	NoData   bool    `json:"no_data"`
}

// WeeklyDayList is the seven day slots stored as JSONB.
type WeeklyDayList []WeeklyDay

func (l WeeklyDayList) Value() (driver.Value, error) {
	return jsonValue(l)
}

func (l *WeeklyDayList) Scan(value interface{}) error {
	return scanJSON(value, l, "WeeklyDayList")
}

// WeeklyReport rolls seven daily reports up into one row per
// (user, week start date). Weeks start on Monday in the user's timezone.
type WeeklyReport struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID        uint           `gorm:"uniqueIndex:idx_weekly_user_week" json:"user_id" example:"1"`
	WeekStartDate string         `gorm:"uniqueIndex:idx_weekly_user_week" json:"week_start_date" example:"2023-01-02"`
	Timezone      string         `json:"timezone" example:"Asia/Ho_Chi_Minh"`
	Days          WeeklyDayList  `gorm:"type:jsonb" json:"days" swaggertype:"array,object"`
	Totals        NutrientVector `gorm:"type:jsonb" json:"totals" swaggertype:"object,number"`
	DailyAverages NutrientVector `gorm:"type:jsonb" json:"daily_averages" swaggertype:"object,number"`
	AverageScore  float64        `json:"average_score" example:"78.3"`
	BestDay       string         `json:"best_day" example:"2023-01-04"`
	WorstDay      string         `json:"worst_day" example:"2023-01-06"`
	DaysWithData  int            `json:"days_with_data" example:"5"`
	IsPartial     bool           `json:"is_partial" example:"true"`
	GeneratedAt   time.Time      `json:"generated_at" example:"2023-01-08T08:00:00Z"`
}
