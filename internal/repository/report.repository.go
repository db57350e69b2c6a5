package repository

import (
	"uqifeed/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReportRepository interface {
	UpsertDaily(report *models.DailyReport) error
	FindDaily(userID uint, reportDate string) (*models.DailyReport, error)
	FindDailyRange(userID uint, startDate, endDate string) ([]models.DailyReport, error)
	UpsertWeekly(report *models.WeeklyReport) error
	FindWeekly(userID uint, weekStartDate string) (*models.WeeklyReport, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// UpsertDaily replaces any cached report for the (user, date) key; report
// regeneration must never append a second row.
func (r *reportRepository) UpsertDaily(report *models.DailyReport) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "report_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"timezone", "totals", "comparison", "entry_ids", "no_data", "score", "generated_at", "updated_at",
		}),
	}).Create(report).Error
}

func (r *reportRepository) FindDaily(userID uint, reportDate string) (*models.DailyReport, error) {
	var report models.DailyReport
	err := r.db.Where("user_id = ? AND report_date = ?", userID, reportDate).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// FindDailyRange returns stored daily reports with report_date in
// [startDate, endDate], ordered by date. Dates use models.DateLayout.
func (r *reportRepository) FindDailyRange(userID uint, startDate, endDate string) ([]models.DailyReport, error) {
	var reports []models.DailyReport
	err := r.db.Where("user_id = ? AND report_date >= ? AND report_date <= ?", userID, startDate, endDate).
		Order("report_date ASC").
		Find(&reports).Error
	return reports, err
}

func (r *reportRepository) UpsertWeekly(report *models.WeeklyReport) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "week_start_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"timezone", "days", "totals", "daily_averages", "average_score",
			"best_day", "worst_day", "days_with_data", "is_partial", "generated_at", "updated_at",
		}),
	}).Create(report).Error
}

func (r *reportRepository) FindWeekly(userID uint, weekStartDate string) (*models.WeeklyReport, error) {
	var report models.WeeklyReport
	err := r.db.Where("user_id = ? AND week_start_date = ?", userID, weekStartDate).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}
