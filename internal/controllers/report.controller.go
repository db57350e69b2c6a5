package controllers

import (
	"net/http"
	"time"

	"uqifeed/internal/cache"
	"uqifeed/internal/models"
	"uqifeed/internal/nutrition"
	"uqifeed/internal/repository"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reportRepo  repository.ReportRepository
	entryRepo   repository.FoodEntryRepository
	targetRepo  repository.NutritionTargetRepository
	userRepo    repository.UserRepository
	reportCache *cache.ReportCache
}

func NewReportController(
	reportRepo repository.ReportRepository,
	entryRepo repository.FoodEntryRepository,
	targetRepo repository.NutritionTargetRepository,
	userRepo repository.UserRepository,
	reportCache *cache.ReportCache,
) *ReportController {
	return &ReportController{
		reportRepo:  reportRepo,
		entryRepo:   entryRepo,
		targetRepo:  targetRepo,
		userRepo:    userRepo,
		reportCache: reportCache,
	}
}

func (rc *ReportController) location(c *gin.Context, userID uint) (*time.Location, bool) {
	fallback := ""
	if user, err := rc.userRepo.FindByID(userID); err == nil {
		fallback = user.Timezone
	}
	loc, err := resolveLocation(c, fallback)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid timezone",
			"error":   err.Error(),
		})
		return nil, false
	}
	return loc, true
}

// GetDailyReport godoc
// @Summary Get a daily report
// @Description Retrieve the report for one local calendar date, building it on demand when absent. Reports for the current day are always rebuilt because the pro-rated target moves through the day.
// @Tags report
// @Produce json
// @Security BearerAuth
// @Param date path string true "Report date (YYYY-MM-DD)"
// @Param tz query string false "IANA timezone name; defaults to the user's timezone"
// @Success 200 {object} map[string]interface{} "Daily report retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date or timezone"
// @Failure 404 {object} map[string]interface{} "No nutrition target found"
// @Failure 500 {object} map[string]interface{} "Failed to build daily report"
// @Router /report/daily/{date} [get]
func (rc *ReportController) GetDailyReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	loc, ok := rc.location(c, userID)
	if !ok {
		return
	}

	date, err := parseDateParam(c.Param("date"), loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "date must use the YYYY-MM-DD format",
		})
		return
	}

	now := time.Now()
	reportDate := date.Format(models.DateLayout)
	isToday := now.In(loc).Format(models.DateLayout) == reportDate

	if !isToday {
		if rc.reportCache != nil {
			if cached, found, _ := rc.reportCache.GetDailyReport(userID, reportDate); found {
				c.JSON(http.StatusOK, gin.H{
					"status":  "success",
					"message": "Daily report retrieved successfully",
					"data":    cached,
					"source":  "cache",
				})
				return
			}
		}
		if stored, err := rc.reportRepo.FindDaily(userID, reportDate); err == nil {
			if rc.reportCache != nil {
				_ = rc.reportCache.StoreDailyReport(stored, cache.DefaultReportTTL)
			}
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Daily report retrieved successfully",
				"data":    stored,
				"source":  "database",
			})
			return
		}
	}

	report, ok := rc.buildDaily(c, userID, date, loc, now)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily report retrieved successfully",
		"data":    report,
		"source":  "generated",
	})
}

// GetWeeklyReport godoc
// @Summary Get a weekly report
// @Description Retrieve the report for the week containing the given date. The week starts on Monday; any date within the week is accepted.
// @Tags report
// @Produce json
// @Security BearerAuth
// @Param week_start path string true "Any date within the week (YYYY-MM-DD)"
// @Param tz query string false "IANA timezone name; defaults to the user's timezone"
// @Success 200 {object} map[string]interface{} "Weekly report retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date or timezone"
// @Failure 500 {object} map[string]interface{} "Failed to build weekly report"
// @Router /report/weekly/{week_start} [get]
func (rc *ReportController) GetWeeklyReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	loc, ok := rc.location(c, userID)
	if !ok {
		return
	}

	date, err := parseDateParam(c.Param("week_start"), loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "week_start must use the YYYY-MM-DD format",
		})
		return
	}

	now := time.Now()
	weekStart := nutrition.StartOfWeek(date, loc)
	weekStartDate := weekStart.Format(models.DateLayout)
	isCurrentWeek := !now.In(loc).Before(weekStart) && now.In(loc).Before(weekStart.AddDate(0, 0, 7))

	if !isCurrentWeek {
		if rc.reportCache != nil {
			if cached, found, _ := rc.reportCache.GetWeeklyReport(userID, weekStartDate); found {
				c.JSON(http.StatusOK, gin.H{
					"status":  "success",
					"message": "Weekly report retrieved successfully",
					"data":    cached,
					"source":  "cache",
				})
				return
			}
		}
		if stored, err := rc.reportRepo.FindWeekly(userID, weekStartDate); err == nil {
			if rc.reportCache != nil {
				_ = rc.reportCache.StoreWeeklyReport(stored, cache.DefaultReportTTL)
			}
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Weekly report retrieved successfully",
				"data":    stored,
				"source":  "database",
			})
			return
		}
	}

	weekEnd := weekStart.AddDate(0, 0, 6)
	dailies, err := rc.reportRepo.FindDailyRange(userID, weekStartDate, weekEnd.Format(models.DateLayout))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build weekly report",
			"error":   err.Error(),
		})
		return
	}

	report, err := nutrition.BuildWeeklyReport(userID, weekStart, dailies, loc, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build weekly report",
			"error":   err.Error(),
		})
		return
	}

	if err := rc.reportRepo.UpsertWeekly(report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store weekly report",
			"error":   err.Error(),
		})
		return
	}
	if rc.reportCache != nil {
		_ = rc.reportCache.StoreWeeklyReport(report, cache.DefaultReportTTL)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weekly report retrieved successfully",
		"data":    report,
		"source":  "generated",
	})
}

func (rc *ReportController) buildDaily(c *gin.Context, userID uint, date time.Time, loc *time.Location, now time.Time) (*models.DailyReport, bool) {
	target, err := rc.targetRepo.FindActiveByUserID(userID, now)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No nutrition target found",
			"error":   "Save a profile first to derive a target",
		})
		return nil, false
	}

	window := nutrition.DayWindow(date, loc)
	entries, err := rc.entryRepo.FindByUserIDAndRange(userID, window.Start, window.End)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load food entries",
			"error":   err.Error(),
		})
		return nil, false
	}

	report, err := nutrition.BuildDailyReport(userID, date, entries, target, loc, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build daily report",
			"error":   err.Error(),
		})
		return nil, false
	}

	if err := rc.reportRepo.UpsertDaily(report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store daily report",
			"error":   err.Error(),
		})
		return nil, false
	}
	if rc.reportCache != nil {
		_ = rc.reportCache.StoreDailyReport(report, cache.DefaultReportTTL)
	}
	return report, true
}
