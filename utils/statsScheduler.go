package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"skillforge/config"
	"skillforge/database"
	"skillforge/models"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[STATS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// syncStudentCounts recomputes studentsCount on every course document from
// the enrollments table. Only the counter column is touched so a concurrent
// structural edit of the same course is not clobbered.
func syncStudentCounts() {
	db := database.Database.Db

	type courseCount struct {
		CourseID string
		Total    int64
	}
	var counts []courseCount
	if err := db.Model(&models.Enrollment{}).
		Select("course_id, COUNT(*) as total").
		Group("course_id").
		Scan(&counts).Error; err != nil {
		logScheduler("Error counting enrollments: " + err.Error())
		return
	}

	updated := 0
	for _, c := range counts {
		res := db.Model(&models.CourseDocument{}).
			Where("id = ? AND students_count <> ?", c.CourseID, c.Total).
			Update("students_count", c.Total)
		if res.Error != nil {
			logScheduler("Error updating course " + c.CourseID + ": " + res.Error.Error())
			continue
		}
		updated += int(res.RowsAffected)
	}
	if updated > 0 {
		logScheduler(fmt.Sprintf("Updated studentsCount on %d courses", updated))
	}
}

// StartStatsScheduler runs the enrollment stats sync on the configured cron
// schedule and returns the running scheduler.
func StartStatsScheduler() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc(config.AppConfig.StatsSyncCron, syncStudentCounts); err != nil {
		log.Printf("Invalid STATS_SYNC_CRON %q: %v", config.AppConfig.StatsSyncCron, err)
		return c
	}
	c.Start()
	logScheduler("Stats scheduler started (" + config.AppConfig.StatsSyncCron + ")")
	return c
}
