package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sritampradhan92-jpg/learneEdge/domain"
	"github.com/sritampradhan92-jpg/learneEdge/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func GetDatabaseURL() string {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_SSLMODE"),
	)
	return dsn
}

func BootDB() (*gorm.DB, error) {
	address := GetDatabaseURL()

	// Setup logger level (debug mode vs production)
	var gormLogger logger.Interface
	if os.Getenv("APP_ENV") == "development" {
		gormLogger = logger.Default.LogMode(logger.Info) // show all SQL
	} else {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(address), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatal("❌ Failed to connect to ", utils.ColorText("Database: ", utils.Red), err)
		return nil, err
	}

	// Setup connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Course{},
		&domain.Enrollment{},
		&domain.ContactMessage{},
	)
	if err != nil {
		log.Fatal("❌ Failed to ", utils.ColorText("auto-migrate database schemas", utils.Red), " error: ", err)
		return nil, err
	}

	seedCourses(db)

	log.Print("✅ Connected to ", utils.ColorText("Database", utils.Green), " successfully")
	return db, nil
}

// seedCourses fills the catalog on first boot so GET /courses has content.
func seedCourses(db *gorm.DB) {
	var count int64
	db.Model(&domain.Course{}).Count(&count)
	if count > 0 {
		return
	}

	courses := []domain.Course{
		{CourseID: "course-go-101", Title: "Go for Backend Developers", Description: "Build production HTTP services in Go from scratch.", Instructor: "Asha Verma", Level: "beginner", Duration: "6 weeks", Price: 49},
		{CourseID: "course-react-201", Title: "Modern React Applications", Description: "Hooks, state management, and deployment pipelines.", Instructor: "Rohit Sen", Level: "intermediate", Duration: "8 weeks", Price: 59},
		{CourseID: "course-aws-301", Title: "Cloud Architecture Essentials", Description: "Design resilient systems on managed cloud services.", Instructor: "Meera Iyer", Level: "advanced", Duration: "10 weeks", Price: 79},
		{CourseID: "course-sql-101", Title: "Practical SQL and Data Modeling", Description: "From schema design to query tuning.", Instructor: "Dev Kapoor", Level: "beginner", Duration: "4 weeks", Price: 39},
	}

	if err := db.Create(&courses).Error; err != nil {
		log.Printf("⚠️  Failed to seed courses: %v", err)
		return
	}
	log.Printf("✅ Seeded %d courses", len(courses))
}
