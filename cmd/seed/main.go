package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/student-marks-dashboard/config"
	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	"github.com/oksasatya/student-marks-dashboard/internal/infrastructure/persistence"
	"github.com/oksasatya/student-marks-dashboard/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)

	username := flag.String("username", "demoUser", "student username")
	password := flag.String("password", "password123", "student password (stored verbatim)")
	email := flag.String("email", "demo@example.com", "student email")
	withMarks := flag.Bool("marks", true, "also submit demo marks")
	flag.Parse()

	ctx := context.Background()
	stores, err := persistence.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open %s storage: %v", cfg.StorageDriver, err)
	}
	defer stores.Close()

	st := &entity.Student{
		Username:    *username,
		Phone:       "555-0100",
		DateOfBirth: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		Email:       *email,
		Password:    *password,
	}
	if err := stores.Students.Save(ctx, st); err != nil {
		log.Fatalf("failed to seed student: %v", err)
	}
	fmt.Printf("seeded student: username=%s email=%s password=%s driver=%s\n", st.Username, st.Email, st.Password, cfg.StorageDriver)

	if !*withMarks {
		return
	}
	m := entity.Marks{"FOML": 72, "AAI": 85, "VCC": 64, "BDMS": 90, "DHV": 58}
	created, err := stores.Marks.Save(ctx, st.Username, m)
	if err != nil {
		log.Fatalf("failed to seed marks: %v", err)
	}
	if created {
		fmt.Println("seeded demo marks")
	} else {
		fmt.Println("marks already present; left unchanged")
	}
}
