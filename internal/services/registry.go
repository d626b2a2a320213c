package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"checktrack/internal/models"
	"checktrack/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// Registry bundles the three resource services and owns the seed lifecycle:
// seed-if-absent once at startup, unconditional reseed on demand.
type Registry struct {
	Users   *UserService
	Tasks   *TaskService
	Reports *ReportService

	dataDir string
	users   *store.Collection[models.User, *models.User]
	tasks   *store.Collection[models.Task, *models.Task]
	reports *store.Collection[models.DailyReport, *models.DailyReport]
}

// NewRegistry wires the collections under dataDir. Nothing is read or written
// until Init or the first operation.
func NewRegistry(dataDir string) *Registry {
	r := &Registry{dataDir: dataDir}
	r.users = store.New[models.User, *models.User](filepath.Join(dataDir, "users.json"), defaultUsers)
	r.tasks = store.New[models.Task, *models.Task](filepath.Join(dataDir, "tasks.json"), defaultTasks)
	r.reports = store.New[models.DailyReport, *models.DailyReport](filepath.Join(dataDir, "daily-reports.json"), nil)

	r.Users = NewUserService(r.users)
	r.Tasks = NewTaskService(r.tasks)
	r.Reports = NewReportService(r.reports)
	return r
}

// Init creates the data directory and materializes any absent collection with
// its seed defaults. Existing data is left alone.
func (r *Registry) Init() error {
	if err := os.MkdirAll(r.dataDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	r.users.Init()
	r.tasks.Init()
	r.reports.Init()
	return nil
}

// Reset rewrites all three collections with their seed defaults, discarding
// current data.
func (r *Registry) Reset() error {
	if err := r.users.Reset(); err != nil {
		return err
	}
	if err := r.tasks.Reset(); err != nil {
		return err
	}
	return r.reports.Reset()
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on absurd cost or oversized input; neither applies
		// to the fixed seed passwords.
		log.Printf("services: failed to hash seed password: %v", err)
		return ""
	}
	return string(hash)
}

// One account per role. Usernames and passwords are the stock credentials the
// deployment ships with.
func defaultUsers() []models.User {
	now := time.Now().UTC()
	return []models.User{
		{
			ID:        "1",
			Username:  "superadmin",
			Password:  mustHash("qwefscaghev12"),
			Role:      models.RoleSuperAdmin,
			FullName:  "Chief Administrator",
			Email:     "superadmin@example.com",
			CreatedAt: now,
		},
		{
			ID:        "2",
			Username:  "adminokk",
			Password:  mustHash("okk2025"),
			Role:      models.RoleAdmin,
			FullName:  "Quality Control",
			Email:     "admin@example.com",
			CreatedAt: now,
		},
		{
			ID:        "3",
			Username:  "managersiz",
			Password:  mustHash("siz2025"),
			Role:      models.RoleManager,
			FullName:  "Igor Sizikov",
			Email:     "manager@example.com",
			CreatedAt: now,
		},
	}
}

func defaultTasks() []models.Task {
	return []models.Task{
		{
			ID:          "1",
			Title:       "Verify corporate account invoices",
			Description: "Check every corporate client invoice issued this month",
			Required:    true,
			Order:       1,
		},
		{
			ID:          "2",
			Title:       "Process incoming requests",
			Description: "Review and process new client requests",
			Required:    true,
			Order:       2,
		},
	}
}
