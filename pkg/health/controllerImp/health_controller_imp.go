package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fazenda/pkg/errs"
	"fazenda/pkg/view"
)

type HealthCtrl struct {
	db      *gorm.DB
	migrate func(*gorm.DB) error
	started time.Time
}

func NewHealthCtrl(db *gorm.DB, migrate func(*gorm.DB) error, started time.Time) *HealthCtrl {
	return &HealthCtrl{db: db, migrate: migrate, started: started}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.ping(ctx)
	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": db.OK},
		"uptime_sec": int(time.Since(h.started).Seconds()),
		"checks":     map[string]check{"database": db},
		"time":       time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) ping(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

// InitDB re-runs the schema migration.
func (h *HealthCtrl) InitDB(c echo.Context) error {
	var err error
	if e := h.migrate(h.db.WithContext(c.Request().Context())); e != nil {
		err = errs.Storage(e)
	}
	return view.Outcome(c, err, "Database initialized", "/index")
}
