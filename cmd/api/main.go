package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/lavizaismail/hostelhub/internal/adapter/http"
	"github.com/lavizaismail/hostelhub/internal/adapter/middleware"
	"github.com/lavizaismail/hostelhub/internal/adapter/repository/mysql"
	"github.com/lavizaismail/hostelhub/internal/config"
	"github.com/lavizaismail/hostelhub/internal/infrastructure/cache"
	"github.com/lavizaismail/hostelhub/internal/infrastructure/db"
	ucAllocation "github.com/lavizaismail/hostelhub/internal/usecase/allocation"
	ucBilling "github.com/lavizaismail/hostelhub/internal/usecase/billing"
	ucComplaint "github.com/lavizaismail/hostelhub/internal/usecase/complaint"
	"github.com/lavizaismail/hostelhub/internal/usecase/dispatch"
	ucNotify "github.com/lavizaismail/hostelhub/internal/usecase/notify"
	ucReceipt "github.com/lavizaismail/hostelhub/internal/usecase/receipt"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	guow := mysql.NewGormUoW(gdb)
	notifRepo := mysql.NewNotificationRepository(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	dispatcher := dispatch.NewDispatcher(notifRepo, auditRepo)

	allocUC := ucAllocation.NewUsecase(guow, dispatcher)
	billingUC := ucBilling.NewUsecase(guow, dispatcher)
	complaintUC := ucComplaint.NewUsecase(guow, dispatcher)
	receiptUC := ucReceipt.NewUsecase(guow)
	notifyUC := ucNotify.NewUsecase(notifRepo, auditRepo)

	h := httpadp.NewHandler()
	allocH := httpadp.NewAllocationHandler(allocUC)
	payH := httpadp.NewPaymentHandler(billingUC, receiptUC)
	complaintH := httpadp.NewComplaintHandler(complaintUC)
	notifH := httpadp.NewNotificationHandler(notifyUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	// Mutating workflow routes go through the idempotency middleware so a
	// retried click cannot run a transition twice.
	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	g := e.Group("", idemp)

	g.POST("/allocations", allocH.RequestRoom)
	g.POST("/allocations/:allocation_id/approve", allocH.Approve)
	g.POST("/allocations/:allocation_id/reject", allocH.Reject)
	g.POST("/allocations/:allocation_id/checkout", allocH.Checkout)
	e.GET("/allocations/:allocation_id", allocH.Get)

	g.POST("/payments/:payment_id/evidence", payH.SubmitEvidence)
	g.POST("/payments/:payment_id/verify", payH.Verify)
	g.POST("/payments/:payment_id/reject", payH.Reject)
	e.GET("/payments/:payment_id", payH.Get)
	e.GET("/students/:student_id/payments/:payment_id/receipt", payH.Receipt)

	g.POST("/complaints", complaintH.Lodge)
	g.POST("/complaints/:complaint_id/forward", complaintH.Forward)
	g.POST("/complaints/:complaint_id/assign", complaintH.Assign)
	g.POST("/complaints/:complaint_id/status", complaintH.UpdateStatus)
	e.GET("/complaints/:complaint_id", complaintH.Get)

	e.GET("/notifications", notifH.Inbox)
	g.POST("/notifications/:notification_id/read", notifH.MarkRead)
	e.GET("/audit", notifH.RecentAudit)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
