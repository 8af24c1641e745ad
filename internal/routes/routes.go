package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/washerhq/carwash-api/internal/audit"
	"github.com/washerhq/carwash-api/internal/auth"
	"github.com/washerhq/carwash-api/internal/config"
	"github.com/washerhq/carwash-api/internal/handlers"
	infraRepo "github.com/washerhq/carwash-api/internal/infra/repository"
	"github.com/washerhq/carwash-api/internal/middleware"
	ucAppointment "github.com/washerhq/carwash-api/internal/usecase/appointment"
	ucCustomer "github.com/washerhq/carwash-api/internal/usecase/customer"
	ucPayment "github.com/washerhq/carwash-api/internal/usecase/payment"
	ucVehicle "github.com/washerhq/carwash-api/internal/usecase/vehicle"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, denylist *auth.Denylist) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewWashGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	customerCreate := ucCustomer.NewCreate(repo, auditDispatcher)
	customerGet := ucCustomer.NewGet(repo)
	customerList := ucCustomer.NewList(repo)
	customerUpdate := ucCustomer.NewUpdate(repo, auditDispatcher)
	customerDelete := ucCustomer.NewDelete(repo, auditDispatcher)

	vehicleCreate := ucVehicle.NewCreate(repo, auditDispatcher)
	vehicleGet := ucVehicle.NewGet(repo)
	vehicleList := ucVehicle.NewList(repo)
	vehicleUpdate := ucVehicle.NewUpdate(repo, auditDispatcher)
	vehicleDelete := ucVehicle.NewDelete(repo, auditDispatcher)

	appointmentCreate := ucAppointment.NewCreate(repo, auditDispatcher)
	appointmentGet := ucAppointment.NewGet(repo)
	appointmentList := ucAppointment.NewList(repo)
	appointmentUpdate := ucAppointment.NewUpdate(repo, auditDispatcher)
	appointmentStatus := ucAppointment.NewUpdateStatus(repo, auditDispatcher)
	appointmentDelete := ucAppointment.NewDelete(repo, auditDispatcher)

	paymentCreate := ucPayment.NewCreate(repo, auditDispatcher)
	paymentGet := ucPayment.NewGet(repo)
	paymentList := ucPayment.NewList(repo)
	paymentUpdate := ucPayment.NewUpdate(repo, auditDispatcher)
	paymentDelete := ucPayment.NewDelete(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, denylist)

	customerHandler := handlers.NewCustomerHandler(
		customerCreate, customerGet, customerList, customerUpdate, customerDelete,
	)
	vehicleHandler := handlers.NewVehicleHandler(
		vehicleCreate, vehicleGet, vehicleList, vehicleUpdate, vehicleDelete,
	)
	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentCreate, appointmentGet, appointmentList,
		appointmentUpdate, appointmentStatus, appointmentDelete,
	)
	paymentHandler := handlers.NewPaymentHandler(
		paymentCreate, paymentGet, paymentList,
		paymentUpdate, paymentDelete, appointmentStatus,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROUTES
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, denylist))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.POST("/customers", customerHandler.Create)
			secured.GET("/customers/:id", customerHandler.Get)
			secured.GET("/customers", customerHandler.List)
			secured.PUT("/customers/:id", customerHandler.Update)
			secured.DELETE("/customers/:id", customerHandler.Delete)

			secured.POST("/vehicles", vehicleHandler.Create)
			secured.GET("/vehicles/:id", vehicleHandler.Get)
			secured.GET("/vehicles", vehicleHandler.List)
			secured.PUT("/vehicles/:id", vehicleHandler.Update)
			secured.DELETE("/vehicles/:id", vehicleHandler.Delete)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.POST("/payments", paymentHandler.Create)
			secured.GET("/payments/:id", paymentHandler.Get)
			secured.GET("/payments", paymentHandler.List)
			secured.PUT("/payments/:id", paymentHandler.Update)
			secured.PUT("/payments/:id/status", paymentHandler.UpdateStatus)
			secured.DELETE("/payments/:id", paymentHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
