package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"ecovolt-backend/internal/audit"
	"ecovolt-backend/internal/auth"
	"ecovolt-backend/internal/calculation"
	"ecovolt-backend/internal/config"
	"ecovolt-backend/internal/consultation"
	"ecovolt-backend/internal/database"
	"ecovolt-backend/internal/documents"
	"ecovolt-backend/internal/employee"
	"ecovolt-backend/internal/legal"
	"ecovolt-backend/internal/logger"
	"ecovolt-backend/internal/models"
	"ecovolt-backend/internal/newsletter"
	"ecovolt-backend/internal/property"
	"ecovolt-backend/internal/ticket"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg)
	log := logger.Get()
	defer log.Sync()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	auditSvc := audit.NewService(db)
	employeeSvc := employee.NewService(db)
	authSvc := auth.NewService(db, cfg.JWTSecret).
		WithLoginHook(func(userID uint, at time.Time) {
			// staff accounts carry a last_login stamp, others are a no-op
			if err := employeeSvc.RecordLogin(userID, at); err != nil {
				logger.Get().Warn("last_login update failed", zap.Error(err))
			}
		})
	propertySvc := property.NewService(db)
	consultationSvc := consultation.NewService(db)
	calculationSvc := calculation.NewService(db)
	legalSvc := legal.NewService(db)
	ticketSvc := ticket.NewService(db)
	newsletterSvc := newsletter.NewService(db)
	docStore := documents.NewStore(db, documents.Base64Converter{})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			log.Error("unexpected error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public
	api.Post("/auth/register", auth.RegisterHandler(authSvc))
	api.Post("/auth/login", auth.LoginHandler(authSvc))
	api.Post("/newsletter/subscriptions", newsletter.SubscribeHandler(newsletterSvc))
	api.Post("/newsletter/unsubscribe", newsletter.UnsubscribeHandler(newsletterSvc))

	// Protected
	protected := api.Group("")
	protected.Use(auth.Middleware(authSvc))

	protected.Get("/auth/me", auth.MeHandler(authSvc))

	// Documents
	protected.Post("/pdfs", documents.UploadHandler(docStore))
	protected.Get("/pdfs", documents.ListHandler(docStore))
	protected.Get("/pdfs/:id", documents.FetchHandler(docStore))
	protected.Get("/pdfs/:id/text", documents.ExtractTextHandler(docStore))

	// Properties
	protected.Post("/properties", property.CreateHandler(propertySvc))
	protected.Get("/properties", property.ListHandler(propertySvc))
	protected.Get("/properties/:id", property.GetHandler(propertySvc))
	protected.Put("/properties/:id", property.UpdateHandler(propertySvc))

	// Consultations
	protected.Post("/consultations", consultation.CreateHandler(consultationSvc))
	protected.Get("/consultations", consultation.ListByPropertyHandler(consultationSvc))
	protected.Get("/consultations/:id", consultation.GetHandler(consultationSvc))
	protected.Patch("/consultations/:id/status", consultation.SetStatusHandler(consultationSvc))

	// Energy & carbon calculations
	protected.Post("/energy-calculations", calculation.RecordEnergyHandler(calculationSvc))
	protected.Get("/energy-calculations", calculation.ListEnergyHandler(calculationSvc))
	protected.Post("/carbon-footprints", calculation.RecordCarbonHandler(calculationSvc))
	protected.Get("/carbon-footprints", calculation.ListCarbonHandler(calculationSvc))

	// Legal documents
	protected.Get("/legal-documents", legal.ListHandler(legalSvc))
	protected.Get("/legal-documents/:id", legal.GetHandler(legalSvc))

	// Tickets
	protected.Post("/tickets", ticket.CreateHandler(ticketSvc))
	protected.Get("/tickets", ticket.ListMineHandler(ticketSvc))
	protected.Get("/tickets/:id", ticket.GetHandler(ticketSvc))

	// Staff routes (admin + serviceman)
	staff := protected.Group("")
	staff.Use(auth.RequireType(models.UserTypeAdmin, models.UserTypeServiceman))

	staff.Post("/legal-documents", legal.CreateHandler(legalSvc))
	staff.Put("/legal-documents/:id", legal.UpdateHandler(legalSvc))
	staff.Patch("/tickets/:id", ticket.UpdateHandler(ticketSvc))

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireType(models.UserTypeAdmin))

	adminRoutes.Post("/employees", employee.CreateHandler(employeeSvc, auditSvc))
	adminRoutes.Get("/employees", employee.ListHandler(employeeSvc))
	adminRoutes.Get("/employees/:id", employee.GetHandler(employeeSvc))
	adminRoutes.Put("/employees/:id", employee.UpdateHandler(employeeSvc, auditSvc))

	adminRoutes.Delete("/properties/:id", property.DeleteHandler(propertySvc, auditSvc))
	adminRoutes.Post("/legal-documents/:id/archive", legal.ArchiveHandler(legalSvc, auditSvc))
	adminRoutes.Put("/users/:id/type", auth.ChangeUserTypeHandler(authSvc, auditSvc))
	adminRoutes.Get("/newsletter/subscriptions", newsletter.ListHandler(newsletterSvc))
	adminRoutes.Get("/changes", audit.ListChangesHandler(auditSvc))

	log.Info("server listening", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
