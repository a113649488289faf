package handlers

import (
	"context"
	"net/http"
	"time"

	"contacts-manager/backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handler struct {
	DB        *gorm.DB
	Redis     *redis.Client // nil when revocation is kept in memory
	Persons   *services.PersonService
	Countries *services.CountriesService
	Accounts  *services.AccountService
	Tokens    *services.TokenService
	Events    *EventLog
}

func NewHandler(
	db *gorm.DB,
	rdb *redis.Client,
	persons *services.PersonService,
	countries *services.CountriesService,
	accounts *services.AccountService,
	tokens *services.TokenService,
) *Handler {
	return &Handler{
		DB:        db,
		Redis:     rdb,
		Persons:   persons,
		Countries: countries,
		Accounts:  accounts,
		Tokens:    tokens,
		Events:    NewEventLog(100),
	}
}

// SetupRoutes registers every API route under router.
func SetupRoutes(router fiber.Router, h *Handler) {
	api := router.Group("/api")

	// ===== Public Routes =====
	api.Get("/health", h.Health)
	api.Post("/account/register", h.Register)
	api.Post("/account/login", h.Login)
	api.Get("/account/unique-email", h.IsEmailAvailable)

	// ===== Protected Routes (JWT Required) =====
	protected := api.Group("", h.JWTAuthMiddleware())

	protected.Post("/account/logout", h.Logout)
	protected.Put("/account/password", h.ChangePassword)

	// Persons
	protected.Get("/persons", h.GetPersons)
	protected.Post("/persons", h.CreatePerson)
	protected.Get("/persons/export/csv", h.ExportPeopleCSV)
	protected.Get("/persons/export/excel", h.ExportPeopleExcel)
	protected.Get("/persons/export/pdf", h.ExportPeoplePDF)
	protected.Get("/persons/:id", h.GetPerson)
	protected.Put("/persons/:id", h.UpdatePerson)
	protected.Delete("/persons/:id", h.DeletePerson)

	// Countries
	protected.Get("/countries", h.GetCountries)
	protected.Post("/countries", h.CreateCountry)
	protected.Post("/countries/upload", h.UploadCountries)
	protected.Get("/countries/:id", h.GetCountry)

	// Admin
	admin := protected.Group("/admin", AdminOnly())
	admin.Get("/users", h.GetUsers)
	admin.Get("/events", h.GetEvents)
}

// Health reports database and Redis reachability.
// GET /api/health
func (h *Handler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	checks := fiber.Map{}
	healthy := true

	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if h.Redis != nil {
		if err := h.Redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}
	}

	status := http.StatusOK
	state := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	return c.Status(status).JSON(fiber.Map{"status": state, "checks": checks})
}
