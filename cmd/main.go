package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	calculatePriceHandler "github.com/avtoline-dev/STO-SiteService/internal/api/handlers/calculate_price"
	createBookingHandler "github.com/avtoline-dev/STO-SiteService/internal/api/handlers/create_booking"
	createSessionHandler "github.com/avtoline-dev/STO-SiteService/internal/api/handlers/create_session"
	getAvailableSlotsHandler "github.com/avtoline-dev/STO-SiteService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/avtoline-dev/STO-SiteService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/avtoline-dev/STO-SiteService/internal/api/handlers/get_calendar"
	getNoticeHandler "github.com/avtoline-dev/STO-SiteService/internal/api/handlers/get_notice"
	getServicesHandler "github.com/avtoline-dev/STO-SiteService/internal/api/handlers/get_services"
	navigateMonthHandler "github.com/avtoline-dev/STO-SiteService/internal/api/handlers/navigate_month"
	selectDateHandler "github.com/avtoline-dev/STO-SiteService/internal/api/handlers/select_date"
	selectTimeHandler "github.com/avtoline-dev/STO-SiteService/internal/api/handlers/select_time"
	"github.com/avtoline-dev/STO-SiteService/internal/api/middleware"
	"github.com/avtoline-dev/STO-SiteService/internal/config"
	availabilityStore "github.com/avtoline-dev/STO-SiteService/internal/infra/storage/availability"
	bookingsRepo "github.com/avtoline-dev/STO-SiteService/internal/infra/storage/bookings"
	telegramClient "github.com/avtoline-dev/STO-SiteService/internal/integrations/telegram"
	calendarService "github.com/avtoline-dev/STO-SiteService/internal/service/calendar"
	noticesService "github.com/avtoline-dev/STO-SiteService/internal/service/notices"
	pricingService "github.com/avtoline-dev/STO-SiteService/internal/service/pricing"
	calculatePriceUC "github.com/avtoline-dev/STO-SiteService/internal/usecase/calculate_price"
	createBookingUC "github.com/avtoline-dev/STO-SiteService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/avtoline-dev/STO-SiteService/internal/usecase/get_available_slots"
	"github.com/avtoline-dev/STO-SiteService/pkg/logger"
	"github.com/avtoline-dev/STO-SiteService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting STO-SiteService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Расписание работы станции
	schedule := cfg.WorkingHours()
	log.Info("Schedule loaded: open=%02d:00, close=%02d:00, slot=%d min, working days=%d",
		schedule.OpenHour, schedule.CloseHour, schedule.SlotMinutes, len(schedule.WorkingWeekdays))

	// Инициализируем хранилища (всё состояние живет в памяти процесса)
	availability := availabilityStore.NewStore()
	seed := make(map[string][]string, len(cfg.Schedule.Seed))
	for _, entry := range cfg.Schedule.Seed {
		seed[entry.Date] = entry.Times
	}
	if err := availability.Seed(seed); err != nil {
		log.Fatal("Failed to seed availability store: %v", err)
	}
	log.Info("Availability store seeded with %d dates", len(seed))

	bookingRepository := bookingsRepo.NewRepository()

	// Инициализируем сервисы
	noticesSvc := noticesService.NewService(
		time.Duration(cfg.Notices.TTLSeconds)*time.Second,
		log,
	)

	pricingSvc := pricingService.NewService(cfg.CatalogServices(), log)
	log.Info("Pricing catalog loaded: %d services", len(cfg.Catalog.Services))

	calendarSvc := calendarService.NewService(schedule, availability, noticesSvc, log)

	// Исходящий канал заявок (опционально)
	var notifier createBookingUC.Notifier
	if cfg.Telegram.Enabled {
		notifier = telegramClient.NewClient(
			cfg.Telegram.BotToken,
			cfg.Telegram.ChatID,
			time.Duration(cfg.Telegram.Timeout)*time.Second,
			log,
		)
		log.Info("Telegram notifications enabled (chat_id=%s, timeout=%ds)",
			cfg.Telegram.ChatID, cfg.Telegram.Timeout)
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(schedule, availability, log)
	calculatePriceUseCase := calculatePriceUC.NewUseCase(pricingSvc, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		schedule,
		availability,
		bookingRepository,
		pricingSvc,
		noticesSvc,
		notifier,
		log,
	)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(calendarSvc, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	navigateMonth := navigateMonthHandler.NewHandler(calendarSvc, log)
	selectDate := selectDateHandler.NewHandler(calendarSvc, log)
	selectTime := selectTimeHandler.NewHandler(calendarSvc, log)
	getNotice := getNoticeHandler.NewHandler(noticesSvc, log)
	getServices := getServicesHandler.NewHandler(pricingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	var bookingsCounter createBookingHandler.BookingsCounter
	if metricsCollector != nil {
		bookingsCounter = metricsCollector.BookingsCreated
	}
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, bookingsCounter, log)
	getBooking := getBookingHandler.NewHandler(bookingRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Сессии календаря ---
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/calendar/navigate", navigateMonth.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/calendar/date", selectDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/calendar/time", selectTime.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/notice", getNotice.Handle).Methods(http.MethodGet)

	// --- Расписание и прайс-лист ---
	api.HandleFunc("/schedule/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/price/calculate", calculatePrice.Handle).Methods(http.MethodPost)

	// --- Записи ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
