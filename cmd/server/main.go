package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aventura-gamer-service/internal/config"
	"aventura-gamer-service/internal/controller"
	"aventura-gamer-service/internal/mercadopago"
	"aventura-gamer-service/internal/middleware"
	"aventura-gamer-service/internal/rabbit"
	"aventura-gamer-service/internal/repository"
	"aventura-gamer-service/internal/service"
	"aventura-gamer-service/internal/ws"
)

func main() {
	cfg := config.Load()

	// Conexión a MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.MongoDBName)

	// Repositorios
	orderRepo := repository.NewMongoOrderRepository(db)
	ticketRepo := repository.NewMongoTicketRepository(db)
	profileRepo := repository.NewMongoProfileRepository(db)
	achievementRepo := repository.NewMongoAchievementRepository(db)
	paymentRepo := repository.NewMongoPaymentRepository(db)
	checkoutRepo := repository.NewMongoCheckoutRepository(db)

	// Índice único que respalda el reclamo único de logros
	if err := achievementRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Error creando índices: %v", err)
	}

	// Conexión a RabbitMQ
	conn, err := amqp091.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("Error conectando a RabbitMQ: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Error creando canal en RabbitMQ: %v", err)
	}

	publisher, err := rabbit.NewOrderChangedPublisher(ch)
	if err != nil {
		log.Fatalf("Error declarando exchange: %v", err)
	}

	// Hub de websockets para la señal de invalidación en vivo
	hub := ws.NewHub()

	// Servicios
	orderService := service.NewOrderService(orderRepo, publisher, hub)
	ticketService := service.NewTicketService(ticketRepo)
	gamificationService := service.NewGamificationService(profileRepo, achievementRepo, orderRepo)
	gateway := mercadopago.NewClient(cfg.MPBaseURL, cfg.MPAccessToken)
	paymentService := service.NewPaymentService(gateway, checkoutRepo, paymentRepo, orderService, gamificationService, cfg.CheckoutReturn, cfg.XPPerPurchase)
	authService := service.NewAuthService(cfg.AuthURL)

	// Handlers
	orderCtrl := controller.NewOrderController(orderService)
	ticketCtrl := controller.NewTicketController(ticketService)
	gamiCtrl := controller.NewGamificationController(gamificationService)
	achievementCtrl := controller.NewAchievementController(achievementRepo)
	paymentCtrl := controller.NewPaymentController(paymentService)

	// Router
	r := gin.Default()

	// Rutas públicas
	r.POST("/payments/webhook", paymentCtrl.Webhook)
	r.GET("/ws/orders", hub.Handler)

	// Rutas protegidas (requieren token)
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(authService))

	auth.GET("/orders/mine", orderCtrl.GetMyOrders)
	auth.GET("/orders/:orderId", orderCtrl.GetOrder)
	auth.PATCH("/orders/:orderId/status", orderCtrl.UpdateStatus)

	auth.GET("/tickets/mine", ticketCtrl.GetMyTickets)
	auth.POST("/tickets/:ticketId/comments", ticketCtrl.AppendComment)

	auth.GET("/gamification/progress", gamiCtrl.GetProgress)
	auth.GET("/gamification/achievements", gamiCtrl.GetAchievements)
	auth.POST("/gamification/achievements/claim", gamiCtrl.ClaimAchievement)

	auth.GET("/achievements", achievementCtrl.List)
	auth.POST("/checkout", paymentCtrl.CreateCheckout)

	// Rutas staff (tablero de seguimiento y taller)
	staff := auth.Group("/admin")
	staff.Use(middleware.RequireRole("staff"))
	staff.GET("/orders", orderCtrl.GetAllOrders)
	staff.GET("/orders/state/:state", orderCtrl.GetAllOrdersByState)
	staff.POST("/tickets", ticketCtrl.CreateTicket)
	staff.GET("/tickets", ticketCtrl.GetAllTickets)
	staff.PATCH("/tickets/:ticketId/estado", ticketCtrl.UpdateEstado)

	// Rutas admin (definiciones de logros)
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireRole("admin"))
	admin.GET("/achievements", achievementCtrl.ListAll)
	admin.POST("/achievements", achievementCtrl.Create)
	admin.PUT("/achievements/:achievementId", achievementCtrl.Update)

	// Solo superadmin puede borrar definiciones
	super := auth.Group("/admin")
	super.Use(middleware.RequireRole("superadmin"))
	super.DELETE("/achievements/:achievementId", achievementCtrl.Delete)

	// Consumer de pagos aprobados (entrega at-least-once)
	rabbit.SetupConsumers(ch, paymentService)

	// Ejecutar servidor
	log.Printf("Aventura Gamer service ejecutándose en puerto %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
