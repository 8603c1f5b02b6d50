package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"dormitory-backend/config"
	"dormitory-backend/controllers"
	"dormitory-backend/models"
	"dormitory-backend/routes"
	"dormitory-backend/services"
	"dormitory-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot sign access tokens.")
	}
	utils.InitJWT(jwtSecret)
	log.Println("✅ JWT_SECRET detected.")

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	imageDir := os.Getenv("IMAGE_DIR")
	if imageDir == "" {
		imageDir = "uploads/rooms"
	}

	// Initialize services
	authService := services.NewAuthService(db)
	buildingService := services.NewBuildingService(db)
	floorService := services.NewFloorService(db)
	categoryService := services.NewRoomCategoryService(db)
	featureService := services.NewSpecItemService(db, models.TableCommonFeatures, "Common feature")
	furnitureService := services.NewSpecItemService(db, models.TableFurnitures, "Furniture")
	bedService := services.NewSpecItemService(db, models.TableBeds, "Bed")
	bathroomService := services.NewSpecItemService(db, models.TableBathrooms, "Bathroom")
	paidItemService := services.NewPaidItemService(db)
	personService := services.NewPersonService(db)
	roomService := services.NewRoomService(db)
	imageService := services.NewImageService(imageDir)
	roomDetailsService := services.NewRoomDetailsService(db, imageService,
		featureService, furnitureService, bathroomService)
	bookingService := services.NewBookingService(db)

	// Initialize controllers and build the router
	router := routes.SetupRouter(routes.Controllers{
		Auth:          controllers.NewAuthController(authService),
		Building:      controllers.NewBuildingController(buildingService),
		Floor:         controllers.NewFloorController(floorService),
		RoomCategory:  controllers.NewRoomCategoryController(categoryService),
		CommonFeature: controllers.NewSpecController(featureService, "Common feature"),
		Furniture:     controllers.NewSpecController(furnitureService, "Furniture"),
		Bed:           controllers.NewSpecController(bedService, "Bed"),
		Bathroom:      controllers.NewSpecController(bathroomService, "Bathroom"),
		PaidItem:      controllers.NewPaidItemController(paidItemService),
		Person:        controllers.NewPersonController(personService),
		Room:          controllers.NewRoomController(roomService),
		RoomDetails:   controllers.NewRoomDetailsController(roomDetailsService),
		Booking:       controllers.NewBookingController(bookingService),
	}, imageDir)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
