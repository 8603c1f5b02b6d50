package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dormitory-backend/controllers"
	"dormitory-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles every handler SetupRouter mounts.
type Controllers struct {
	Auth          *controllers.AuthController
	Building      *controllers.BuildingController
	Floor         *controllers.FloorController
	RoomCategory  *controllers.RoomCategoryController
	CommonFeature *controllers.SpecController
	Furniture     *controllers.SpecController
	Bed           *controllers.SpecController
	Bathroom      *controllers.SpecController
	PaidItem      *controllers.PaidItemController
	Person        *controllers.PersonController
	Room          *controllers.RoomController
	RoomDetails   *controllers.RoomDetailsController
	Booking       *controllers.BookingController
}

func SetupRouter(ctrl Controllers, imageDir string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())
	r.Static("/images", imageDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/register", ctrl.Auth.Register)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.Auth())
	{
		crud := func(group *gin.RouterGroup, create, list, get, update, remove gin.HandlerFunc) {
			group.POST("", create)
			group.GET("", list)
			group.GET("/:id", get)
			group.PUT("/:id", update)
			group.DELETE("/:id", remove)
		}

		buildings := admin.Group("/building")
		crud(buildings, ctrl.Building.Create, ctrl.Building.List, ctrl.Building.GetByID, ctrl.Building.Update, ctrl.Building.Delete)

		floors := admin.Group("/floor")
		crud(floors, ctrl.Floor.Create, ctrl.Floor.List, ctrl.Floor.GetByID, ctrl.Floor.Update, ctrl.Floor.Delete)

		categories := admin.Group("/roomCategory")
		crud(categories, ctrl.RoomCategory.Create, ctrl.RoomCategory.List, ctrl.RoomCategory.GetByID, ctrl.RoomCategory.Update, ctrl.RoomCategory.Delete)

		features := admin.Group("/commonFeature")
		crud(features, ctrl.CommonFeature.Create, ctrl.CommonFeature.List, ctrl.CommonFeature.GetByID, ctrl.CommonFeature.Update, ctrl.CommonFeature.Delete)

		furnitures := admin.Group("/furniture")
		crud(furnitures, ctrl.Furniture.Create, ctrl.Furniture.List, ctrl.Furniture.GetByID, ctrl.Furniture.Update, ctrl.Furniture.Delete)

		beds := admin.Group("/bed")
		crud(beds, ctrl.Bed.Create, ctrl.Bed.List, ctrl.Bed.GetByID, ctrl.Bed.Update, ctrl.Bed.Delete)

		bathrooms := admin.Group("/bathroom")
		crud(bathrooms, ctrl.Bathroom.Create, ctrl.Bathroom.List, ctrl.Bathroom.GetByID, ctrl.Bathroom.Update, ctrl.Bathroom.Delete)

		paidItems := admin.Group("/paidItems")
		crud(paidItems, ctrl.PaidItem.Create, ctrl.PaidItem.List, ctrl.PaidItem.GetByID, ctrl.PaidItem.Update, ctrl.PaidItem.Delete)

		people := admin.Group("/newPerson")
		crud(people, ctrl.Person.Create, ctrl.Person.List, ctrl.Person.GetByID, ctrl.Person.Update, ctrl.Person.Delete)

		rooms := admin.Group("/roomInfo")
		crud(rooms, ctrl.Room.Create, ctrl.Room.List, ctrl.Room.GetByID, ctrl.Room.Update, ctrl.Room.Delete)

		details := admin.Group("/room/roomDetails")
		{
			details.POST("", ctrl.RoomDetails.Create)
			details.GET("/all", ctrl.RoomDetails.GetAll)
			details.GET("", ctrl.RoomDetails.GetByCriteria)
			details.PUT("/:id", ctrl.RoomDetails.Update)
			details.DELETE("/:id", ctrl.RoomDetails.Delete)
		}

		bookings := admin.Group("/roomBooking")
		{
			bookings.POST("", ctrl.Booking.Create)
			bookings.GET("", ctrl.Booking.List)
			bookings.GET("/availableRoom", ctrl.Booking.AvailableRooms)
			bookings.PUT("/:id", ctrl.Booking.Update)
			bookings.DELETE("/:id", ctrl.Booking.Delete)
		}
	}

	return r
}
