package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"choreboard/internal/metric"
	"choreboard/internal/middleware"
)

// RouterDeps carries the handlers and settings NewRouter wires together.
type RouterDeps struct {
	Tasks          *TaskHandler
	Roommates      *RoommateHandler
	Rooms          *RoomHandler
	Logger         *zap.Logger
	AllowedOrigins []string
}

// NewRouter builds the gin engine with every household route registered.
func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(metric.PrometheusMiddleware())
	r.Use(middleware.CORS(d.AllowedOrigins))

	// Health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(metric.PromhttpHandler()))

	tasks := r.Group("/tasks")
	{
		tasks.GET("", d.Tasks.ListTasks)
		tasks.POST("", d.Tasks.CreateTask)
		tasks.GET("/upcoming", d.Tasks.Upcoming)
		tasks.GET("/overdue", d.Tasks.Overdue)
		tasks.GET("/completed-week", d.Tasks.CompletedThisWeek)
		tasks.GET("/export", d.Tasks.ExportTasks)
		tasks.GET("/:id", d.Tasks.GetTask)
		tasks.PUT("/:id", d.Tasks.UpdateTask)
		tasks.DELETE("/:id", d.Tasks.DeleteTask)
	}

	roommates := r.Group("/roommates")
	{
		roommates.GET("", d.Roommates.ListRoommates)
		roommates.POST("", d.Roommates.CreateRoommate)
		roommates.PUT("/:id", d.Roommates.UpdateRoommate)
		roommates.DELETE("/:id", d.Roommates.DeleteRoommate)
	}

	r.GET("/rooms", d.Rooms.ListRooms)

	return r
}
