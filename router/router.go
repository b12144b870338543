// router/router.go

package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/poachurch/pcobridge/controller"
	"github.com/poachurch/pcobridge/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet},
	}))

	root := router.Group("/")

	controllers.Event.RegisterRoutes(root)
	controllers.Group.RegisterRoutes(root)
	controllers.Signup.RegisterRoutes(root)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return router
}
