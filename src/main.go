package main

import (
	"errors"
	"happyhomes/src/boot"
	"happyhomes/src/common"
	"happyhomes/src/middlewares"
	"happyhomes/src/utils"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"
	"strconv"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	apiPrefix string = "/api/v1"
)

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.RequestID)
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		if mm == "" {
			return
		}
		on, err := strconv.ParseBool(mm)
		if err != nil || on {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
	})
	return g
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	return apiv1
}

func publicRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	apiv1 = facilityHandlers(apiv1)
	apiv1 = guestVisitorHandlers(apiv1)
	apiv1 = verificationHandlers(apiv1)
	return apiv1
}

func authorizedRoutes(g *gin.Engine) *gin.RouterGroup {
	authorized := g.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	{
		authorized = slotHandlers(authorized)
		authorized = bookingHandlers(authorized)
		authorized = accessCodeHandlers(authorized)
		authorized = visitorHandlers(authorized)
	}
	admin := authorized.Group("")
	admin.Use(middlewares.StaffOnly)
	{
		facilityAdminHandlers(admin)
		adminHandlers(admin)
	}
	return authorized
}

// respondError writes err as {"error": msg} with the status its kind maps to.
func respondError(ctx *gin.Context, err error) {
	status := common.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error on %s %s: %s\n", ctx.Request.Method, ctx.FullPath(), err.Error())
		ctx.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func actorFrom(ctx *gin.Context) common.Actor {
	return common.Actor{
		UserID:   ctx.GetUint("id"),
		Username: ctx.GetString("username"),
		IsStaff:  ctx.GetBool("is_staff"),
	}
}

func initLogger() {
	cwd, _ := os.Getwd()
	logsDir := path.Join(cwd, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		log.Printf("Could not create logs directory: %s\n", err.Error())
	}
	serverLogs := path.Join(logsDir, "server.log")
	apiLogs := path.Join(logsDir, "api.log")
	gin.ForceConsoleColor()

	f, err := os.Create(apiLogs)
	if err != nil {
		log.Printf("Could not create api log: %s\n", err.Error())
		gin.DefaultWriter = os.Stdout
	} else {
		gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()
	if utils.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	boot.InitDb()
	boot.InitCache()

	router := setupRouter()

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization", "X-Request-ID")
		cc.ExposeHeaders = append(cc.ExposeHeaders, "X-Request-ID")
		cc.AllowOriginFunc = func(origin string) bool {
			if appHost == "" {
				return false
			}
			match, _ := regexp.MatchString(appHost, origin)
			return match
		}
		cc.AllowCredentials = true
		cc.AllowAllOrigins = false
		router.Use(cors.New(cc))
	}

	registerValidators()

	router = maintenanceModeMiddleware(router)

	publicRoutes(router)
	authorizedRoutes(router)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %s\n", err.Error())
	}
}
