package main

import (
	"encoding/base64"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"worksight.com/worksight/core"
	"worksight.com/worksight/infrastructure/devops"
	"worksight.com/worksight/web/handlers"
	"worksight.com/worksight/web/handlers/attendance"
	"worksight.com/worksight/web/middlewares"
)

func main() {
	dsn := os.Getenv("WORKSIGHT_DSN")
	if dsn == "" {
		log.Fatal("WORKSIGHT_DSN not set")
	}

	jwtSecret, err := base64.StdEncoding.DecodeString(os.Getenv("WORKSIGHT_SIGNING_SECRET"))
	if err != nil || len(jwtSecret) == 0 {
		log.Fatal("WORKSIGHT_SIGNING_SECRET not set or not valid base64")
	}

	dm, err := core.New(dsn, 20)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer dm.Close()

	// Hosted deployments map hostnames to schemas via the SSM registry;
	// local and single-tenant setups rely on hostname-derived names.
	if os.Getenv("WORKSIGHT_USE_TENANT_REGISTRY") == "1" {
		dm.ResolveSchema = devops.SchemaForHostname
	}

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.POST("/login", handlers.LoginHandler(dm))

	protected := r.Group("/api")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		protected.POST("/upload/photos", handlers.UploadPhotosHandler)

		attendance.Register(protected, dm)
		handlers.RegisterEmployees(protected, dm)
		handlers.RegisterDepartments(protected, dm)
		handlers.RegisterShifts(protected, dm)
		handlers.RegisterLocations(protected, dm)
		handlers.RegisterCameras(protected, dm)

		// Tenant settings and billing are admin/hr only.
		admin := protected.Group("")
		admin.Use(middlewares.RequireRole("admin", "hr"))
		{
			handlers.RegisterOrganizations(admin, dm)
		}
	}

	port := os.Getenv("WORKSIGHT_PORT")
	if port == "" {
		port = "8090"
	}
	r.Run(":" + port)
}
