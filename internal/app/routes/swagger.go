package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupSwagger configures Swagger documentation routes.
//
// The UI reads the spec registered by the swag-generated docs package.
// Regenerate it after changing any annotation:
//
//	swag init -g cmd/api/main.go -o docs
//
// and blank-import github.com/emre/grievancehub/docs from cmd/api/main.go so
// the generated doc.json registers at startup. Without that import the UI
// loads but finds no specification.
func SetupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.DefaultModelsExpandDepth(1)))
}
