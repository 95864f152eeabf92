package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS creates the CORS middleware for browser rendering clients. Origins
// default open for local development; deployments narrow them via config of
// the embedding server.
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Origin", "Authorization", "Cache-Control"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
