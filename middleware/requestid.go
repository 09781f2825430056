package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID 为每个请求打上唯一id，透传已有id
func RequestID() func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader(RequestIDHeader)
		if len(rid) == 0 {
			rid = uuid.New().String()
		}
		ctx.Set("request_id", rid)
		ctx.Writer.Header().Set(RequestIDHeader, rid)
		ctx.Next()
	}
}
