package response

import (
	"context"
	"fmt"
	"net/http"

	"repurpose-srv/pkg/discord"
	pkgErrors "repurpose-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Accepted writes a 202 response for asynchronously processed requests.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Resp{
		ErrorCode: 0,
		Message:   "Accepted",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code and
// message; anything else becomes a 500 and is reported to Discord when a
// client is configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	if discordClient != nil {
		_ = discordClient.ReportBug(context.Background(),
			fmt.Sprintf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// ErrorWithMap resolves err against the mapping before writing the response.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, discordClient discord.IDiscord) {
	if mapped, ok := mapping[err]; ok {
		Error(c, mapped, discordClient)
		return
	}
	Error(c, err, discordClient)
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   message,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// PanicError writes a 500 response for recovered panics and reports them.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	if discordClient != nil {
		_ = discordClient.ReportBug(context.Background(),
			fmt.Sprintf("Panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
