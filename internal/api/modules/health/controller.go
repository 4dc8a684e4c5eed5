package health

import (
	"github.com/gin-gonic/gin"

	"github.com/tekelala/jtbd-interview-agent/pkg/sdk"
)

// StatusData reports liveness plus the number of live interview sessions
type StatusData struct {
	ActiveSessions int `json:"active_sessions"`
}

// sessionCounter reports the number of live sessions; set by Init
var sessionCounter func() int

// Init wires the health module to the session registry
func Init(counter func() int) {
	sessionCounter = counter
}

// Return status of the API
func getStatus(c *gin.Context) {
	data := StatusData{}
	if sessionCounter != nil {
		data.ActiveSessions = sessionCounter()
	}

	res := sdk.NewSuccessResponse("OK", data)
	c.JSON(res.AsGinResponse())
}
