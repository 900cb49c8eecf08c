package middleware

import (
	"maps"
	"net/http"

	"github.com/gin-gonic/gin"
)

// EventSink receives analytics events. utils.PosthogClientWrapper implements it.
type EventSink interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

const eventPropsKey = "analytics.props"

// adminEvents maps "METHOD route" to the event sent when that admin operation is called.
// Read-only routes such as settings and backup currencies are not tracked.
var adminEvents = map[string]string{
	http.MethodPut + " /api/v1/admin/exchange-rate":  "exchange_rate_updated",
	http.MethodPut + " /api/v1/admin/dual-display":   "dual_display_toggled",
	http.MethodPost + " /api/v1/admin/migrations":    "price_migration_completed",
	http.MethodPost + " /api/v1/admin/restore":       "price_restore_completed",
	http.MethodGet + " /api/v1/admin/backups/export": "price_backup_exported",
}

// AdminEventName returns the event name tracked for a route pattern, if any.
func AdminEventName(method, route string) (string, bool) {
	name, ok := adminEvents[method+" "+route]
	return name, ok
}

// SetEventProperty attaches a property, such as the migration direction or restore currency,
// to the event sent for the current admin request.
func SetEventProperty(c *gin.Context, key string, value any) {
	props, _ := c.Get(eventPropsKey)
	m, ok := props.(map[string]any)
	if !ok {
		m = make(map[string]any)
		c.Set(eventPropsKey, m)
	}
	m[key] = value
}

// PosthogMiddleware sends one event per tracked admin operation once the handler has run.
// Rejected calls are sent too, with succeeded=false, so failed migrations show up next to the successful ones.
func PosthogMiddleware(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || !sink.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		event, ok := AdminEventName(c.Request.Method, c.FullPath())
		if !ok {
			return
		}
		admin, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		status := c.Writer.Status()
		props := map[string]any{
			"status_code": status,
			"succeeded":   status < http.StatusBadRequest,
		}
		if extra, ok := c.Get(eventPropsKey); ok {
			if m, ok := extra.(map[string]any); ok {
				maps.Copy(props, m)
			}
		}
		sink.Enqueue(admin, event, props)
	}
}
