// README: Database status handler; reports connectivity and table counts.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type DatabaseHandler struct {
	db  *pgxpool.Pool
	rdb *redis.Client
}

func NewDatabaseHandler(db *pgxpool.Pool, rdb *redis.Client) *DatabaseHandler {
	return &DatabaseHandler{db: db, rdb: rdb}
}

var statusTables = []string{"bookings", "notifications"}

func (h *DatabaseHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.db.Ping(ctx); err != nil {
		writeError(c, http.StatusInternalServerError, "Database connection failed")
		return
	}

	totalRecords := map[string]int64{}
	for _, table := range statusTables {
		var n int64
		// table names come from the fixed list above, never from input
		if err := h.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			writeError(c, http.StatusInternalServerError, "Database connection failed")
			return
		}
		totalRecords[table] = n
	}

	cacheStatus := "connected"
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		cacheStatus = "disconnected"
	}

	writeJSON(c, http.StatusOK, gin.H{
		"status":       "connected",
		"database":     "skybot",
		"tables":       statusTables,
		"totalRecords": totalRecords,
		"cache":        cacheStatus,
		"lastUpdated":  time.Now().UTC().Format(time.RFC3339),
	})
}
