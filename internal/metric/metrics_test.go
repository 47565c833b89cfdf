package metric

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCountsFromDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM tasks").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery("FROM roommates").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	require.NoError(t, UpdateCountsFromDB(sqlx.NewDb(db, "sqlmock")))
	assert.Equal(t, 7.0, testutil.ToFloat64(TasksCount))
	assert.Equal(t, 3.0, testutil.ToFloat64(RoommatesCount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrometheusMiddleware_CountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PrometheusMiddleware())
	r.GET("/tasks/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(RequestsTotal.WithLabelValues(http.MethodGet, "/tasks/:id", "200"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks/3", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(RequestsTotal.WithLabelValues(http.MethodGet, "/tasks/:id", "200")))
}
