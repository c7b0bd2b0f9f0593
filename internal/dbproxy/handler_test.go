package dbproxy

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/store"
)

func newTestRouter(t *testing.T, direct *store.Direct) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	r := gin.New()
	r.POST(store.ProxyPath, NewHandler(direct, log).Exec)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, store.ProxyPath, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExecRunsStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM products WHERE status = $1`)).
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("prod-1"))

	r := newTestRouter(t, store.NewDirect(store.WrapSQL(db)))
	w := postJSON(t, r, ExecReq{
		Query:  "SELECT * FROM products WHERE status = $1",
		Params: []any{"active"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []store.Row `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "prod-1", resp.Data[0].Str("id"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecFailureIsNon2xx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	r := newTestRouter(t, store.NewDirect(store.WrapSQL(db)))
	w := postJSON(t, r, ExecReq{Query: "SELECT * FROM products"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExecWithoutDatabase(t *testing.T) {
	r := newTestRouter(t, nil)
	w := postJSON(t, r, ExecReq{Query: "SELECT 1"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestExecRejectsMissingQuery(t *testing.T) {
	r := newTestRouter(t, nil)
	w := postJSON(t, r, map[string]any{"params": []any{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
