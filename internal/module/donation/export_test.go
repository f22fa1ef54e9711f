package donation

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExport(t *testing.T) {
	database.InitTest()
	seedDonations(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, tools.ExcelContentType, w.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Donations")
	require.NoError(t, err)
	// 表头 + 3 条记录
	require.Len(t, rows, 4)
	require.Equal(t, "捐赠人", rows[0][0])
	require.Equal(t, "Morgan Brown", rows[1][0])
}
