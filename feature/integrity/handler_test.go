package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"catalog-builder/core/records"
	"catalog-builder/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, sqlmock.Sqlmock) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	db, sqlMock := setupMockDB(t)
	svc := NewService(Options{
		Storage: mockClient,
		Bucket:  "test-bucket",
		Folders: []string{"exports", "records"},
		Objects: []string{"records/products.csv"},
		Records: records.NewDBSource(db, "products", "name", "id"),
		Design:  stubDocuments{},
		Page:    "Products",
		Frames:  specialFrames,
		Logger:  zap.NewNop(),
	})
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient, sqlMock
}

func emptyObjects() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestHandleStorageCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyObjects())

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "checked", body["status"])
	assert.Equal(t, []any{"exports", "records"}, body["missing"])
	assert.Equal(t, []any{"records/products.csv"}, body["missing_objects"])
}

func TestHandleStorageCheck_FixMissingBucket(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertNumberOfCalls(t, "MakeBucket", 1)
	mockClient.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestHandleStorageCheck_MissingBucket(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleRecordsCheck(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `products`").WillReturnRows(columnRows("id"))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/records", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, []any{"name"}, body["missing_columns"])
}

func TestHandleDesignCheck(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/design", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Catalog", body["document"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient, sqlMock := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyObjects())
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `products`").WillReturnError(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["storage"]["status"])
	assert.Equal(t, "error", body["records"]["status"])
	assert.Equal(t, "ok", body["design"]["status"])
}

func TestLoader(t *testing.T) {
	feature := NewFeature(NewService(Options{Storage: new(mocks.Client), Bucket: "test-bucket", Logger: zap.NewNop()}))

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
