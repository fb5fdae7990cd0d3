package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

func TestViewsClient_Create(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/tables/tbl-1/views", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]any

		decodeRequestJSON(t, request, &body)
		assert.Equal(t, "Open deals", body["name"])
		assert.Equal(t, "grid", body["type"])

		writer.WriteHeader(http.StatusCreated)
		writeEnvelope(t, writer, gridbase.View{ID: "viw-1", Name: "Open deals", Type: "grid"})
	})

	view, err := client.Views().Create(context.Background(), "tbl-1", &gridbase.ViewCreateRequest{
		Name: "Open deals",
		Type: "grid",
		Configuration: map[string]any{
			"filter": map[string]string{"Status": "open"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "viw-1", view.ID)
}

func TestViewsClient_List(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/tables/tbl-1/views", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writeEnvelope(t, writer, []gridbase.View{
			{ID: "viw-1", Name: "All"},
			{ID: "viw-2", Name: "Open deals"},
		})
	})

	views, err := client.Views().List(context.Background(), "tbl-1")
	require.NoError(t, err)
	require.Len(t, views, 2)
}

func TestViewsClient_GetUpdateDelete(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/tables/tbl-1/views/viw-1", request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			writeEnvelope(t, writer, gridbase.View{ID: "viw-1", Type: "kanban"})
		})

		view, err := client.Views().Get(context.Background(), "tbl-1", "viw-1")
		require.NoError(t, err)
		assert.Equal(t, "kanban", view.Type)
	})

	t.Run("update", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/tables/tbl-1/views/viw-1", request.URL.Path)
			assert.Equal(t, "PATCH", request.Method)

			writeEnvelope(t, writer, gridbase.View{ID: "viw-1", Name: "Closed deals"})
		})

		name := "Closed deals"
		view, err := client.Views().Update(context.Background(), "tbl-1", "viw-1", &gridbase.ViewUpdateRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Closed deals", view.Name)
	})

	t.Run("delete", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/tables/tbl-1/views/viw-1", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)

			writeEnvelope(t, writer, nil)
		})

		err := client.Views().Delete(context.Background(), "tbl-1", "viw-1")
		require.NoError(t, err)
	})
}
